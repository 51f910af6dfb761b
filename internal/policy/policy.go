package policy

import (
	"strings"
	"time"
)

// Return policy as an explicit decision table: returns inside the window,
// under the history limit and with an unsuspicious reason are approved
// immediately; everything else goes to manual review. No operation is ever
// rejected outright here — rejection is a human decision.
const (
	ReturnWindowDays   = 14
	ReturnHistoryLimit = 3
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReview  Decision = "review"
)

type ReasonCategory string

const (
	ReasonDefective   ReasonCategory = "defective"
	ReasonWrongItem   ReasonCategory = "wrong_item"
	ReasonNotNeeded   ReasonCategory = "not_needed"
	ReasonSuspicious  ReasonCategory = "suspicious"
	ReasonUnspecified ReasonCategory = "unspecified"
)

// Classifier maps a free-text return reason onto a category. The shipped
// implementation is keyword-rule based; a model-backed one can be swapped in
// behind the same interface.
type Classifier interface {
	Classify(reason string) ReasonCategory
}

type Evaluator struct {
	classifier Classifier
}

func NewEvaluator(classifier Classifier) *Evaluator {
	if classifier == nil {
		classifier = RuleClassifier{}
	}
	return &Evaluator{classifier: classifier}
}

// Evaluate decides what to do with a return request.
func (e *Evaluator) Evaluate(orderPlacedAt time.Time, now time.Time, priorReturns int, reason string) Decision {
	if now.Sub(orderPlacedAt) > ReturnWindowDays*24*time.Hour {
		return DecisionReview
	}
	if priorReturns >= ReturnHistoryLimit {
		return DecisionReview
	}
	if e.classifier.Classify(reason) == ReasonSuspicious {
		return DecisionReview
	}
	return DecisionApprove
}

// RuleClassifier categorizes reasons by keyword matching.
type RuleClassifier struct{}

var reasonKeywords = []struct {
	category ReasonCategory
	keywords []string
}{
	{ReasonSuspicious, []string{"changed my mind many times", "free", "used it", "wore it", "don't remember", "no reason"}},
	{ReasonDefective, []string{"broken", "defect", "damaged", "not working", "faulty", "stopped working"}},
	{ReasonWrongItem, []string{"wrong", "different", "not what i ordered", "size", "color mismatch"}},
	{ReasonNotNeeded, []string{"changed my mind", "no longer need", "don't need", "found cheaper", "duplicate"}},
}

func (RuleClassifier) Classify(reason string) ReasonCategory {
	reason = strings.ToLower(strings.TrimSpace(reason))
	if reason == "" {
		return ReasonUnspecified
	}
	for _, group := range reasonKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(reason, kw) {
				return group.category
			}
		}
	}
	return ReasonUnspecified
}
