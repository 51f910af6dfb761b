package catalog

import (
	"context"
	"fmt"
	"sort"

	"shopgenie/internal/metrics"
	"shopgenie/internal/repository"
	"shopgenie/internal/storage"
)

//go:generate mockgen -source ./ranker.go -destination=./mocks/ranker.go -package=mock_catalog

// Match thresholds and score weights. Tuned against the seed catalog; kept as
// named constants so they can be adjusted and tested independently.
const (
	NameThreshold     = 60.0
	CategoryThreshold = 70.0
	BrandThreshold    = 70.0
	ColorThreshold    = 70.0

	NameWeight     = 0.5
	CategoryWeight = 0.3
	BrandWeight    = 0.2
	ColorWeight    = 0.1

	RatingWeight      = 20.0
	FeatureBonus      = 10.0
	OutOfStockPenalty = 50.0
	LowStockPenalty   = 20.0
	LowStockThreshold = 3
)

// Filters narrow the catalog before scoring. Every field is optional; an
// empty value places no constraint. MaxPrice is taken literally, negative
// values included.
type Filters struct {
	Name     string   `json:"name,omitempty"`
	Category string   `json:"category,omitempty"`
	Brand    string   `json:"brand,omitempty"`
	Color    string   `json:"color,omitempty"`
	MaxPrice *int64   `json:"max_price,omitempty"`
	Features []string `json:"features,omitempty"`
}

type ScoredProduct struct {
	storage.Product
	Score float64 `json:"score"`
}

type Result struct {
	Products   []ScoredProduct `json:"products"`
	TotalFound int             `json:"total_found"`
}

// Source provides a stable catalog snapshot for one search.
type Source interface {
	Snapshot(ctx context.Context) ([]repository.Product, error)
}

type Ranker struct {
	source Source
}

func NewRanker(source Source) *Ranker {
	return &Ranker{source: source}
}

// Search filters the catalog and returns every match ordered by descending
// score. Ties keep catalog order, so identical inputs always produce the
// identical sequence. No matches is an empty result, not an error.
func (r *Ranker) Search(ctx context.Context, filters Filters) (*Result, error) {
	products, err := r.source.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot catalog: %w", err)
	}

	scored := make([]ScoredProduct, 0, len(products))
	for i := range products {
		p := &products[i]
		score, ok := scoreProduct(p, filters)
		if !ok {
			continue
		}
		scored = append(scored, ScoredProduct{
			Product: toCatalogProduct(p),
			Score:   score,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	metrics.SearchesTotal.Inc()
	return &Result{Products: scored, TotalFound: len(scored)}, nil
}

func scoreProduct(p *repository.Product, filters Filters) (float64, bool) {
	score := p.Rating * RatingWeight

	type textFilter struct {
		query     string
		field     string
		threshold float64
		weight    float64
	}
	for _, f := range []textFilter{
		{filters.Name, p.Name, NameThreshold, NameWeight},
		{filters.Category, p.Category, CategoryThreshold, CategoryWeight},
		{filters.Brand, p.Brand, BrandThreshold, BrandWeight},
		{filters.Color, p.Color, ColorThreshold, ColorWeight},
	} {
		if f.query == "" {
			continue
		}
		sim := Similarity(f.query, f.field)
		if sim < f.threshold {
			return 0, false
		}
		score += sim * f.weight
	}

	if filters.MaxPrice != nil && p.Price > *filters.MaxPrice {
		return 0, false
	}

	if len(filters.Features) > 0 {
		overlap := featureOverlap(filters.Features, p.Features)
		if overlap == 0 {
			return 0, false
		}
		score += FeatureBonus * float64(overlap)
	}

	switch {
	case p.Stock == 0:
		score -= OutOfStockPenalty
	case p.Stock < LowStockThreshold:
		score -= LowStockPenalty
	}

	return score, true
}

func featureOverlap(requested, available []string) int {
	have := make(map[string]struct{}, len(available))
	for _, f := range available {
		have[f] = struct{}{}
	}
	overlap := 0
	for _, f := range requested {
		if _, ok := have[f]; ok {
			overlap++
		}
	}
	return overlap
}

func toCatalogProduct(p *repository.Product) storage.Product {
	return storage.Product{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Brand:    p.Brand,
		Price:    p.Price,
		Color:    p.Color,
		Features: p.Features,
		Rating:   p.Rating,
		Stock:    p.Stock,
		Image:    p.Image,
	}
}
