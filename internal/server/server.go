//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"shopgenie/internal/catalog"
	"shopgenie/internal/metrics"
	"shopgenie/internal/policy"
	"shopgenie/internal/storage"
)

// Store is the transactional surface the tool API exposes to the
// orchestration layer.
type Store interface {
	ListProducts(ctx context.Context) ([]storage.Product, error)
	GetProduct(ctx context.Context, id int64) (*storage.Product, error)
	PlaceOrder(ctx context.Context, userID string, productID int64, quantity int) (*storage.Order, error)
	GetUserOrders(ctx context.Context, userID string, limit int) ([]storage.Order, error)
	GetOrder(ctx context.Context, userID string, orderID int64) (*storage.Order, error)
	RequestReturn(ctx context.Context, userID string, orderID int64, reason string) (*storage.ReturnRequest, error)
	FlagReturnForReview(ctx context.Context, userID string, orderID int64, reason string) (*storage.ReturnRequest, error)
	GetReturnStatus(ctx context.Context, userID string, returnID int64) (*storage.ReturnRequest, error)
	CountUserReturns(ctx context.Context, userID string) (int, error)
	ListReturns(ctx context.Context, page, limit int) ([]storage.ReturnRequest, error)
	ListReturnReviews(ctx context.Context, page, limit int) ([]storage.ReturnReview, error)
}

type Searcher interface {
	Search(ctx context.Context, filters catalog.Filters) (*catalog.Result, error)
}

type Server struct {
	store     Store
	searcher  Searcher
	returns   *policy.Evaluator
	server    *http.Server
	ToolAudit *ToolAudit
	logger    *zap.Logger
}

func New(store Store, searcher Searcher, returns *policy.Evaluator, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		store:     store,
		searcher:  searcher,
		returns:   returns,
		ToolAudit: NewToolAudit(2, 5, 500*time.Millisecond, logger),
		logger:    logger,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.ToolAudit.Start(ctx)

	s.logger.Info("tool API listening", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return err
		}
	}
	s.ToolAudit.Shutdown(ctx)
	s.logger.Info("server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /products", s.handleListProducts)
	mux.HandleFunc("GET /products/{id}", s.handleGetProduct)
	mux.HandleFunc("POST /search", s.handleSearch)

	mux.HandleFunc("POST /orders", s.handlePlaceOrder)
	mux.HandleFunc("GET /orders/{id}", s.handleGetOrder)
	mux.HandleFunc("GET /users/{userID}/orders", s.handleListOrders)

	mux.HandleFunc("POST /returns", s.handleRequestReturn)
	mux.HandleFunc("GET /returns", s.handleListReturns)
	mux.HandleFunc("GET /returns/{id}", s.handleGetReturn)
	mux.HandleFunc("GET /reviews", s.handleListReviews)

	mux.Handle("GET /metrics", promhttp.Handler())

	return s.auditMiddleware(mux)
}

// The orchestration layer expects the tool-call envelope: a status tag plus
// either a data payload or an error message, never a raw error.
type envelope struct {
	Status       string      `json:"status"`
	Data         interface{} `json:"data,omitempty"`
	ErrorMessage string      `json:"error_message,omitempty"`
}

func respondSuccess(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, envelope{Status: "success", Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, envelope{Status: "error", ErrorMessage: message})
}

func respondJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// respondStoreError maps the store's failure taxonomy onto HTTP codes.
func (s *Server) respondStoreError(w http.ResponseWriter, operation string, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrNotOwner):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, storage.ErrInsufficientStock):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, storage.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
		s.logger.Error("operation failed", zap.String("operation", operation), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
