package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"shopgenie/internal/catalog"
	"shopgenie/internal/policy"
)

const (
	defaultOrderLimit = 10
	defaultPageLimit  = 20
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.store.ListProducts(r.Context())
	if err != nil {
		s.respondStoreError(w, "list_products", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"products":    products,
		"total_found": len(products),
	})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	product, err := s.store.GetProduct(r.Context(), id)
	if err != nil {
		s.respondStoreError(w, "get_product", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"product": product})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var filters catalog.Filters
	if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.searcher.Search(r.Context(), filters)
	if err != nil {
		s.respondStoreError(w, "retrieve_products", err)
		return
	}

	respondSuccess(w, http.StatusOK, result)
}

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID    string `json:"user_id"`
		ProductID int64  `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	order, err := s.store.PlaceOrder(r.Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		s.respondStoreError(w, "place_order", err)
		return
	}

	respondSuccess(w, http.StatusCreated, map[string]interface{}{"order": order})
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "missing user ID")
		return
	}

	limit := defaultOrderLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	orders, err := s.store.GetUserOrders(r.Context(), userID, limit)
	if err != nil {
		s.respondStoreError(w, "get_my_orders", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	order, err := s.store.GetOrder(r.Context(), userID, id)
	if err != nil {
		s.respondStoreError(w, "check_order_status", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"order": order})
}

// handleRequestReturn runs the return-policy decision table before touching
// the store: approved requests restore stock immediately, everything else is
// recorded and flagged for manual review.
func (s *Server) handleRequestReturn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID  string `json:"user_id"`
		OrderID int64  `json:"order_id"`
		Reason  string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	order, err := s.store.GetOrder(r.Context(), req.UserID, req.OrderID)
	if err != nil {
		s.respondStoreError(w, "return_order", err)
		return
	}

	priorReturns, err := s.store.CountUserReturns(r.Context(), req.UserID)
	if err != nil {
		s.respondStoreError(w, "return_order", err)
		return
	}

	decision := s.returns.Evaluate(order.CreatedAt, time.Now().UTC(), priorReturns, req.Reason)

	var ret interface{}
	if decision == policy.DecisionApprove {
		ret, err = s.store.RequestReturn(r.Context(), req.UserID, req.OrderID, req.Reason)
	} else {
		ret, err = s.store.FlagReturnForReview(r.Context(), req.UserID, req.OrderID, req.Reason)
	}
	if err != nil {
		s.respondStoreError(w, "return_order", err)
		return
	}

	respondSuccess(w, http.StatusCreated, map[string]interface{}{
		"return":   ret,
		"decision": decision,
	})
}

func (s *Server) handleGetReturn(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	ret, err := s.store.GetReturnStatus(r.Context(), userID, id)
	if err != nil {
		s.respondStoreError(w, "check_return_status", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"return": ret})
}

// Operator views over the full return history and the manual-review queue.
func (s *Server) handleListReturns(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := pagination(w, r)
	if !ok {
		return
	}

	returns, err := s.store.ListReturns(r.Context(), page, limit)
	if err != nil {
		s.respondStoreError(w, "list_returns", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"returns": returns,
		"count":   len(returns),
	})
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := pagination(w, r)
	if !ok {
		return
	}

	reviews, err := s.store.ListReturnReviews(r.Context(), page, limit)
	if err != nil {
		s.respondStoreError(w, "list_reviews", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

func pagination(w http.ResponseWriter, r *http.Request) (page, limit int, ok bool) {
	page, limit = 1, defaultPageLimit
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "invalid page")
			return 0, 0, false
		}
		page = parsed
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return 0, 0, false
		}
		limit = parsed
	}
	return page, limit, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
