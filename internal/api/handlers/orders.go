package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"mandoob-route-service/internal/api/dto"
	"mandoob-route-service/internal/domain"
	"mandoob-route-service/internal/ingest"
	"mandoob-route-service/internal/ports"
)

// OrderHandler exposes order ingestion and retrieval endpoints.
type OrderHandler struct {
	Repo ports.OrderRepository
	Gen  *ingest.Generator
}

// Collection handles GET /orders (list) and POST /orders (create).
func (h *OrderHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Item handles GET /orders/{id} and PUT /orders/{id}.
func (h *OrderHandler) Item(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/orders/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusNotFound, "order not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	default:
		w.Header().Set("Allow", "GET, PUT")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	var status *domain.OrderStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.OrderStatus(s)
		if !domain.ValidStatus(st) {
			writeError(w, r, http.StatusBadRequest, "unknown status filter")
			return
		}
		status = &st
	}

	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	orders, err := h.Repo.ListOrders(r.Context(), status, limit)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.ListOrdersResponse{Orders: make([]dto.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		res.Orders = append(res.Orders, toOrderResponse(o))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	defer r.Body.Close()

	now := time.Now().UTC()
	order := &domain.Order{
		ID:             uuid.NewString(),
		SourceApp:      domain.ParseSourceApp(req.SourceApp),
		RestaurantName: req.RestaurantName,
		CustomerName:   req.CustomerName,
		Pickup: domain.Location{
			Coordinate: domain.Coordinate{Lat: req.Pickup.Lat, Lng: req.Pickup.Lng},
			Address:    req.Pickup.Address,
		},
		Delivery: domain.Location{
			Coordinate: domain.Coordinate{Lat: req.Delivery.Lat, Lng: req.Delivery.Lng},
			Address:    req.Delivery.Address,
		},
		Payout:    req.Payout,
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := order.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.CreateOrder(r.Context(), order); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	order, err := h.Repo.GetOrder(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var req dto.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	defer r.Body.Close()

	order, err := h.Repo.GetOrder(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	now := time.Now().UTC()
	if req.Status != nil {
		if err := order.Transition(domain.OrderStatus(*req.Status), now); err != nil {
			writeDomainError(w, r, err)
			return
		}
	}
	if req.RestaurantName != nil {
		order.RestaurantName = *req.RestaurantName
	}
	if req.CustomerName != nil {
		order.CustomerName = *req.CustomerName
	}
	if req.Payout != nil {
		order.Payout = *req.Payout
	}
	order.UpdatedAt = now

	if err := order.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Repo.UpdateOrder(r.Context(), order); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toOrderResponse(order))
}

// Mock handles GET /mock/orders?count=n: generated demo orders that are
// not persisted.
func (h *OrderHandler) Mock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	count := 5
	if c := r.URL.Query().Get("count"); c != "" {
		n, err := strconv.Atoi(c)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "count must be an integer")
			return
		}
		count = n
	}

	orders, err := h.Gen.Orders(count)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res := dto.ListOrdersResponse{Orders: make([]dto.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		res.Orders = append(res.Orders, toOrderResponse(o))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func toOrderResponse(o *domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		OrderID:        o.ID,
		SourceApp:      string(o.SourceApp),
		RestaurantName: o.RestaurantName,
		CustomerName:   o.CustomerName,
		Pickup:         toLocationDTO(o.Pickup),
		Delivery:       toLocationDTO(o.Delivery),
		Payout:         o.Payout,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func toLocationDTO(l domain.Location) dto.LocationDTO {
	return dto.LocationDTO{Lat: l.Lat, Lng: l.Lng, Address: l.Address}
}
