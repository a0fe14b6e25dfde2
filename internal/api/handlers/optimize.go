package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"mandoob-route-service/internal/adapters/cache"
	"mandoob-route-service/internal/api/dto"
	"mandoob-route-service/internal/domain"
	"mandoob-route-service/internal/geo"
	"mandoob-route-service/internal/ingest"
	"mandoob-route-service/internal/ports"
	"mandoob-route-service/internal/services"
)

// OptimizeHandler runs the merge comparison for a selected order set.
type OptimizeHandler struct {
	Repo  ports.OrderRepository
	Cache *cache.RedisResultCache
	Gen   *ingest.Generator
}

// Optimize handles POST /optimize. It resolves the selected order ids,
// compares individual versus merged delivery, and returns the comparison.
// A losing merge is still a 200; the client gates on "beneficial".
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.OrderIDs) < 2 {
		writeDomainError(w, r, domain.ErrInsufficientOrders)
		return
	}

	driver := domain.Coordinate{Lat: req.DriverLocation.Lat, Lng: req.DriverLocation.Lng}
	if !driver.Valid() {
		writeDomainError(w, r, domain.ErrInvalidCoordinate)
		return
	}

	cfg := services.CostConfig{}
	if req.Config != nil {
		cfg = services.CostConfig{
			AvgSpeedKmh:   req.Config.AvgSpeedKmh,
			CostPerKm:     req.Config.CostPerKm,
			CostPerMinute: req.Config.CostPerMinute,
		}
	}

	orders, err := h.Repo.GetOrders(r.Context(), req.OrderIDs)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	// The key covers each order's update timestamp, so an edited order
	// never serves a comparison computed before the edit.
	key := cache.ResultKey(orders, driver, cfg)
	if cached, ok, err := h.Cache.Get(r.Context(), key); err != nil {
		log.Printf("result cache read failed: %v", err)
	} else if ok {
		writeJSON(w, r, http.StatusOK, toOptimizeResponse(cached))
		return
	}

	result, err := services.Optimize(orders, driver, cfg)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	// Cache failures never fail the request.
	if err := h.Cache.Put(r.Context(), key, result); err != nil {
		log.Printf("result cache write failed: %v", err)
	}

	writeJSON(w, r, http.StatusOK, toOptimizeResponse(result))
}

// MockOptimize handles GET /mock/optimize: a merge comparison over freshly
// generated demo orders, so the dashboard can be exercised without stored
// data. Orders are random per call and never cached or persisted.
func (h *OptimizeHandler) MockOptimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	orders, err := h.Gen.Orders(3)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	// Downtown Cairo, the demo data's home base.
	driver := domain.Coordinate{Lat: 30.0444, Lng: 31.2357}
	result, err := services.Optimize(orders, driver, services.CostConfig{})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toOptimizeResponse(result))
}

func toOptimizeResponse(res *domain.OptimizationResult) dto.OptimizeResponse {
	stops := make([]dto.RouteStopResponse, 0, len(res.Route.Stops))
	for _, s := range res.Route.Stops {
		stops = append(stops, dto.RouteStopResponse{
			OrderID:  s.OrderID,
			Kind:     string(s.Kind),
			Location: toLocationDTO(s.Location),
		})
	}

	return dto.OptimizeResponse{
		Route: dto.RouteResponse{
			Stops:           stops,
			TotalDistanceKm: res.Route.TotalDistanceKm,
			TotalMinutes:    geo.DisplayMinutes(res.Route.TotalMinutes),
		},
		EstimatedProfit:  res.MergedProfit,
		IndividualProfit: res.IndividualProfit,
		MergedProfit:     res.MergedProfit,
		TimeSavedMinutes: res.TimeSavedMinutes,
		DistanceSavedKm:  res.DistanceSavedKm,
		Beneficial:       res.IsBeneficial(),
	}
}
