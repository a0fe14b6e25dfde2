package domain

// StopKind distinguishes pickup waypoints from delivery waypoints.
type StopKind string

const (
	StopPickup   StopKind = "pickup"
	StopDelivery StopKind = "delivery"
)

// Stop is a single waypoint derived from an order.
// For any order, the pickup stop must precede the delivery stop in a route.
type Stop struct {
	OrderID  string
	Kind     StopKind
	Location Location
}

// Route is an ordered visiting sequence over the stops of an order set,
// covering each order's pickup and delivery exactly once.
// It is immutable planning data and contains no side effects.
type Route struct {
	Stops           []Stop
	TotalDistanceKm float64
	TotalMinutes    float64
}

// OptimizationResult compares delivering a set of orders individually
// against delivering them as one merged multi-stop run. Saved figures may
// be negative when merging is worse; the result is still reported and the
// caller decides.
type OptimizationResult struct {
	IndividualProfit  float64
	MergedProfit      float64
	TimeSavedMinutes  float64
	DistanceSavedKm   float64
	IndividualKm      float64
	IndividualMinutes float64
	Route             Route
}

// IsBeneficial reports whether merging strictly beats delivering the
// orders individually. Used by callers to gate accept/reject prompts.
func (r *OptimizationResult) IsBeneficial() bool {
	return r.MergedProfit > r.IndividualProfit
}
