package ingest

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"mandoob-route-service/internal/domain"
)

// MockOrderLimit caps a single generation request.
const MockOrderLimit = 20

// Generator produces random demo orders around Cairo for testing the
// dashboard without live platform feeds.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng, now: time.Now}
}

var mockApps = []domain.SourceApp{
	domain.SourceTalabat,
	domain.SourceUberEats,
	domain.SourceElmenus,
	domain.SourceOtlob,
	domain.SourceInstashop,
	domain.SourceCareem,
	domain.SourceBosta,
	domain.SourceOther,
}

// Orders generates count pending orders with distinct pickup and delivery
// spots. count must be between 1 and MockOrderLimit.
func (g *Generator) Orders(count int) ([]*domain.Order, error) {
	if count < 1 || count > MockOrderLimit {
		return nil, fmt.Errorf("generate orders: count must be between 1 and %d, got %d", MockOrderLimit, count)
	}

	now := g.now()
	orders := make([]*domain.Order, 0, count)
	for i := 0; i < count; i++ {
		pickupIdx := g.rng.Intn(len(cairoSpots))
		deliveryIdx := g.rng.Intn(len(cairoSpots) - 1)
		if deliveryIdx >= pickupIdx {
			deliveryIdx++
		}

		orders = append(orders, &domain.Order{
			ID:             uuid.NewString(),
			SourceApp:      mockApps[g.rng.Intn(len(mockApps))],
			RestaurantName: fmt.Sprintf("Restaurant %d", g.rng.Intn(100)+1),
			CustomerName:   fmt.Sprintf("Customer %d", g.rng.Intn(100)+1),
			Pickup:         cairoSpots[pickupIdx],
			Delivery:       cairoSpots[deliveryIdx],
			Payout:         float64(g.rng.Intn(451) + 50),
			Status:         domain.StatusPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	return orders, nil
}
