package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mandoob-route-service/internal/domain"
)

func TestToOptimizeResponseRoundsMinutesForDisplay(t *testing.T) {
	res := &domain.OptimizationResult{
		IndividualProfit: 150,
		MergedProfit:     180,
		Route: domain.Route{
			Stops: []domain.Stop{
				{OrderID: "a", Kind: domain.StopPickup},
				{OrderID: "a", Kind: domain.StopDelivery},
			},
			TotalDistanceKm: 4.2,
			TotalMinutes:    12.6,
		},
	}

	out := toOptimizeResponse(res)

	// Precise leg sums stay internal; clients see whole minutes.
	assert.Equal(t, 13, out.Route.TotalMinutes)
	assert.Equal(t, out.MergedProfit, out.EstimatedProfit)
	assert.Len(t, out.Route.Stops, 2)
}
