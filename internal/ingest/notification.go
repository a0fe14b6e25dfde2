package ingest

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"mandoob-route-service/internal/domain"
)

// Keyword markers per platform, checked in order. Arabic markers cover the
// notification text the platforms actually send.
var sourceMarkers = []struct {
	app     domain.SourceApp
	markers []string
}{
	{domain.SourceTalabat, []string{"طلبات", "talabat"}},
	{domain.SourceUberEats, []string{"uber"}},
	{domain.SourceElmenus, []string{"elmenus"}},
	{domain.SourceOtlob, []string{"otlob"}},
	{domain.SourceInstashop, []string{"instashop"}},
	{domain.SourceCareem, []string{"careem"}},
	{domain.SourceBosta, []string{"bosta"}},
}

// DetectSourceApp guesses the originating platform from notification text.
func DetectSourceApp(text string) domain.SourceApp {
	lower := strings.ToLower(text)
	for _, sm := range sourceMarkers {
		for _, m := range sm.markers {
			if strings.Contains(lower, m) {
				return sm.app
			}
		}
	}
	return domain.SourceOther
}

// Parser extracts order drafts from raw notification text. Parsing is
// best-effort keyword matching; fields that cannot be extracted are filled
// from the generator's RNG so the draft is always complete.
type Parser struct {
	rng *rand.Rand
	now func() time.Time
}

func NewParser(rng *rand.Rand) *Parser {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Parser{rng: rng, now: time.Now}
}

// Parse builds an order draft from a notification. hint overrides platform
// detection when the caller already knows the source app.
func (p *Parser) Parse(text string, hint domain.SourceApp) (*domain.Order, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("parse notification: text is empty")
	}

	app := hint
	if app == "" {
		app = DetectSourceApp(text)
	}

	pickupIdx := p.rng.Intn(len(cairoSpots))
	deliveryIdx := p.rng.Intn(len(cairoSpots) - 1)
	if deliveryIdx >= pickupIdx {
		deliveryIdx++
	}

	restaurant := extractAfter(text, "restaurant", ",")
	if restaurant == "" {
		restaurant = extractAfter(text, "مطعم", "،")
	}
	if restaurant == "" {
		restaurant = fmt.Sprintf("Restaurant %d", p.rng.Intn(100)+1)
	}

	customer := extractAfter(text, "customer", ",")
	if customer == "" {
		customer = extractAfter(text, "عميل", "،")
	}
	if customer == "" {
		customer = fmt.Sprintf("Customer %d", p.rng.Intn(100)+1)
	}

	now := p.now()
	return &domain.Order{
		ID:             uuid.NewString(),
		SourceApp:      app,
		RestaurantName: restaurant,
		CustomerName:   customer,
		Pickup:         cairoSpots[pickupIdx],
		Delivery:       cairoSpots[deliveryIdx],
		Payout:         float64(p.rng.Intn(451) + 50),
		Status:         domain.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// extractAfter returns the text between the first occurrence of marker and
// the following separator, trimmed.
func extractAfter(text, marker, sep string) string {
	lower := strings.ToLower(text)
	i := strings.Index(lower, marker)
	if i < 0 {
		return ""
	}
	rest := text[i+len(marker):]
	if j := strings.Index(rest, sep); j >= 0 {
		rest = rest[:j]
	}
	return strings.TrimSpace(rest)
}
