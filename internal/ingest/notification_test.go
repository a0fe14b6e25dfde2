package ingest

import (
	"math/rand"
	"testing"

	"mandoob-route-service/internal/domain"
)

func TestDetectSourceApp(t *testing.T) {
	cases := []struct {
		text string
		want domain.SourceApp
	}{
		{"New order from Talabat for restaurant Koshary, pickup now", domain.SourceTalabat},
		{"طلبات: طلب جديد من مطعم كشري", domain.SourceTalabat},
		{"Uber Eats delivery request", domain.SourceUberEats},
		{"elmenus order #4711", domain.SourceElmenus},
		{"CAREEM NOW order ready", domain.SourceCareem},
		{"Bosta parcel assigned", domain.SourceBosta},
		{"pickup at the corner shop", domain.SourceOther},
	}
	for _, tc := range cases {
		if got := DetectSourceApp(tc.text); got != tc.want {
			t.Errorf("DetectSourceApp(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestParserExtractsNames(t *testing.T) {
	p := NewParser(rand.New(rand.NewSource(1)))

	draft, err := p.Parse("Talabat: new order from restaurant Zooba, customer Ahmed, 15 min", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if draft.SourceApp != domain.SourceTalabat {
		t.Errorf("source app = %q, want talabat", draft.SourceApp)
	}
	if draft.RestaurantName != "Zooba" {
		t.Errorf("restaurant = %q, want Zooba", draft.RestaurantName)
	}
	if draft.CustomerName != "Ahmed" {
		t.Errorf("customer = %q, want Ahmed", draft.CustomerName)
	}
	if draft.Status != domain.StatusPending {
		t.Errorf("status = %q, want pending", draft.Status)
	}
	if err := draft.Validate(); err != nil {
		t.Errorf("draft invalid: %v", err)
	}
	if draft.Pickup == draft.Delivery {
		t.Error("pickup and delivery must differ")
	}
}

func TestParserHintOverridesDetection(t *testing.T) {
	p := NewParser(rand.New(rand.NewSource(1)))

	draft, err := p.Parse("Talabat order incoming", domain.SourceCareem)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.SourceApp != domain.SourceCareem {
		t.Errorf("source app = %q, want careem hint", draft.SourceApp)
	}
}

func TestParserRejectsEmptyText(t *testing.T) {
	p := NewParser(rand.New(rand.NewSource(1)))
	if _, err := p.Parse("   ", ""); err == nil {
		t.Fatal("expected error for blank text")
	}
}

func TestGeneratorOrders(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(42)))

	orders, err := g.Orders(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 5 {
		t.Fatalf("got %d orders, want 5", len(orders))
	}

	seen := make(map[string]struct{})
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			t.Errorf("order %s invalid: %v", o.ID, err)
		}
		if o.Pickup == o.Delivery {
			t.Errorf("order %s: pickup equals delivery", o.ID)
		}
		if _, ok := seen[o.ID]; ok {
			t.Errorf("duplicate id %s", o.ID)
		}
		seen[o.ID] = struct{}{}
	}
}

func TestGeneratorCountBounds(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))

	if _, err := g.Orders(0); err == nil {
		t.Error("expected error for count 0")
	}
	if _, err := g.Orders(MockOrderLimit + 1); err == nil {
		t.Error("expected error above the limit")
	}
	if _, err := g.Orders(MockOrderLimit); err != nil {
		t.Errorf("count at limit should succeed, got %v", err)
	}
}
