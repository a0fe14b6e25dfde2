package domain

import (
	"fmt"
	"time"
)

// SourceApp identifies the delivery platform an order originated from.
type SourceApp string

const (
	SourceTalabat   SourceApp = "talabat"
	SourceUberEats  SourceApp = "uber_eats"
	SourceElmenus   SourceApp = "elmenus"
	SourceOtlob     SourceApp = "otlob"
	SourceInstashop SourceApp = "instashop"
	SourceCareem    SourceApp = "careem"
	SourceBosta     SourceApp = "bosta"
	SourceOther     SourceApp = "other"
)

// ParseSourceApp maps a platform tag to its enum variant.
// Unknown tags map to SourceOther rather than passing through as raw strings.
func ParseSourceApp(s string) SourceApp {
	switch SourceApp(s) {
	case SourceTalabat, SourceUberEats, SourceElmenus, SourceOtlob,
		SourceInstashop, SourceCareem, SourceBosta:
		return SourceApp(s)
	default:
		return SourceOther
	}
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusSelected  OrderStatus = "selected"
	StatusMerged    OrderStatus = "merged"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// validTransitions lists the allowed next states per status.
// Delivered and cancelled are terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:  {StatusSelected, StatusCancelled},
	StatusSelected: {StatusPending, StatusMerged, StatusDelivered, StatusCancelled},
	StatusMerged:   {StatusSelected, StatusDelivered, StatusCancelled},
}

// CanTransitionTo reports whether the status may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a known lifecycle state.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusSelected, StatusMerged, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is a single delivery job: one pickup, one dropoff, one payout.
// Created on ingestion (fetch or notification parse), mutated only by
// status transitions.
type Order struct {
	ID             string
	SourceApp      SourceApp
	RestaurantName string
	CustomerName   string
	Pickup         Location
	Delivery       Location
	Payout         float64
	Status         OrderStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks the structural invariants of an order.
func (o *Order) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("validate order: id must be non-empty")
	}
	if !o.Pickup.Valid() {
		return fmt.Errorf("validate order %s: pickup: %w", o.ID, ErrInvalidCoordinate)
	}
	if !o.Delivery.Valid() {
		return fmt.Errorf("validate order %s: delivery: %w", o.ID, ErrInvalidCoordinate)
	}
	if o.Payout < 0 {
		return fmt.Errorf("validate order %s: payout must be >= 0, got %f", o.ID, o.Payout)
	}
	return nil
}

// Transition moves the order to the next status, rejecting moves the
// lifecycle does not permit.
func (o *Order) Transition(next OrderStatus, now time.Time) error {
	if !ValidStatus(next) {
		return fmt.Errorf("transition order %s: unknown status %q", o.ID, next)
	}
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("transition order %s: %s -> %s: %w", o.ID, o.Status, next, ErrInvalidTransition)
	}
	o.Status = next
	o.UpdatedAt = now
	return nil
}
