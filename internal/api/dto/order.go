package dto

import "time"

type LocationDTO struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

type OrderResponse struct {
	OrderID        string      `json:"order_id"`
	SourceApp      string      `json:"source_app"`
	RestaurantName string      `json:"restaurant_name,omitempty"`
	CustomerName   string      `json:"customer_name,omitempty"`
	Pickup         LocationDTO `json:"pickup"`
	Delivery       LocationDTO `json:"delivery"`
	Payout         float64     `json:"payout"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type CreateOrderRequest struct {
	SourceApp      string      `json:"source_app"`
	RestaurantName string      `json:"restaurant_name"`
	CustomerName   string      `json:"customer_name"`
	Pickup         LocationDTO `json:"pickup"`
	Delivery       LocationDTO `json:"delivery"`
	Payout         float64     `json:"payout"`
}

// Pointer fields distinguish "not provided" from zero values.
type UpdateOrderRequest struct {
	Status         *string  `json:"status"`
	RestaurantName *string  `json:"restaurant_name"`
	CustomerName   *string  `json:"customer_name"`
	Payout         *float64 `json:"payout"`
}

type ParseNotificationRequest struct {
	NotificationText string `json:"notification_text"`
	AppName          string `json:"app_name,omitempty"`
}
