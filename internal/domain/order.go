package domain

import "time"

type OrderItem struct {
	ID       ID      `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderRequest is the payload sent to the order-creation endpoint.
type OrderRequest struct {
	UserID         *ID         `json:"userId,omitempty"`
	Items          []OrderItem `json:"items"`
	Subtotal       float64     `json:"subtotal"`
	DeliveryFee    float64     `json:"deliveryFee"`
	Taxes          float64     `json:"taxes"`
	Total          float64     `json:"total"`
	CreatedAt      time.Time   `json:"createdAt"`
	RestaurantID   ID          `json:"restaurantId,omitempty"`
	RestaurantName string      `json:"restaurantName,omitempty"`
}

// Order is what the order service returns after creating an order.
type Order struct {
	ID ID `json:"id"`
	OrderRequest
}
