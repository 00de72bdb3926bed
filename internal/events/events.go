// Package events announces placed orders to downstream consumers.
package events

import (
	"context"
	"time"

	"github.com/Tyyuu55/Crave-Now/internal/domain"
)

const OrderPlacedTopic = "storefront.order-placed"

type OrderPlaced struct {
	OrderID        domain.ID  `json:"order_id"`
	UserID         *domain.ID `json:"user_id,omitempty"`
	RestaurantID   domain.ID  `json:"restaurant_id,omitempty"`
	RestaurantName string     `json:"restaurant_name,omitempty"`
	ItemCount      int        `json:"item_count"`
	Total          float64    `json:"total"`
	PlacedAt       time.Time  `json:"placed_at"`
}

func NewOrderPlaced(order *domain.Order, userID *domain.ID) OrderPlaced {
	count := 0
	for _, item := range order.Items {
		count += item.Quantity
	}
	placedAt := order.CreatedAt
	if placedAt.IsZero() {
		placedAt = time.Now().UTC()
	}
	return OrderPlaced{
		OrderID:        order.ID,
		UserID:         userID,
		RestaurantID:   order.RestaurantID,
		RestaurantName: order.RestaurantName,
		ItemCount:      count,
		Total:          order.Total,
		PlacedAt:       placedAt,
	}
}

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlaced) error
}
