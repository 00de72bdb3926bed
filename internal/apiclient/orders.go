package apiclient

import (
	"context"
	"errors"
	"time"

	"github.com/Tyyuu55/Crave-Now/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// ErrOrderingUnavailable is returned while the order breaker is open.
var ErrOrderingUnavailable = errors.New("ordering unavailable, circuit breaker open")

type orderBreaker struct {
	cb *gobreaker.CircuitBreaker
}

func newOrderBreaker(log *logrus.Logger) *orderBreaker {
	st := gobreaker.Settings{
		Name:        "OrdersCircuitBreaker",
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.5
		},
		// Rejections by the service are answers, not outages.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return apiErr.Status < 500
			}
			return false
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warnf("CircuitBreaker %s state changed from %s to %s", name, from, to)
		},
	}
	return &orderBreaker{cb: gobreaker.NewCircuitBreaker(st)}
}

// CreateOrder posts the order. It is never retried here.
func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	result, err := c.orders.cb.Execute(func() (interface{}, error) {
		var order *domain.Order
		if err := c.post(ctx, "/orders", req, &order); err != nil {
			return nil, err
		}
		return order, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, ErrOrderingUnavailable
	}
	if err != nil {
		return nil, err
	}
	return result.(*domain.Order), nil
}
