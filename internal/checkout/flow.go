package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/Tyyuu55/Crave-Now/internal/apiclient"
	"github.com/Tyyuu55/Crave-Now/internal/cart"
	"github.com/Tyyuu55/Crave-Now/internal/domain"
	"github.com/Tyyuu55/Crave-Now/internal/events"
	"github.com/Tyyuu55/Crave-Now/internal/logger"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Cart is the part of the cart store checkout needs.
type Cart interface {
	Lines() cart.Lines
	Clear(ctx context.Context) error
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error)
}

type ResultKind string

const (
	ResultSuccess ResultKind = "success"
	ResultFailure ResultKind = "failure"
)

// Result of one submission attempt: an order on success, a display
// message on failure. Err carries the cause of a failure.
type Result struct {
	Kind      ResultKind
	Status    domain.CheckoutStatus
	Order     *domain.Order
	Message   string
	Err       error
	AttemptID string
}

type Flow struct {
	cart      Cart
	orders    OrderCreator
	publisher events.Publisher
	log       *logrus.Logger
	now       func() time.Time
}

// NewFlow wires a checkout flow. publisher may be nil.
func NewFlow(c Cart, orders OrderCreator, publisher events.Publisher, log *logrus.Logger) *Flow {
	return &Flow{
		cart:      c,
		orders:    orders,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

type attempt struct {
	id     string
	status domain.CheckoutStatus
	log    *logrus.Entry
}

func (a *attempt) moveTo(next domain.CheckoutStatus) {
	if !a.status.CanTransitionTo(next) {
		a.log.Errorf("illegal checkout transition %s -> %s", a.status, next)
		return
	}
	a.log.Debugf("checkout %s -> %s", a.status, next)
	a.status = next
}

// Submit places one order from the current cart. It never retries; each
// call is a fresh attempt.
func (f *Flow) Submit(ctx context.Context, userID *domain.ID) Result {
	id := uuid.NewString()
	a := &attempt{
		id:     id,
		status: domain.CheckoutStatusIdle,
		log:    logger.WithContext(ctx, f.log).WithField("attempt_id", id),
	}
	a.moveTo(domain.CheckoutStatusBuilding)

	lines := f.cart.Lines()
	if lines.Len() == 0 {
		a.moveTo(domain.CheckoutStatusFailed)
		return Result{
			Kind:      ResultFailure,
			Status:    a.status,
			Message:   emptyCartMessage,
			Err:       ErrEmptyCart,
			AttemptID: id,
		}
	}

	req := f.buildRequest(lines, userID)
	a.moveTo(domain.CheckoutStatusSubmitting)
	a.log.WithFields(logrus.Fields{
		"items":      len(req.Items),
		"total":      req.Total,
		"restaurant": req.RestaurantID,
	}).Info("submitting order")

	order, err := f.orders.CreateOrder(ctx, req)
	if err == nil && order == nil {
		err = ErrNoOrder
	}
	if err != nil {
		a.moveTo(domain.CheckoutStatusFailed)
		a.log.WithError(err).Warn("order submission failed")
		return Result{
			Kind:      ResultFailure,
			Status:    a.status,
			Message:   failureMessage(err),
			Err:       err,
			AttemptID: id,
		}
	}

	if clearErr := f.cart.Clear(ctx); clearErr != nil {
		a.log.WithError(clearErr).Error("order placed but cart clear was not persisted")
	}
	a.moveTo(domain.CheckoutStatusSucceeded)
	a.log.WithField("order_id", order.ID).Info("order placed")

	f.publishPlaced(order, userID)

	return Result{
		Kind:      ResultSuccess,
		Status:    a.status,
		Order:     order,
		AttemptID: id,
	}
}

func (f *Flow) buildRequest(lines cart.Lines, userID *domain.ID) domain.OrderRequest {
	snapshot := lines.Slice()
	items := make([]domain.OrderItem, 0, len(snapshot))
	for _, line := range snapshot {
		items = append(items, domain.OrderItem{
			ID:       line.ItemID,
			Name:     line.Name,
			Price:    line.UnitPrice,
			Quantity: line.Quantity,
		})
	}

	quote := QuoteLines(lines)
	req := domain.OrderRequest{
		UserID:      userID,
		Items:       items,
		Subtotal:    quote.Subtotal,
		DeliveryFee: quote.DeliveryFee,
		Taxes:       quote.Taxes,
		Total:       quote.Total,
		CreatedAt:   f.now().UTC(),
	}
	if first, ok := lines.First(); ok {
		req.RestaurantID = first.RestaurantID
		req.RestaurantName = first.RestaurantName
	}
	return req
}

func (f *Flow) publishPlaced(order *domain.Order, userID *domain.ID) {
	if f.publisher == nil {
		return
	}
	event := events.NewOrderPlaced(order, userID)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := f.publisher.PublishOrderPlaced(ctx, event); err != nil {
			f.log.WithError(err).WithField("order_id", order.ID).Warn("failed to publish order placed event")
		}
	}()
}

func failureMessage(err error) string {
	if errors.Is(err, ErrNoOrder) {
		return fallbackFailureMessage
	}
	return apiclient.MessageOr(err, fallbackFailureMessage)
}
