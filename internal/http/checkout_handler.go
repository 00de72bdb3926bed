package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Tyyuu55/Crave-Now/internal/checkout"
	"github.com/Tyyuu55/Crave-Now/internal/domain"
	"github.com/Tyyuu55/Crave-Now/internal/logger"
	"github.com/sirupsen/logrus"
)

type CheckoutHandler struct {
	checkout Checkout
	session  Session
	log      *logrus.Logger
	timeout  time.Duration
}

func NewCheckoutHandler(c Checkout, session Session, log *logrus.Logger, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: c,
		session:  session,
		log:      log,
		timeout:  timeout,
	}
}

type OrderResponseDTO struct {
	AttemptID string        `json:"attemptId"`
	Order     *domain.Order `json:"order"`
}

// POST /api/checkout
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result := h.checkout.Submit(ctx, h.session.UserID())
	logger.WithContext(r.Context(), h.log).WithFields(logrus.Fields{
		"request_id": getRequestID(r.Context()),
		"attempt_id": result.AttemptID,
		"status":     result.Status,
	}).Info("checkout finished")

	switch {
	case result.Kind == checkout.ResultSuccess:
		respondJSON(w, http.StatusCreated, OrderResponseDTO{AttemptID: result.AttemptID, Order: result.Order})
	case errors.Is(result.Err, checkout.ErrEmptyCart):
		respondError(w, http.StatusUnprocessableEntity, "empty_cart", result.Message)
	default:
		respondJSON(w, http.StatusBadGateway, ErrorResponse{
			Error:   result.Message,
			Code:    "order_failed",
			Details: result.AttemptID,
		})
	}
}
