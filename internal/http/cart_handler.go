package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Tyyuu55/Crave-Now/internal/apiclient"
	"github.com/Tyyuu55/Crave-Now/internal/cart"
	"github.com/Tyyuu55/Crave-Now/internal/catalog"
	"github.com/Tyyuu55/Crave-Now/internal/checkout"
	"github.com/Tyyuu55/Crave-Now/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type CartHandler struct {
	cart    Cart
	catalog Catalog
	log     *logrus.Logger
	timeout time.Duration
}

func NewCartHandler(c Cart, cat Catalog, log *logrus.Logger, timeout time.Duration) *CartHandler {
	return &CartHandler{
		cart:    c,
		catalog: cat,
		log:     log,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	RestaurantID domain.ID `json:"restaurantId"`
	ItemID       domain.ID `json:"itemId"`
}

// CartResponse is the cart after a request. Quantity is set by the per-item
// routes and is 0 once the item is gone.
type CartResponse struct {
	Items    []domain.CartLine   `json:"items"`
	Snapshot domain.CartSnapshot `json:"snapshot"`
	Quote    checkout.Quote      `json:"quote"`
	Quantity *int                `json:"quantity,omitempty"`
	Warning  string              `json:"warning,omitempty"`
}

const notSavedWarning = "Your cart was updated but could not be saved on this device."

// GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartResponse(nil))
}

// POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.RestaurantID == "" || req.ItemID == "" {
		respondError(w, http.StatusBadRequest, "invalid_item", "restaurantId and itemId are required")
		return
	}

	item, restaurant, err := h.catalog.MenuItem(ctx, req.RestaurantID, req.ItemID)
	if errors.Is(err, catalog.ErrItemNotFound) {
		respondError(w, http.StatusNotFound, "item_not_found", "menu item not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusBadGateway, "restaurant_unavailable", apiclient.Message(err))
		return
	}

	err = h.cart.AddItem(ctx, item, restaurant)
	respondJSON(w, http.StatusCreated, h.cartResponse(err))
}

// POST /api/cart/items/{itemId}/increment
func (h *CartHandler) Increment(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.cart.Increment)
}

// POST /api/cart/items/{itemId}/decrement
func (h *CartHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.cart.Decrement)
}

// DELETE /api/cart/items/{itemId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.cart.RemoveItem)
}

// DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	respondJSON(w, http.StatusOK, h.cartResponse(h.cart.Clear(ctx)))
}

// mutate applies op to the item in the URL. Unknown ids are not an error.
func (h *CartHandler) mutate(w http.ResponseWriter, r *http.Request, op func(context.Context, domain.ID) error) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := domain.ID(chi.URLParam(r, "itemId"))
	resp := h.cartResponse(op(ctx, id))
	quantity := h.cart.Quantity(id)
	resp.Quantity = &quantity
	respondJSON(w, http.StatusOK, resp)
}

func (h *CartHandler) cartResponse(mutationErr error) CartResponse {
	lines := h.cart.Lines()
	resp := CartResponse{
		Items:    lines.Slice(),
		Snapshot: cart.Totals(lines),
		Quote:    checkout.QuoteLines(lines),
	}
	if mutationErr != nil {
		h.log.WithError(mutationErr).Warn("cart mutation not persisted")
		resp.Warning = notSavedWarning
	}
	return resp
}
