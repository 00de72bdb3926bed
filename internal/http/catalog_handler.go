package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Tyyuu55/Crave-Now/internal/catalog"
	"github.com/Tyyuu55/Crave-Now/internal/domain"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalog Catalog
	timeout time.Duration
}

func NewCatalogHandler(c Catalog, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{
		catalog: c,
		timeout: timeout,
	}
}

// GET /api/restaurants?q=&tag=&sort=top|fast|offers
func (h *CatalogHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	query := catalog.Query{
		Search: r.URL.Query().Get("q"),
		Tag:    r.URL.Query().Get("tag"),
		Quick:  catalog.QuickFilter(r.URL.Query().Get("sort")),
	}
	switch query.Quick {
	case catalog.QuickNone, catalog.QuickTop, catalog.QuickFast, catalog.QuickOffers:
	default:
		respondError(w, http.StatusBadRequest, "invalid_sort", "sort must be one of top, fast, offers")
		return
	}

	listing := h.catalog.Restaurants(ctx)
	listing.Restaurants = catalog.Filter(listing.Restaurants, query)
	respondJSON(w, http.StatusOK, listing)
}

// GET /api/restaurants/{id}
func (h *CatalogHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id := domain.ID(chi.URLParam(r, "id"))
	page, err := h.catalog.RestaurantPage(ctx, id)
	if err != nil {
		var pageErr *catalog.PageError
		if errors.As(err, &pageErr) {
			respondError(w, http.StatusBadGateway, "restaurant_unavailable", pageErr.Message)
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, page)
}
