package http

import (
	"context"
	"net/http"
	"time"

	"github.com/Tyyuu55/Crave-Now/internal/apiclient"
	"github.com/Tyyuu55/Crave-Now/internal/cart"
	"github.com/Tyyuu55/Crave-Now/internal/catalog"
	"github.com/Tyyuu55/Crave-Now/internal/checkout"
	"github.com/Tyyuu55/Crave-Now/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type Cart interface {
	AddItem(ctx context.Context, item domain.MenuItem, restaurant domain.RestaurantRef) error
	Increment(ctx context.Context, id domain.ID) error
	Decrement(ctx context.Context, id domain.ID) error
	RemoveItem(ctx context.Context, id domain.ID) error
	Clear(ctx context.Context) error
	Lines() cart.Lines
	Quantity(id domain.ID) int
}

type Catalog interface {
	Restaurants(ctx context.Context) catalog.Listing
	RestaurantPage(ctx context.Context, id domain.ID) (*catalog.RestaurantPage, error)
	MenuItem(ctx context.Context, restaurantID, itemID domain.ID) (domain.MenuItem, domain.RestaurantRef, error)
}

type Checkout interface {
	Submit(ctx context.Context, userID *domain.ID) checkout.Result
}

type Accounts interface {
	Signup(ctx context.Context, req apiclient.SignupRequest) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

// Session is the signed-in user state.
type Session interface {
	Login(ctx context.Context, user domain.User) error
	Logout(ctx context.Context) error
	User() (domain.User, bool)
	UserID() *domain.ID
}

type Deps struct {
	Cart           Cart
	Catalog        Catalog
	Checkout       Checkout
	Accounts       Accounts
	Session        Session
	Log            *logrus.Logger
	RequestTimeout time.Duration
}

func NewRouter(d Deps) chi.Router {
	authHandler := NewAuthHandler(d.Accounts, d.Session, d.RequestTimeout)
	catalogHandler := NewCatalogHandler(d.Catalog, d.RequestTimeout)
	cartHandler := NewCartHandler(d.Cart, d.Catalog, d.Log, d.RequestTimeout)
	checkoutHandler := NewCheckoutHandler(d.Checkout, d.Session, d.Log, d.RequestTimeout)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(d.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireUser(d.Session))

			r.Get("/restaurants", catalogHandler.ListRestaurants)
			r.Get("/restaurants/{id}", catalogHandler.GetRestaurant)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Delete("/", cartHandler.ClearCart)
				r.Post("/items", cartHandler.AddItem)
				r.Post("/items/{itemId}/increment", cartHandler.Increment)
				r.Post("/items/{itemId}/decrement", cartHandler.Decrement)
				r.Delete("/items/{itemId}", cartHandler.RemoveItem)
			})

			r.Post("/checkout", checkoutHandler.PlaceOrder)
		})
	})

	return r
}
