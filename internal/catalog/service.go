package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/Tyyuu55/Crave-Now/internal/apiclient"
	"github.com/Tyyuu55/Crave-Now/internal/domain"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	unreachableListMessage    = "Unable to reach the kitchen right now. Showing a demo lane instead."
	unreachableKitchenMessage = "We could not reach this kitchen right now. Try again in a bit."
	menuTTL                   = 5 * time.Minute
	// sharedFetchTimeout bounds a fetch that several callers may be waiting on.
	sharedFetchTimeout = 15 * time.Second
)

var ErrItemNotFound = errors.New("menu item not found")

type Source interface {
	FetchRestaurants(ctx context.Context, params url.Values) ([]domain.Restaurant, error)
	FetchRestaurant(ctx context.Context, id domain.ID) (*domain.Restaurant, error)
	FetchMenuItems(ctx context.Context, restaurantID domain.ID) ([]domain.MenuItem, error)
}

type Service struct {
	src          Source
	cache        *cache.Cache
	sfg          singleflight.Group
	fetchTimeout time.Duration
	log          *logrus.Logger
}

func NewService(src Source, log *logrus.Logger) *Service {
	return &Service{
		src:          src,
		cache:        cache.New(menuTTL, 2*menuTTL),
		fetchTimeout: sharedFetchTimeout,
		log:          log,
	}
}

// Listing is the home page list. Notice is set when demo data replaced
// the backend's answer.
type Listing struct {
	Restaurants []domain.Restaurant `json:"restaurants"`
	Notice      string              `json:"notice,omitempty"`
	Demo        bool                `json:"demo"`
}

func (s *Service) Restaurants(ctx context.Context) Listing {
	list, err := s.src.FetchRestaurants(ctx, nil)
	if err != nil {
		s.log.WithError(err).Error("failed to load restaurants")
		return Listing{
			Restaurants: DemoRestaurants(),
			Notice:      apiclient.MessageOr(err, unreachableListMessage),
			Demo:        true,
		}
	}
	if len(list) == 0 {
		s.log.Warn("restaurants endpoint returned empty, using demo data")
		return Listing{Restaurants: DemoRestaurants(), Demo: true}
	}
	return Listing{Restaurants: list}
}

type RestaurantPage struct {
	Restaurant domain.Restaurant `json:"restaurant"`
	Categories []MenuCategory    `json:"categories"`
}

// PageError is a restaurant page that could not be loaded.
type PageError struct {
	Message string
	Err     error
}

func (e *PageError) Error() string { return e.Message }
func (e *PageError) Unwrap() error { return e.Err }

// RestaurantPage loads the restaurant and its menu concurrently.
func (s *Service) RestaurantPage(ctx context.Context, id domain.ID) (*RestaurantPage, error) {
	var (
		restaurant *domain.Restaurant
		items      []domain.MenuItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.restaurant(gctx, id)
		restaurant = r
		return err
	})
	g.Go(func() error {
		m, err := s.menu(gctx, id)
		items = m
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.WithError(err).WithField("restaurant_id", id).Error("failed to load restaurant page")
		return nil, &PageError{Message: apiclient.MessageOr(err, unreachableKitchenMessage), Err: err}
	}

	return &RestaurantPage{
		Restaurant: *restaurant,
		Categories: GroupByCategory(items),
	}, nil
}

// MenuItem resolves an item and the restaurant context to add it to the cart with.
func (s *Service) MenuItem(ctx context.Context, restaurantID, itemID domain.ID) (domain.MenuItem, domain.RestaurantRef, error) {
	page, err := s.RestaurantPage(ctx, restaurantID)
	if err != nil {
		return domain.MenuItem{}, domain.RestaurantRef{}, err
	}
	for _, category := range page.Categories {
		for _, item := range category.Items {
			if item.ID == itemID {
				return item, page.Restaurant.Ref(), nil
			}
		}
	}
	return domain.MenuItem{}, domain.RestaurantRef{}, ErrItemNotFound
}

func (s *Service) restaurant(ctx context.Context, id domain.ID) (*domain.Restaurant, error) {
	key := fmt.Sprintf("restaurant:%s", id)
	if cached, ok := s.cache.Get(key); ok {
		r := cached.(domain.Restaurant)
		return &r, nil
	}

	v, _, err := s.shared(ctx, key, func(ctx context.Context) (interface{}, error) {
		r, err := s.src.FetchRestaurant(ctx, id)
		if err != nil {
			return nil, err
		}
		s.cache.SetDefault(key, *r)
		return *r, nil
	})
	if err != nil {
		return nil, err
	}
	r := v.(domain.Restaurant)
	return &r, nil
}

func (s *Service) menu(ctx context.Context, restaurantID domain.ID) ([]domain.MenuItem, error) {
	key := fmt.Sprintf("menu:%s", restaurantID)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]domain.MenuItem), nil
	}

	v, shared, err := s.shared(ctx, key, func(ctx context.Context) (interface{}, error) {
		items, err := s.src.FetchMenuItems(ctx, restaurantID)
		if err != nil {
			return nil, err
		}
		s.cache.SetDefault(key, items)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.log.Debugf("shared menu fetch for restaurant %s", restaurantID)
	}
	return v.([]domain.MenuItem), nil
}

// shared runs fetch once per key for all concurrent callers. The fetch is
// detached from the caller that started it; each caller still stops
// waiting when its own ctx is done.
func (s *Service) shared(ctx context.Context, key string, fetch func(context.Context) (interface{}, error)) (interface{}, bool, error) {
	ch := s.sfg.DoChan(key, func() (interface{}, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()
		return fetch(fctx)
	})

	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case res := <-ch:
		return res.Val, res.Shared, res.Err
	}
}
