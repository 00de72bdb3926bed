package apiclient

import (
	"context"
	"net/url"

	"github.com/Tyyuu55/Crave-Now/internal/domain"
)

func (c *Client) FetchRestaurants(ctx context.Context, params url.Values) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	if err := c.get(ctx, "/restaurants", params, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *Client) FetchRestaurant(ctx context.Context, id domain.ID) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	if err := c.get(ctx, "/restaurants/"+url.PathEscape(id.String()), nil, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (c *Client) FetchMenuItems(ctx context.Context, restaurantID domain.ID) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	query := url.Values{"restaurantId": []string{restaurantID.String()}}
	if err := c.get(ctx, "/menuItems", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}
