package apiclient

import (
	"context"
	"errors"
	"net/url"

	"github.com/Tyyuu55/Crave-Now/internal/domain"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) (*domain.User, error) {
	var user domain.User
	if err := c.post(ctx, "/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login looks the user up by credentials; no match is ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	var users []domain.User
	query := url.Values{"email": []string{email}, "password": []string{password}}
	if err := c.get(ctx, "/users", query, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrInvalidCredentials
	}
	return &users[0], nil
}
