package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/finkeeper/internal/client/models"
)

// GetProfile fetches the current user's profile.
func (c *Client) GetProfile(ctx context.Context) (*Envelope[models.User], error) {
	return do[models.User](ctx, c, http.MethodGet, "/user/profile", nil, nil)
}

// UpdateProfile saves editable profile fields.
func (c *Client) UpdateProfile(ctx context.Context, in models.ProfileInput) (*Envelope[models.User], error) {
	return do[models.User](ctx, c, http.MethodPut, "/user/profile", nil, in)
}

// ChangePassword replaces the account password.
func (c *Client) ChangePassword(ctx context.Context, in models.PasswordInput) (*Envelope[Ack], error) {
	return do[Ack](ctx, c, http.MethodPut, "/user/password", nil, in)
}
