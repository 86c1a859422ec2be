package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/finkeeper/internal/client/models"
)

func (c *Client) ListCategories(ctx context.Context, f models.ListFilter) (*Envelope[models.Paged[models.Category]], error) {
	return do[models.Paged[models.Category]](ctx, c, http.MethodGet, "/categories", f.Query(), nil)
}

func (c *Client) CreateCategory(ctx context.Context, in models.CategoryInput) (*Envelope[models.Category], error) {
	return do[models.Category](ctx, c, http.MethodPost, "/categories", nil, in)
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in models.CategoryInput) (*Envelope[models.Category], error) {
	return do[models.Category](ctx, c, http.MethodPut, "/categories/"+url.PathEscape(id), nil, in)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) (*Envelope[Ack], error) {
	return do[Ack](ctx, c, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil)
}
