package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/finkeeper/internal/client/models"
)

func (c *Client) ListIncome(ctx context.Context, f models.ListFilter) (*Envelope[models.Paged[models.Income]], error) {
	return do[models.Paged[models.Income]](ctx, c, http.MethodGet, "/income", f.Query(), nil)
}

func (c *Client) CreateIncome(ctx context.Context, in models.IncomeInput) (*Envelope[models.Income], error) {
	return do[models.Income](ctx, c, http.MethodPost, "/income", nil, in)
}

func (c *Client) UpdateIncome(ctx context.Context, id string, in models.IncomeInput) (*Envelope[models.Income], error) {
	return do[models.Income](ctx, c, http.MethodPut, "/income/"+url.PathEscape(id), nil, in)
}

func (c *Client) DeleteIncome(ctx context.Context, id string) (*Envelope[Ack], error) {
	return do[Ack](ctx, c, http.MethodDelete, "/income/"+url.PathEscape(id), nil, nil)
}

func (c *Client) IncomeStats(ctx context.Context, r models.StatsRange) (*Envelope[models.Stats], error) {
	return do[models.Stats](ctx, c, http.MethodGet, "/income/stats", r.Query(), nil)
}
