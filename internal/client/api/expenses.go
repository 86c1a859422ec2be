package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/finkeeper/internal/client/models"
)

func (c *Client) ListExpenses(ctx context.Context, f models.ListFilter) (*Envelope[models.Paged[models.Expense]], error) {
	return do[models.Paged[models.Expense]](ctx, c, http.MethodGet, "/expenses", f.Query(), nil)
}

func (c *Client) CreateExpense(ctx context.Context, in models.ExpenseInput) (*Envelope[models.Expense], error) {
	return do[models.Expense](ctx, c, http.MethodPost, "/expenses", nil, in)
}

func (c *Client) UpdateExpense(ctx context.Context, id string, in models.ExpenseInput) (*Envelope[models.Expense], error) {
	return do[models.Expense](ctx, c, http.MethodPut, "/expenses/"+url.PathEscape(id), nil, in)
}

func (c *Client) DeleteExpense(ctx context.Context, id string) (*Envelope[Ack], error) {
	return do[Ack](ctx, c, http.MethodDelete, "/expenses/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ExpenseStats(ctx context.Context, r models.StatsRange) (*Envelope[models.Stats], error) {
	return do[models.Stats](ctx, c, http.MethodGet, "/expenses/stats", r.Query(), nil)
}
