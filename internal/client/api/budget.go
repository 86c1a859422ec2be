package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/finkeeper/internal/client/models"
)

func (c *Client) ListBudgets(ctx context.Context, f models.ListFilter) (*Envelope[models.Paged[models.Budget]], error) {
	return do[models.Paged[models.Budget]](ctx, c, http.MethodGet, "/budget", f.Query(), nil)
}

func (c *Client) CreateBudget(ctx context.Context, in models.BudgetInput) (*Envelope[models.Budget], error) {
	return do[models.Budget](ctx, c, http.MethodPost, "/budget", nil, in)
}

func (c *Client) UpdateBudget(ctx context.Context, id string, in models.BudgetInput) (*Envelope[models.Budget], error) {
	return do[models.Budget](ctx, c, http.MethodPut, "/budget/"+url.PathEscape(id), nil, in)
}

func (c *Client) DeleteBudget(ctx context.Context, id string) (*Envelope[Ack], error) {
	return do[Ack](ctx, c, http.MethodDelete, "/budget/"+url.PathEscape(id), nil, nil)
}

// BudgetAlerts lists budgets whose spending crossed the warning threshold.
func (c *Client) BudgetAlerts(ctx context.Context) (*Envelope[[]models.BudgetAlert], error) {
	return do[[]models.BudgetAlert](ctx, c, http.MethodGet, "/budget/alerts", nil, nil)
}
