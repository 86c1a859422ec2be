package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/finkeeper/internal/client/api"
	"github.com/dmitrijs2005/finkeeper/internal/client/cache"
	"github.com/dmitrijs2005/finkeeper/internal/client/models"
)

// Budgets lists all budgets, falling back to the cached snapshot when the
// server is unreachable.
func (a *App) Budgets(ctx context.Context) error {
	env, err := a.api.ListBudgets(ctx, models.ListFilter{Limit: 100})
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			return cachedList(ctx, a, cache.KeyBudgets, printBudget)
		}
		reportFailure(err)
		return err
	}
	if !env.Success {
		reportEnvelope(env.Message, env.Errors)
		return nil
	}

	for _, b := range env.Data.Items {
		printBudget(b)
	}

	a.snapshot(ctx, cache.KeyBudgets, env.Data.Items)
	return nil
}

func printBudget(b models.Budget) {
	category := b.CategoryID
	if b.Category != nil {
		category = b.Category.Name
	}
	fmt.Printf("%s  %-20s %10.2f / %s\n", b.ID, category, b.Amount, b.Period)
}

func (a *App) AddBudget(ctx context.Context) error {
	categoryID, err := getSimpleText(a.reader, "Category id", os.Stdout)
	if err != nil {
		return err
	}
	amountText, err := getSimpleText(a.reader, "Limit amount", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := parseAmount(amountText)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	period, err := getSimpleText(a.reader, "Period (monthly/yearly)", os.Stdout)
	if err != nil {
		return err
	}
	if period != string(models.BudgetPeriodMonthly) && period != string(models.BudgetPeriodYearly) {
		log.Printf("error: period must be %q or %q", models.BudgetPeriodMonthly, models.BudgetPeriodYearly)
		return nil
	}

	env, err := a.api.CreateBudget(ctx, models.BudgetInput{
		CategoryID: categoryID,
		Amount:     amount,
		Period:     models.BudgetPeriod(period),
	})
	if err != nil {
		reportFailure(err)
		return err
	}
	if !env.Success {
		reportEnvelope(env.Message, env.Errors)
		return nil
	}

	fmt.Printf("Saved: %s  %10.2f / %s\n", env.Data.ID, env.Data.Amount, env.Data.Period)
	return nil
}

func (a *App) DeleteBudget(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Budget id", os.Stdout)
	if err != nil {
		return err
	}

	env, err := a.api.DeleteBudget(ctx, id)
	if err != nil {
		reportFailure(err)
		return err
	}
	if !env.Success {
		reportEnvelope(env.Message, env.Errors)
		return nil
	}
	fmt.Println("Deleted.")
	return nil
}

// Alerts prints budgets whose spending crossed the warning threshold.
func (a *App) Alerts(ctx context.Context) error {
	env, err := a.api.BudgetAlerts(ctx)
	if err != nil {
		reportFailure(err)
		return err
	}
	if !env.Success {
		reportEnvelope(env.Message, env.Errors)
		return nil
	}

	if len(env.Data) == 0 {
		fmt.Println("No budget alerts.")
		return nil
	}
	for _, alert := range env.Data {
		fmt.Printf("%-20s %.0f%%  spent %.2f of %.2f  %s\n",
			alert.CategoryName, alert.Percent, alert.Spent, alert.Limit, alert.Message)
	}
	return nil
}
