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

// Expenses lists the most recent expenses. When the server is unreachable
// the last cached snapshot is shown instead, labeled as cached.
func (a *App) Expenses(ctx context.Context) error {
	env, err := a.api.ListExpenses(ctx, models.ListFilter{Limit: 20})
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			return cachedList(ctx, a, cache.KeyExpenses, printExpense)
		}
		reportFailure(err)
		return err
	}
	if !env.Success {
		reportEnvelope(env.Message, env.Errors)
		return nil
	}

	for _, e := range env.Data.Items {
		printExpense(e)
	}
	fmt.Printf("page %d of %d (%d total)\n", env.Data.Page, env.Data.TotalPages, env.Data.Total)

	a.snapshot(ctx, cache.KeyExpenses, env.Data.Items)
	return nil
}

func (a *App) AddExpense(ctx context.Context) error {
	amountText, err := getSimpleText(a.reader, "Amount", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := parseAmount(amountText)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	categoryID, err := getSimpleText(a.reader, "Category id", os.Stdout)
	if err != nil {
		return err
	}
	dateText, err := getSimpleText(a.reader, "Date (YYYY-MM-DD, empty for today)", os.Stdout)
	if err != nil {
		return err
	}
	date, err := parseDate(dateText)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	env, err := a.api.CreateExpense(ctx, models.ExpenseInput{
		Amount:      amount,
		Description: description,
		CategoryID:  categoryID,
		Date:        date,
	})
	if err != nil {
		reportFailure(err)
		return err
	}
	if !env.Success {
		reportEnvelope(env.Message, env.Errors)
		return nil
	}

	fmt.Println("Saved:")
	printExpense(env.Data)
	return nil
}

func (a *App) DeleteExpense(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Expense id", os.Stdout)
	if err != nil {
		return err
	}

	env, err := a.api.DeleteExpense(ctx, id)
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

func printExpense(e models.Expense) {
	category := e.CategoryID
	if e.Category != nil {
		category = e.Category.Name
	}
	fmt.Printf("%s  %s  %10.2f  %-20s %s\n", e.ID, e.Date, e.Amount, category, e.Description)
}
