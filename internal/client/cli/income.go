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

// Income lists the most recent income records, falling back to the cached
// snapshot when the server is unreachable.
func (a *App) Income(ctx context.Context) error {
	env, err := a.api.ListIncome(ctx, models.ListFilter{Limit: 20})
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			return cachedList(ctx, a, cache.KeyIncome, printIncome)
		}
		reportFailure(err)
		return err
	}
	if !env.Success {
		reportEnvelope(env.Message, env.Errors)
		return nil
	}

	for _, in := range env.Data.Items {
		printIncome(in)
	}
	fmt.Printf("page %d of %d (%d total)\n", env.Data.Page, env.Data.TotalPages, env.Data.Total)

	a.snapshot(ctx, cache.KeyIncome, env.Data.Items)
	return nil
}

func (a *App) AddIncome(ctx context.Context) error {
	amountText, err := getSimpleText(a.reader, "Amount", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := parseAmount(amountText)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	source, err := getSimpleText(a.reader, "Source", os.Stdout)
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

	env, err := a.api.CreateIncome(ctx, models.IncomeInput{
		Amount:     amount,
		Source:     source,
		CategoryID: categoryID,
		Date:       date,
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
	printIncome(env.Data)
	return nil
}

func (a *App) DeleteIncome(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Income id", os.Stdout)
	if err != nil {
		return err
	}

	env, err := a.api.DeleteIncome(ctx, id)
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

func printIncome(in models.Income) {
	fmt.Printf("%s  %s  %10.2f  %s\n", in.ID, in.Date, in.Amount, in.Source)
}
