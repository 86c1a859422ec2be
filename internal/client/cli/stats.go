package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/finkeeper/internal/client/models"
)

// Stats prints aggregated expense and income totals for an optional
// date range.
func (a *App) Stats(ctx context.Context) error {
	from, err := getSimpleText(a.reader, "From (YYYY-MM-DD, empty for all time)", os.Stdout)
	if err != nil {
		return err
	}
	to, err := getSimpleText(a.reader, "To (YYYY-MM-DD, empty for all time)", os.Stdout)
	if err != nil {
		return err
	}
	r := models.StatsRange{From: from, To: to}

	expenses, err := a.api.ExpenseStats(ctx, r)
	if err != nil {
		reportFailure(err)
		return err
	}
	income, err := a.api.IncomeStats(ctx, r)
	if err != nil {
		reportFailure(err)
		return err
	}
	if !expenses.Success {
		reportEnvelope(expenses.Message, expenses.Errors)
		return nil
	}
	if !income.Success {
		reportEnvelope(income.Message, income.Errors)
		return nil
	}

	fmt.Printf("Spent:  %10.2f over %d records\n", expenses.Data.Total, expenses.Data.Count)
	fmt.Printf("Earned: %10.2f over %d records\n", income.Data.Total, income.Data.Count)
	fmt.Printf("Net:    %10.2f\n", income.Data.Total-expenses.Data.Total)

	if len(expenses.Data.ByCategory) > 0 {
		fmt.Println("Spending by category:")
		for _, c := range expenses.Data.ByCategory {
			fmt.Printf("  %-20s %10.2f\n", c.Name, c.Total)
		}
	}
	if len(expenses.Data.ByMonth) > 0 {
		fmt.Println("Spending by month:")
		for _, m := range expenses.Data.ByMonth {
			fmt.Printf("  %s %10.2f\n", m.Month, m.Total)
		}
	}
	return nil
}
