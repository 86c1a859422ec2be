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

// Categories lists all categories, falling back to the cached snapshot
// when the server is unreachable.
func (a *App) Categories(ctx context.Context) error {
	env, err := a.api.ListCategories(ctx, models.ListFilter{Limit: 100})
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			return cachedList(ctx, a, cache.KeyCategories, printCategory)
		}
		reportFailure(err)
		return err
	}
	if !env.Success {
		reportEnvelope(env.Message, env.Errors)
		return nil
	}

	for _, c := range env.Data.Items {
		printCategory(c)
	}

	a.snapshot(ctx, cache.KeyCategories, env.Data.Items)
	return nil
}

func printCategory(c models.Category) {
	fmt.Printf("%s  %-8s %s\n", c.ID, c.Type, c.Name)
}

func (a *App) AddCategory(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	kind, err := getSimpleText(a.reader, "Type (expense/income)", os.Stdout)
	if err != nil {
		return err
	}
	if kind != string(models.CategoryTypeExpense) && kind != string(models.CategoryTypeIncome) {
		log.Printf("error: type must be %q or %q", models.CategoryTypeExpense, models.CategoryTypeIncome)
		return nil
	}

	env, err := a.api.CreateCategory(ctx, models.CategoryInput{Name: name, Type: models.CategoryType(kind)})
	if err != nil {
		reportFailure(err)
		return err
	}
	if !env.Success {
		reportEnvelope(env.Message, env.Errors)
		return nil
	}

	fmt.Printf("Saved: %s  %s\n", env.Data.ID, env.Data.Name)
	return nil
}

func (a *App) DeleteCategory(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Category id", os.Stdout)
	if err != nil {
		return err
	}

	env, err := a.api.DeleteCategory(ctx, id)
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
