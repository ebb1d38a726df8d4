// Package shopping turns the recipes of a meal plan into a persisted,
// checkable shopping list.
package shopping

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/smartchef/smartchef/internal/calculator"
	"github.com/smartchef/smartchef/internal/models"
)

// DefaultConcurrency bounds parallel recipe lookups when none is configured.
const DefaultConcurrency = 4

// RecipeLookup resolves a planned recipe reference (an ID or a title).
type RecipeLookup interface {
	FindRecipe(ctx context.Context, ref string) (*models.Recipe, error)
}

// LookupFunc adapts a function to RecipeLookup.
type LookupFunc func(ctx context.Context, ref string) (*models.Recipe, error)

// FindRecipe calls f.
func (f LookupFunc) FindRecipe(ctx context.Context, ref string) (*models.Recipe, error) {
	return f(ctx, ref)
}

// Result is the outcome of one aggregation.
type Result struct {
	Entries []models.ShoppingListEntry

	// Unresolved holds the distinct references that matched no recipe,
	// in first-seen order.
	Unresolved []string
}

// Aggregator merges the ingredients of planned recipes.
type Aggregator struct {
	lookup      RecipeLookup
	concurrency int
	logger      *slog.Logger
}

// NewAggregator creates an aggregator. A non-positive concurrency uses DefaultConcurrency.
func NewAggregator(lookup RecipeLookup, concurrency int, logger *slog.Logger) *Aggregator {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{lookup: lookup, concurrency: concurrency, logger: logger}
}

// Aggregate resolves refs and merges their ingredients into shopping-list entries.
//
// Duplicate references contribute once per occurrence. References that fail to
// resolve are skipped and reported in Result.Unresolved; the only error
// returned is the cancellation of ctx.
func (a *Aggregator) Aggregate(ctx context.Context, refs []string) (*Result, error) {
	distinct, index := dedupe(refs)
	recipes := make([]*models.Recipe, len(distinct))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, ref := range distinct {
		if ref == "" {
			continue
		}
		g.Go(func() error {
			recipe, err := a.lookup.FindRecipe(gctx, ref)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				a.logger.Warn("Skipping unresolved recipe reference", "ref", ref, "error", err)
				return nil
			}
			recipes[i] = recipe
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancellation racing the last lookup still wins
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Unresolved: []string{}}
	for i, ref := range distinct {
		if recipes[i] == nil && ref != "" {
			result.Unresolved = append(result.Unresolved, ref)
		}
	}

	var items []calculator.SourcedIngredient
	for _, ref := range refs {
		recipe := recipes[index[strings.TrimSpace(ref)]]
		if recipe == nil {
			continue
		}
		for _, ing := range recipe.Ingredients {
			items = append(items, calculator.SourcedIngredient{Ingredient: ing, RecipeTitle: recipe.Title})
		}
	}
	result.Entries = calculator.MergeIngredients(items)

	a.logger.Debug("Aggregated shopping list",
		"refs", len(refs),
		"distinct", len(distinct),
		"unresolved", len(result.Unresolved),
		"entries", len(result.Entries),
	)
	return result, nil
}

// dedupe returns the distinct trimmed references in first-seen order and the
// position of each within that slice.
func dedupe(refs []string) ([]string, map[string]int) {
	index := make(map[string]int, len(refs))
	var distinct []string
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if _, seen := index[ref]; seen {
			continue
		}
		index[ref] = len(distinct)
		distinct = append(distinct, ref)
	}
	return distinct, index
}
