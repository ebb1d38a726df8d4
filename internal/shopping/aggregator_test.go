package shopping

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/smartchef/smartchef/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeRecipes resolves IDs and case-insensitive titles, like the store does.
type fakeRecipes struct {
	recipes []*models.Recipe
	delay   time.Duration
	calls   atomic.Int32

	mu       sync.Mutex
	inFlight int
	peak     int
}

func (f *fakeRecipes) FindRecipe(ctx context.Context, ref string) (*models.Recipe, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.peak {
		f.peak = f.inFlight
	}
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	for _, r := range f.recipes {
		if r.ID == ref {
			return r, nil
		}
	}
	for _, r := range f.recipes {
		if strings.EqualFold(r.Title, ref) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("recipe %q: not found", ref)
}

func recipe(id, title string, ingredients ...models.Ingredient) *models.Recipe {
	return &models.Recipe{ID: id, Title: title, Ingredients: ingredients}
}

func ing(name, amount, unit string) models.Ingredient {
	return models.Ingredient{Name: name, Amount: amount, Unit: unit}
}

func TestAggregate(t *testing.T) {
	lookup := &fakeRecipes{recipes: []*models.Recipe{
		recipe("r-a", "Recipe A", ing("Onion", "1", ""), ing("Salt", "to taste", ""), ing("Flour", "1/2", "cup")),
		recipe("r-b", "Recipe B", ing("onion", "2", ""), ing("Salt", "1", "tsp"), ing("Chicken breast", "500", "g")),
		recipe("r-c", "Recipe C", ing("Flour", "1 1/2", "cups"), ing("Milk", "200", "ml")),
	}}
	agg := NewAggregator(lookup, 2, quietLogger)

	got, err := agg.Aggregate(context.Background(), []string{"r-a", "recipe b", "Recipe C", "Missing Stew"})
	require.NoError(t, err)

	want := []models.ShoppingListEntry{
		{Name: "Onion", Amount: "3", Category: models.CategoryProduce, SourceRecipes: []string{"Recipe A", "Recipe B"}},
		{Name: "Chicken breast", Amount: "500", Unit: "g", Category: models.CategoryMeatSeafood, SourceRecipes: []string{"Recipe B"}},
		{Name: "Milk", Amount: "200", Unit: "ml", Category: models.CategoryDairy, SourceRecipes: []string{"Recipe C"}},
		{Name: "Salt", Amount: models.AmountToTaste, Unit: "tsp", Category: models.CategoryPantry, SourceRecipes: []string{"Recipe A", "Recipe B"}},
		{Name: "Flour", Amount: "2", Unit: "cup or cups", Category: models.CategoryPantry, SourceRecipes: []string{"Recipe A", "Recipe C"}},
	}
	if diff := cmp.Diff(want, got.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Missing Stew"}, got.Unresolved)
}

func TestAggregateDuplicatesCountTwice(t *testing.T) {
	lookup := &fakeRecipes{recipes: []*models.Recipe{
		recipe("r-a", "Pancakes", ing("Egg", "2", "")),
	}}
	agg := NewAggregator(lookup, 4, quietLogger)

	got, err := agg.Aggregate(context.Background(), []string{"r-a", "r-a", " r-a "})
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "6", got.Entries[0].Amount)
	assert.Equal(t, []string{"Pancakes"}, got.Entries[0].SourceRecipes)
	assert.Equal(t, int32(1), lookup.calls.Load(), "distinct references are looked up once")
}

func TestAggregateUnresolvedDoesNotAffectOthers(t *testing.T) {
	lookup := &fakeRecipes{recipes: []*models.Recipe{
		recipe("r-a", "Soup", ing("Carrot", "2", "")),
	}}
	agg := NewAggregator(lookup, 1, quietLogger)

	with, err := agg.Aggregate(context.Background(), []string{"ghost", "r-a", "another ghost"})
	require.NoError(t, err)
	without, err := agg.Aggregate(context.Background(), []string{"r-a"})
	require.NoError(t, err)

	assert.Equal(t, without.Entries, with.Entries)
	assert.Equal(t, []string{"ghost", "another ghost"}, with.Unresolved)
	assert.Empty(t, without.Unresolved)
}

func TestAggregateIsDeterministic(t *testing.T) {
	var recipes []*models.Recipe
	var refs []string
	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("r-%d", i)
		recipes = append(recipes, recipe(id, "Recipe "+id,
			ing("Garlic", "1", "clove"),
			ing(fmt.Sprintf("Spice %d", i%3), "1", "tsp"),
			ing("Bread", "1", ""),
		))
		refs = append(refs, id)
	}
	lookup := &fakeRecipes{recipes: recipes, delay: time.Millisecond}
	agg := NewAggregator(lookup, 5, quietLogger)

	first, err := agg.Aggregate(context.Background(), refs)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := agg.Aggregate(context.Background(), refs)
		require.NoError(t, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}

	lookup.mu.Lock()
	peak := lookup.peak
	lookup.mu.Unlock()
	assert.LessOrEqual(t, peak, 5, "lookups must respect the concurrency limit")
	assert.Equal(t, "20", first.Entries[0].Amount)
	assert.Equal(t, models.CategoryBakery, first.Entries[len(first.Entries)-1].Category)
}

func TestAggregateCancellation(t *testing.T) {
	lookup := &fakeRecipes{
		recipes: []*models.Recipe{recipe("r-a", "Slow", ing("Rice", "1", "cup"))},
		delay:   time.Second,
	}
	agg := NewAggregator(lookup, 2, quietLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := agg.Aggregate(ctx, []string{"r-a", "other"})
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

func TestAggregateEmpty(t *testing.T) {
	agg := NewAggregator(&fakeRecipes{}, 0, nil)

	got, err := agg.Aggregate(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, got.Entries)
	assert.Empty(t, got.Entries)
	assert.Empty(t, got.Unresolved)
}

func TestLookupFunc(t *testing.T) {
	var seen string
	lookup := LookupFunc(func(ctx context.Context, ref string) (*models.Recipe, error) {
		seen = ref
		return recipe("id", "Title", ing("Lime", "1", "")), nil
	})

	got, err := NewAggregator(lookup, 1, quietLogger).Aggregate(context.Background(), []string{"Title"})
	require.NoError(t, err)
	assert.Equal(t, "Title", seen)
	assert.Len(t, got.Entries, 1)
}
