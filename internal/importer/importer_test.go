package importer

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartchef/smartchef/internal/models"
)

const jsonLDPage = `<!doctype html>
<html><head>
<script type="application/ld+json">{"@context":"https://schema.org","@type":"WebSite","name":"Blog"}</script>
<script type="application/ld+json">
{"@context":"https://schema.org","@graph":[
  {"@type":"BreadcrumbList"},
  {"@type":["Recipe","NewsArticle"],
   "name":"Grandma&#39;s Pancakes",
   "description":"<p>Fluffy   pancakes</p>",
   "image":[{"@type":"ImageObject","url":"https://example.com/pancakes.jpg"}],
   "recipeYield":["4","4 servings"],
   "prepTime":"PT10M","cookTime":"PT1H5M",
   "recipeCuisine":["American"],
   "keywords":"Breakfast, Sweet",
   "recipeIngredient":["1 1/2 cups flour","2 eggs","1 tbsp. sugar","Salt to taste","250ml milk"],
   "recipeInstructions":[
     {"@type":"HowToSection","name":"Batter","itemListElement":[
       {"@type":"HowToStep","text":"Mix the dry ingredients."},
       {"@type":"HowToStep","text":"Whisk in eggs and milk."}]},
     {"@type":"HowToStep","text":"Fry until golden."}],
   "nutrition":{"@type":"NutritionInformation","calories":"320 kcal","proteinContent":"9.5 g"}}
]}
</script></head><body><h1>Pancakes</h1></body></html>`

const microdataPage = `<html><body>
<div itemscope itemtype="https://schema.org/Recipe">
  <h1 itemprop="name">Tomato Soup</h1>
  <meta itemprop="prepTime" content="PT15M">
  <span itemprop="recipeYield">Serves 2</span>
  <ul>
    <li itemprop="recipeIngredient">4 tomatoes</li>
    <li itemprop="recipeIngredient">1 onion</li>
  </ul>
  <ol itemprop="recipeInstructions"><li>Chop.</li><li>Simmer.</li></ol>
</div></body></html>`

func quietImporter(client *http.Client) *Importer {
	return New(client, Options{Timeout: time.Second, UserAgent: "test-agent"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestImportJSONLD(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.UserAgent()
		io.WriteString(w, jsonLDPage)
	}))
	defer server.Close()

	recipe, err := quietImporter(server.Client()).Import(context.Background(), server.URL+"/pancakes")
	require.NoError(t, err)

	assert.Equal(t, "test-agent", gotAgent)
	assert.Equal(t, "Grandma's Pancakes", recipe.Title)
	assert.Equal(t, "Fluffy pancakes", recipe.Description)
	assert.Equal(t, "https://example.com/pancakes.jpg", recipe.ImageURL)
	assert.Equal(t, server.URL+"/pancakes", recipe.SourceURL)
	assert.Equal(t, 4, recipe.Servings)
	assert.Equal(t, 10, recipe.PrepTimeMinutes)
	assert.Equal(t, 65, recipe.CookTimeMinutes)
	assert.Equal(t, "american", recipe.Cuisine)
	assert.Equal(t, []string{"breakfast", "sweet"}, recipe.Tags)
	assert.Equal(t, 320, recipe.Nutrition.Calories)
	assert.Equal(t, 9.5, recipe.Nutrition.ProteinG)

	wantIngredients := []models.Ingredient{
		{Name: "flour", Amount: "1 1/2", Unit: "cups"},
		{Name: "eggs", Amount: "2"},
		{Name: "sugar", Amount: "1", Unit: "tbsp"},
		{Name: "Salt to taste"},
		{Name: "milk", Amount: "250", Unit: "ml"},
	}
	if diff := cmp.Diff(wantIngredients, recipe.Ingredients); diff != "" {
		t.Errorf("ingredients mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Mix the dry ingredients.", "Whisk in eggs and milk.", "Fry until golden."}, recipe.Instructions)
}

func TestImportMicrodata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, microdataPage)
	}))
	defer server.Close()

	recipe, err := quietImporter(server.Client()).Import(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Tomato Soup", recipe.Title)
	assert.Equal(t, 2, recipe.Servings)
	assert.Equal(t, 15, recipe.PrepTimeMinutes)
	assert.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "tomatoes", recipe.Ingredients[0].Name)
	assert.Equal(t, []string{"Chop.", "Simmer."}, recipe.Instructions)
}

func TestImportErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "<html><body><p>Just a blog post.</p></body></html>")
	}))
	defer server.Close()
	im := quietImporter(server.Client())

	_, err := im.Import(context.Background(), server.URL+"/plain")
	assert.ErrorIs(t, err, ErrNoRecipe)

	_, err = im.Import(context.Background(), server.URL+"/missing")
	assert.ErrorIs(t, err, ErrFetch)

	for _, bad := range []string{"", "ftp://example.com/r", "/relative/path", "http://"} {
		_, err = im.Import(context.Background(), bad)
		assert.ErrorIs(t, err, ErrInvalidURL, "url %q", bad)
	}
}

func TestParseIngredientLine(t *testing.T) {
	tests := []struct {
		line string
		want models.Ingredient
	}{
		{"1 1/2 cups flour", models.Ingredient{Name: "flour", Amount: "1 1/2", Unit: "cups"}},
		{"2 large eggs", models.Ingredient{Name: "large eggs", Amount: "2"}},
		{"½ tsp salt", models.Ingredient{Name: "salt", Amount: "½", Unit: "tsp"}},
		{"3 cloves of garlic", models.Ingredient{Name: "garlic", Amount: "3", Unit: "cloves"}},
		{"500g minced beef", models.Ingredient{Name: "minced beef", Amount: "500", Unit: "g"}},
		{"2-3 carrots", models.Ingredient{Name: "carrots", Amount: "2-3"}},
		{"Fresh basil", models.Ingredient{Name: "Fresh basil"}},
		{"   ", models.Ingredient{}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIngredientLine(tt.line))
		})
	}
}

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"PT30M", 30, true},
		{"PT1H30M", 90, true},
		{"P1DT2H", 1560, true},
		{"PT90S", 2, true},
		{"PT0.5H", 30, true},
		{"30 minutes", 0, false},
		{"PT", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDurationMinutes(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractRequiresMarkup(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<script type="application/ld+json">not json</script>`))
	require.NoError(t, err)
	_, err = Extract(doc)
	assert.ErrorIs(t, err, ErrNoRecipe)
}
