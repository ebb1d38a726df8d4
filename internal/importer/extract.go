package importer

import (
	"encoding/json"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/smartchef/smartchef/internal/models"
)

// Extract finds the first schema.org Recipe in doc, preferring JSON-LD over
// microdata. It returns ErrNoRecipe when the page has neither.
func Extract(doc *goquery.Document) (*models.Recipe, error) {
	var found map[string]any
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return true
		}
		found = findRecipeNode(data)
		return found == nil
	})
	if found != nil {
		return fromJSONLD(found), nil
	}

	if recipe := fromMicrodata(doc); recipe != nil {
		return recipe, nil
	}
	return nil, ErrNoRecipe
}

// findRecipeNode walks objects, arrays and @graph containers.
func findRecipeNode(v any) map[string]any {
	switch node := v.(type) {
	case []any:
		for _, item := range node {
			if r := findRecipeNode(item); r != nil {
				return r
			}
		}
	case map[string]any:
		if hasType(node["@type"], "Recipe") {
			return node
		}
		if graph, ok := node["@graph"]; ok {
			return findRecipeNode(graph)
		}
	}
	return nil
}

func hasType(v any, want string) bool {
	switch t := v.(type) {
	case string:
		return t == want
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == want {
				return true
			}
		}
	}
	return false
}

func fromJSONLD(node map[string]any) *models.Recipe {
	r := &models.Recipe{
		Title:       cleanText(str(node["name"])),
		Description: cleanText(str(node["description"])),
		Cuisine:     firstString(node["recipeCuisine"]),
		ImageURL:    imageURL(node["image"]),
	}

	for _, line := range stringList(node["recipeIngredient"]) {
		if ing := ParseIngredientLine(cleanText(line)); ing.Name != "" {
			r.Ingredients = append(r.Ingredients, ing)
		}
	}
	r.Instructions = instructions(node["recipeInstructions"])
	r.Servings = servings(node["recipeYield"])

	if m, ok := ParseDurationMinutes(str(node["prepTime"])); ok {
		r.PrepTimeMinutes = m
	}
	if m, ok := ParseDurationMinutes(str(node["cookTime"])); ok {
		r.CookTimeMinutes = m
	}
	if r.PrepTimeMinutes == 0 && r.CookTimeMinutes == 0 {
		if m, ok := ParseDurationMinutes(str(node["totalTime"])); ok {
			r.CookTimeMinutes = m
		}
	}

	r.Tags = keywords(node["keywords"])
	if nutrition, ok := node["nutrition"].(map[string]any); ok {
		r.Nutrition.Calories = int(leadingNumber(str(nutrition["calories"])))
		r.Nutrition.ProteinG = leadingNumber(str(nutrition["proteinContent"]))
		r.Nutrition.CarbsG = leadingNumber(str(nutrition["carbohydrateContent"]))
		r.Nutrition.FatG = leadingNumber(str(nutrition["fatContent"]))
	}
	return r
}

// instructions flattens text, HowToStep and HowToSection shapes.
func instructions(v any) []string {
	var steps []string
	switch node := v.(type) {
	case string:
		for _, line := range strings.Split(node, "\n") {
			if line = cleanText(line); line != "" {
				steps = append(steps, line)
			}
		}
	case []any:
		for _, item := range node {
			steps = append(steps, instructions(item)...)
		}
	case map[string]any:
		if hasType(node["@type"], "HowToSection") {
			return instructions(node["itemListElement"])
		}
		text := str(node["text"])
		if text == "" {
			text = str(node["name"])
		}
		if text = cleanText(text); text != "" {
			steps = append(steps, text)
		}
	}
	return steps
}

func fromMicrodata(doc *goquery.Document) *models.Recipe {
	scope := doc.Find(`[itemtype*="schema.org/Recipe"]`).First()
	if scope.Length() == 0 {
		return nil
	}

	r := &models.Recipe{
		Title:       cleanText(itemprop(scope, "name")),
		Description: cleanText(itemprop(scope, "description")),
		Cuisine:     cleanText(itemprop(scope, "recipeCuisine")),
	}
	scope.Find(`[itemprop="recipeIngredient"], [itemprop="ingredients"]`).Each(func(_ int, s *goquery.Selection) {
		if ing := ParseIngredientLine(cleanText(s.Text())); ing.Name != "" {
			r.Ingredients = append(r.Ingredients, ing)
		}
	})
	scope.Find(`[itemprop="recipeInstructions"]`).Each(func(_ int, s *goquery.Selection) {
		items := s.Find("li")
		if items.Length() == 0 {
			items = s
		}
		items.Each(func(_ int, step *goquery.Selection) {
			if text := cleanText(step.Text()); text != "" {
				r.Instructions = append(r.Instructions, text)
			}
		})
	})
	if img, ok := scope.Find(`[itemprop="image"]`).First().Attr("src"); ok {
		r.ImageURL = img
	}
	r.Servings = servings(itemprop(scope, "recipeYield"))
	if m, ok := ParseDurationMinutes(itempropAttr(scope, "prepTime", "content", "datetime")); ok {
		r.PrepTimeMinutes = m
	}
	if m, ok := ParseDurationMinutes(itempropAttr(scope, "cookTime", "content", "datetime")); ok {
		r.CookTimeMinutes = m
	}

	if r.Title == "" && len(r.Ingredients) == 0 {
		return nil
	}
	return r
}

// itemprop returns the content attribute or the text of the first matching property.
func itemprop(scope *goquery.Selection, name string) string {
	return itempropAttr(scope, name, "content")
}

func itempropAttr(scope *goquery.Selection, name string, attrs ...string) string {
	sel := scope.Find(`[itemprop="` + name + `"]`).First()
	for _, attr := range attrs {
		if v, ok := sel.Attr(attr); ok {
			return v
		}
	}
	return sel.Text()
}

var (
	tags       = regexp.MustCompile(`<[^>]*>`)
	spaces     = regexp.MustCompile(`\s+`)
	numberHead = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// cleanText strips markup and entities and collapses whitespace.
func cleanText(s string) string {
	s = html.UnescapeString(tags.ReplaceAllString(s, " "))
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}

func str(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		if len(t) > 0 {
			return str(t[0])
		}
	}
	return ""
}

// strings_ returns v as a list of strings.
func stringList(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := str(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func firstString(v any) string {
	return strings.ToLower(cleanText(str(v)))
}

func imageURL(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		if len(t) > 0 {
			return imageURL(t[0])
		}
	case map[string]any:
		return str(t["url"])
	}
	return ""
}

// servings reads the first number of a yield such as "4 servings" or ["4", "4 servings"].
func servings(v any) int {
	n := int(leadingNumber(str(v)))
	if n <= 0 {
		return 1
	}
	return n
}

func leadingNumber(s string) float64 {
	m := numberHead.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

// keywords accepts a comma-separated string or a list.
func keywords(v any) []string {
	var raw []string
	switch t := v.(type) {
	case string:
		raw = strings.Split(t, ",")
	default:
		raw = stringList(t)
	}
	var out []string
	for _, k := range raw {
		if k = strings.ToLower(cleanText(k)); k != "" {
			out = append(out, k)
		}
	}
	return out
}
