package importer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/smartchef/smartchef/internal/calculator"
	"github.com/smartchef/smartchef/internal/models"
)

// units recognised right after an amount. Matching is case-insensitive and
// ignores a trailing period ("tbsp.").
var units = map[string]bool{
	"cup": true, "cups": true, "c": true,
	"tablespoon": true, "tablespoons": true, "tbsp": true, "tbs": true, "tb": true,
	"teaspoon": true, "teaspoons": true, "tsp": true,
	"gram": true, "grams": true, "g": true, "kilogram": true, "kilograms": true, "kg": true,
	"milliliter": true, "milliliters": true, "millilitre": true, "millilitres": true, "ml": true,
	"liter": true, "liters": true, "litre": true, "litres": true, "l": true,
	"ounce": true, "ounces": true, "oz": true, "pound": true, "pounds": true, "lb": true, "lbs": true,
	"pinch": true, "pinches": true, "dash": true, "dashes": true,
	"clove": true, "cloves": true, "can": true, "cans": true, "jar": true, "jars": true,
	"slice": true, "slices": true, "piece": true, "pieces": true, "bunch": true, "bunches": true,
	"package": true, "packages": true, "pkg": true, "stick": true, "sticks": true,
	"sprig": true, "sprigs": true, "handful": true, "handfuls": true,
}

var attachedUnit = regexp.MustCompile(`^(\d+(?:\.\d+)?)([A-Za-z]+)$`)

// ParseIngredientLine splits a free-text ingredient line such as
// "1 1/2 cups flour" into amount, unit and name. Lines without a leading
// amount keep the whole text as the name.
func ParseIngredientLine(line string) models.Ingredient {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return models.Ingredient{}
	}

	var amount []string
	var unit string

	// "500g flour"
	if m := attachedUnit.FindStringSubmatch(fields[0]); m != nil && units[strings.ToLower(m[2])] && len(fields) > 1 {
		return models.Ingredient{
			Name:   strings.TrimPrefix(strings.Join(fields[1:], " "), "of "),
			Amount: m[1],
			Unit:   m[2],
		}
	}

	// Mixed numbers take two tokens ("1 1/2"); "1½" is a single token.
	if len(fields) >= 2 && isNumber(fields[0]) && strings.Contains(fields[1], "/") {
		if _, ok := calculator.ParseAmount(fields[0] + " " + fields[1]); ok {
			amount, fields = fields[:2], fields[2:]
		}
	}
	if amount == nil && isAmountToken(fields[0]) {
		amount, fields = fields[:1], fields[1:]
	}

	if amount != nil && len(fields) > 1 {
		candidate := strings.ToLower(strings.TrimSuffix(fields[0], "."))
		if units[candidate] {
			unit, fields = strings.TrimSuffix(fields[0], "."), fields[1:]
		}
	}

	name := strings.Join(fields, " ")
	if amount != nil {
		name = strings.TrimPrefix(name, "of ")
	}
	return models.Ingredient{
		Name:   strings.TrimSpace(strings.TrimLeft(name, ",-")),
		Amount: strings.Join(amount, " "),
		Unit:   unit,
	}
}

func isNumber(s string) bool {
	_, ok := calculator.ParseAmount(s)
	return ok
}

// isAmountToken accepts numbers, fractions and ranges such as "2-3".
func isAmountToken(s string) bool {
	if isNumber(s) {
		return true
	}
	r := []rune(s)
	if !unicode.IsDigit(r[0]) {
		return false
	}
	for _, c := range r {
		if !unicode.IsDigit(c) && !strings.ContainsRune("./-–½⅓⅔¼¾⅛", c) {
			return false
		}
	}
	return true
}
