package recipe

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxIngredientLines is the number of ingredient inputs the upload form offers.
const MaxIngredientLines = 6

// Form is the raw user input of the upload form. Every field is unparsed text.
type Form struct {
	Title       string
	SourceURL   string
	Image       string
	Publisher   string
	CookingTime string
	Servings    string
	Ingredients []string
}

// ValidationError reports malformed user input. Line is 1-based for
// ingredient lines and 0 for plain fields.
type ValidationError struct {
	Field   string
	Line    int
	Message string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s %d: %s", e.Field, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseIngredient splits "quantity,unit,description". An empty quantity
// yields a nil Quantity.
func ParseIngredient(line string) (Ingredient, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return Ingredient{}, fmt.Errorf("wrong ingredient format, please use quantity,unit,description")
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	ing := Ingredient{Unit: parts[1], Description: parts[2]}
	if parts[0] != "" {
		q, err := strconv.ParseFloat(parts[0], 64)
		if err != nil || q <= 0 {
			return Ingredient{}, fmt.Errorf("quantity %q is not a positive number", parts[0])
		}
		ing.Quantity = &q
	}
	return ing, nil
}

// Build validates the form and returns the recipe to submit. The result has
// no ID; the API assigns one.
func (f Form) Build() (Recipe, error) {
	required := []struct {
		field string
		value string
	}{
		{"title", f.Title},
		{"sourceUrl", f.SourceURL},
		{"image", f.Image},
		{"publisher", f.Publisher},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return Recipe{}, &ValidationError{Field: r.field, Message: "is required"}
		}
	}

	servings, err := strconv.Atoi(strings.TrimSpace(f.Servings))
	if err != nil || servings <= 0 {
		return Recipe{}, &ValidationError{Field: "servings", Message: "must be a positive whole number"}
	}
	cookingTime, err := strconv.Atoi(strings.TrimSpace(f.CookingTime))
	if err != nil || cookingTime < 0 {
		return Recipe{}, &ValidationError{Field: "cookingTime", Message: "must be a whole number of minutes"}
	}

	ingredients := make([]Ingredient, 0, len(f.Ingredients))
	for i, line := range f.Ingredients {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ing, err := ParseIngredient(line)
		if err != nil {
			return Recipe{}, &ValidationError{Field: "ingredient", Line: i + 1, Message: err.Error()}
		}
		ingredients = append(ingredients, ing)
	}

	return Recipe{
		Title:       strings.TrimSpace(f.Title),
		SourceURL:   strings.TrimSpace(f.SourceURL),
		Image:       strings.TrimSpace(f.Image),
		Publisher:   strings.TrimSpace(f.Publisher),
		Servings:    servings,
		CookingTime: cookingTime,
		Ingredients: ingredients,
	}, nil
}
