package recipe

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScaleIngredients_Proportional(t *testing.T) {
	ings := []Ingredient{
		{Quantity: Quantity(2), Unit: "cup", Description: "flour"},
		{Unit: "", Description: "salt"},
	}
	ScaleIngredients(ings, 4, 8)

	if got := *ings[0].Quantity; got != 4 {
		t.Fatalf("expected quantity 4, got %v", got)
	}
	if ings[1].Quantity != nil {
		t.Fatalf("expected nil quantity to stay nil, got %v", *ings[1].Quantity)
	}
}

func TestScaleIngredients_IgnoresNonPositiveServings(t *testing.T) {
	ings := []Ingredient{{Quantity: Quantity(3)}}
	ScaleIngredients(ings, 0, 2)
	ScaleIngredients(ings, 2, 0)
	if *ings[0].Quantity != 3 {
		t.Fatalf("expected quantity untouched, got %v", *ings[0].Quantity)
	}
}

func TestClone_DoesNotShareQuantities(t *testing.T) {
	orig := Recipe{ID: "a", Ingredients: []Ingredient{{Quantity: Quantity(1)}}}
	cp := orig.Clone()
	ScaleIngredients(cp.Ingredients, 1, 3)
	if *orig.Ingredients[0].Quantity != 1 {
		t.Fatalf("clone aliased original quantity: %v", *orig.Ingredients[0].Quantity)
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		in   *float64
		want string
	}{
		{nil, ""},
		{Quantity(2), "2"},
		{Quantity(0.5), "1/2"},
		{Quantity(1.5), "1 1/2"},
		{Quantity(0.25), "1/4"},
		{Quantity(2.0 / 3.0), "2/3"},
		{Quantity(1.2345), "1.23"},
	}
	for _, tt := range tests {
		if got := FormatQuantity(tt.in); got != tt.want {
			t.Fatalf("FormatQuantity(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseIngredient(t *testing.T) {
	got, err := ParseIngredient("2,cup,flour")
	if err != nil {
		t.Fatalf("ParseIngredient returned error: %v", err)
	}
	want := Ingredient{Quantity: Quantity(2), Unit: "cup", Description: "flour"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected ingredient (-want +got):\n%s", diff)
	}

	got, err = ParseIngredient(" , pinch , salt ")
	if err != nil {
		t.Fatalf("ParseIngredient returned error: %v", err)
	}
	if got.Quantity != nil || got.Unit != "pinch" || got.Description != "salt" {
		t.Fatalf("unexpected ingredient: %+v", got)
	}

	if _, err := ParseIngredient("2,cup"); err == nil {
		t.Fatal("expected error for two fields")
	}
	if _, err := ParseIngredient("lots,cup,flour"); err == nil {
		t.Fatal("expected error for non-numeric quantity")
	}
}

func validForm() Form {
	return Form{
		Title:       "Pancakes",
		SourceURL:   "https://example.com/pancakes",
		Image:       "https://example.com/pancakes.jpg",
		Publisher:   "Me",
		CookingTime: "20",
		Servings:    "4",
		Ingredients: []string{"2,cup,flour", "", "1,,egg"},
	}
}

func TestFormBuild_SkipsEmptyLines(t *testing.T) {
	rec, err := validForm().Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(rec.Ingredients) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(rec.Ingredients))
	}
	if rec.Servings != 4 || rec.CookingTime != 20 {
		t.Fatalf("unexpected numbers: %+v", rec)
	}
}

func TestFormBuild_MalformedIngredientLine(t *testing.T) {
	f := validForm()
	f.Ingredients = []string{"2,cup,flour", "2,cup"}

	_, err := f.Build()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "ingredient" || verr.Line != 2 {
		t.Fatalf("unexpected validation error: %+v", verr)
	}
	if verr.Message == "" {
		t.Fatal("expected human-readable message")
	}
}

func TestFormBuild_RequiredFields(t *testing.T) {
	f := validForm()
	f.Title = "  "
	if _, err := f.Build(); err == nil {
		t.Fatal("expected error for missing title")
	}

	f = validForm()
	f.Servings = "0"
	if _, err := f.Build(); err == nil {
		t.Fatal("expected error for zero servings")
	}
}
