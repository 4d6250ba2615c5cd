package recipe

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Ingredient is a single ingredient line. A nil Quantity means "to taste".
type Ingredient struct {
	Quantity    *float64 `json:"quantity"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
}

// Recipe is the full record shown in the detail view and stored as a bookmark.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Publisher   string       `json:"publisher"`
	SourceURL   string       `json:"sourceUrl"`
	Image       string       `json:"image"`
	Servings    int          `json:"servings"`
	CookingTime int          `json:"cookingTime"`
	Ingredients []Ingredient `json:"ingredients"`
	Key         string       `json:"key,omitempty"`

	Bookmarked bool `json:"-"`
}

// Summary is the lightweight search result row.
type Summary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Image     string `json:"image"`
	Key       string `json:"key,omitempty"`
}

func (r Recipe) UserGenerated() bool {
	return r.Key != ""
}

func (r Recipe) Summary() Summary {
	return Summary{ID: r.ID, Title: r.Title, Publisher: r.Publisher, Image: r.Image, Key: r.Key}
}

// Clone returns a deep copy so rescaling never aliases a bookmarked record.
func (r Recipe) Clone() Recipe {
	out := r
	if r.Ingredients != nil {
		out.Ingredients = make([]Ingredient, len(r.Ingredients))
		for i, ing := range r.Ingredients {
			out.Ingredients[i] = ing
			if ing.Quantity != nil {
				q := *ing.Quantity
				out.Ingredients[i].Quantity = &q
			}
		}
	}
	return out
}

// ScaleIngredients rescales quantities in place from servings `from` to `to`.
func ScaleIngredients(ingredients []Ingredient, from, to int) {
	if from <= 0 || to <= 0 || from == to {
		return
	}
	for i := range ingredients {
		if ingredients[i].Quantity == nil {
			continue
		}
		q := *ingredients[i].Quantity / float64(from) * float64(to)
		ingredients[i].Quantity = &q
	}
}

func Quantity(v float64) *float64 {
	return &v
}

// FormatQuantity renders a quantity as a whole number or mixed fraction.
func FormatQuantity(q *float64) string {
	if q == nil {
		return ""
	}
	v := *q
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	whole := math.Floor(v)
	frac := v - whole
	if frac < 1e-9 {
		return strconv.FormatFloat(whole, 'f', 0, 64)
	}
	if 1-frac < 1e-9 {
		return strconv.FormatFloat(whole+1, 'f', 0, 64)
	}
	for den := 2; den <= 8; den++ {
		num := math.Round(frac * float64(den))
		if num == 0 || num == float64(den) {
			continue
		}
		if math.Abs(frac-num/float64(den)) < 1e-6 {
			n, d := reduce(int(num), den)
			if whole == 0 {
				return fmt.Sprintf("%d/%d", n, d)
			}
			return fmt.Sprintf("%d %d/%d", int(whole), n, d)
		}
	}
	return strings.TrimRight(strings.TrimRight(strconv.FormatFloat(v, 'f', 2, 64), "0"), ".")
}

func reduce(n, d int) (int, int) {
	a, b := n, d
	for b != 0 {
		a, b = b, a%b
	}
	return n / a, d / a
}
