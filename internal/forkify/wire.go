package forkify

import "github.com/glabrego/forkify-cli/internal/recipe"

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Results int    `json:"results"`
	Data    struct {
		Recipe  *wireRecipe  `json:"recipe"`
		Recipes []wireRecipe `json:"recipes"`
	} `json:"data"`
}

type wireIngredient struct {
	Quantity    *float64 `json:"quantity"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
}

type wireRecipe struct {
	ID          string           `json:"id,omitempty"`
	Title       string           `json:"title"`
	Publisher   string           `json:"publisher"`
	SourceURL   string           `json:"source_url"`
	ImageURL    string           `json:"image_url"`
	Servings    int              `json:"servings,omitempty"`
	CookingTime int              `json:"cooking_time,omitempty"`
	Ingredients []wireIngredient `json:"ingredients,omitempty"`
	Key         string           `json:"key,omitempty"`
}

func (w wireRecipe) toRecipe() recipe.Recipe {
	r := recipe.Recipe{
		ID:          w.ID,
		Title:       w.Title,
		Publisher:   w.Publisher,
		SourceURL:   w.SourceURL,
		Image:       w.ImageURL,
		Servings:    w.Servings,
		CookingTime: w.CookingTime,
		Key:         w.Key,
	}
	if w.Ingredients != nil {
		r.Ingredients = make([]recipe.Ingredient, 0, len(w.Ingredients))
		for _, ing := range w.Ingredients {
			r.Ingredients = append(r.Ingredients, recipe.Ingredient(ing))
		}
	}
	return r
}

func fromRecipe(r recipe.Recipe) wireRecipe {
	w := wireRecipe{
		Title:       r.Title,
		Publisher:   r.Publisher,
		SourceURL:   r.SourceURL,
		ImageURL:    r.Image,
		Servings:    r.Servings,
		CookingTime: r.CookingTime,
		Ingredients: make([]wireIngredient, 0, len(r.Ingredients)),
	}
	for _, ing := range r.Ingredients {
		w.Ingredients = append(w.Ingredients, wireIngredient(ing))
	}
	return w
}
