package markup

const viewTemplates = `
{{define "recipe"}}
<figure class="recipe__fig">
  <img src="{{.Image}}" alt="{{.Title}}" class="recipe__img">
  <h1 class="recipe__title"><span>{{.Title}}</span></h1>
</figure>
<div class="recipe__details">
  <div class="recipe__info">
    <span class="recipe__info-data recipe__info-data--minutes">{{.CookingTime}}</span>
    <span class="recipe__info-text">minutes</span>
  </div>
  <div class="recipe__info">
    <span class="recipe__info-data recipe__info-data--people">{{.Servings}}</span>
    <span class="recipe__info-text">servings</span>
    <div class="recipe__info-buttons">
      <button class="btn--tiny btn--update-servings btn--decrease-servings" data-update-to="{{sub .Servings 1}}">-</button>
      <button class="btn--tiny btn--update-servings btn--increase-servings" data-update-to="{{add .Servings 1}}">+</button>
    </div>
  </div>
  <div class="recipe__user-generated {{if not .Key}}hidden{{end}}">user recipe</div>
  <button class="btn--round btn--bookmark" data-bookmarked="{{.Bookmarked}}">{{if .Bookmarked}}bookmarked{{else}}bookmark{{end}}</button>
</div>
<div class="recipe__ingredients">
  <h2 class="heading--2">Recipe ingredients</h2>
  <ul class="recipe__ingredient-list">
    {{range .Ingredients}}
    <li class="recipe__ingredient">
      <div class="recipe__quantity">{{qty .Quantity}}</div>
      <div class="recipe__description">
        <span class="recipe__unit">{{.Unit}}</span>
        <span class="recipe__ingredient-name">{{.Description}}</span>
      </div>
    </li>
    {{end}}
  </ul>
</div>
<div class="recipe__directions">
  <h2 class="heading--2">How to cook it</h2>
  <p class="recipe__directions-text">
    <span>This recipe was carefully designed and tested by</span>
    <span class="recipe__publisher">{{.Publisher}}</span>
    <span>. Please check out directions at their website.</span>
  </p>
  <a class="btn--small recipe__btn" href="{{.SourceURL}}">Directions</a>
</div>
{{end}}

{{define "preview"}}
<li class="preview" data-id="{{.ID}}">
  <a class="preview__link {{if .Active}}preview__link--active{{end}}" href="#{{.ID}}">
    <figure class="preview__fig"><img src="{{.Image}}" alt="{{.Title}}"></figure>
    <div class="preview__data">
      <h4 class="preview__title">{{.Title}}</h4>
      <p class="preview__publisher">{{.Publisher}}</p>
      <div class="preview__user-generated {{if not .Key}}hidden{{end}}">user recipe</div>
    </div>
  </a>
</li>
{{end}}

{{define "results"}}
<ul class="results">
  {{range .Items}}{{template "preview" (previewOf . $.ActiveID)}}{{end}}
</ul>
{{end}}

{{define "bookmarks"}}
<ul class="bookmarks__list">
  {{range .Items}}{{template "preview" (previewOf . $.ActiveID)}}{{end}}
</ul>
{{end}}

{{define "pagination"}}
<div class="pagination">
  {{with .Controls}}
  {{if .HasPrev}}<button data-goto="{{.Prev}}" class="btn--inline pagination__btn--prev"><span>Page {{.Prev}}</span></button>{{end}}
  {{if .HasNext}}<button data-goto="{{.Next}}" class="btn--inline pagination__btn--next"><span>Page {{.Next}}</span></button>{{end}}
  {{end}}
</div>
{{end}}

{{define "message"}}
<div class="{{.Kind}}">
  <p>{{.Text}}</p>
</div>
{{end}}

{{define "spinner"}}
<div class="spinner">
  <p>Loading...</p>
</div>
{{end}}
`
