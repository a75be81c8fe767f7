package export

import (
	"html/template"
	"io"

	"github.com/jimezsa/eatcli/internal/api"
	"github.com/jimezsa/eatcli/internal/models"
)

var htmlTemplates = template.Must(template.New("export").Parse(`
{{define "users"}}{{if not .}}<p class="text-muted">No users found</p>
{{else}}{{range .}}<div class="member-result d-flex justify-content-between align-items-center p-2">
    <span>{{.Email}}</span>
    <button class="btn btn-sm btn-primary" onclick="addMember('{{.ID}}')">Add Member</button>
</div>
{{end}}{{end}}{{end}}
{{define "recipes"}}{{if not .}}<p class="text-muted">No recipes found.</p>
{{else}}{{range .}}<div class="col-md-4 mb-4">
    <div class="card recipe-card">
        <img src="{{.Image}}" class="card-img-top" alt="{{.Name}}">
        <div class="card-body">
            <h5 class="card-title">{{.Name}}</h5>
            <p class="card-text"><small class="text-muted"><span class="me-3">⏰ {{.CookTime}} mins</span><span>⭐ {{.Rating}}/5</span></small></p>
            <p class="card-text">{{.Description}}</p>
            <a href="{{.Link}}" class="btn btn-primary">View Recipe</a>
        </div>
    </div>
</div>
{{end}}{{end}}{{end}}
{{define "matches"}}{{range .}}<div class="food-match">
    <h5>{{.Name}}</h5>
    <p class="text-muted">{{.CuisineType}} • {{.PriceRange}}</p>
    <p>{{.Description}}</p>
    <a href="{{.Link}}" class="btn btn-primary mt-3">View Details</a>
</div>
{{end}}{{end}}
`))

type userCard struct {
	ID    string
	Email string
}

type recipeCard struct {
	Name        string
	Image       string
	CookTime    string
	Rating      string
	Description string
	Link        string
}

type matchCard struct {
	Name        string
	CuisineType string
	PriceRange  string
	Description string
	Link        string
}

func writeUserHTML(w io.Writer, users []models.User) error {
	cards := make([]userCard, 0, len(users))
	for _, user := range users {
		cards = append(cards, userCard{ID: user.ID.String(), Email: user.Email})
	}
	return htmlTemplates.ExecuteTemplate(w, "users", cards)
}

func writeRecipeHTML(w io.Writer, recipes []models.Recipe) error {
	cards := make([]recipeCard, 0, len(recipes))
	for _, recipe := range recipes {
		cards = append(cards, recipeCard{
			Name:        recipe.Name,
			Image:       recipe.Image(),
			CookTime:    recipe.CookTime.String(),
			Rating:      recipe.Rating.String(),
			Description: recipe.Description,
			Link:        api.RecipePath(recipe.ID.String()),
		})
	}
	return htmlTemplates.ExecuteTemplate(w, "recipes", cards)
}

func writeMatchHTML(w io.Writer, matches []models.FoodMatch) error {
	cards := make([]matchCard, 0, len(matches))
	for _, match := range matches {
		cards = append(cards, matchCard{
			Name:        match.Name,
			CuisineType: match.CuisineType,
			PriceRange:  match.PriceRange,
			Description: match.Description,
			Link:        RestaurantPath(match.ID.String()),
		})
	}
	return htmlTemplates.ExecuteTemplate(w, "matches", cards)
}

