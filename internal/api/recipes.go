package api

import (
	"context"

	"github.com/jimezsa/eatcli/internal/models"
)

func (s *Service) SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.client.Get(ctx, SearchPath("/recipe/search", "query", query), &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *Service) RateRecipe(ctx context.Context, recipeID string, rating int) error {
	path := "/api/recipe/" + segment(recipeID) + "/rate"
	return s.client.Post(ctx, path, models.RecipeRatingRequest{Rating: rating}, nil)
}

// RecipePath is the page a recipe result links to.
func RecipePath(recipeID string) string {
	return "/recipe/" + segment(recipeID)
}
