package models

// MenuRatingRequest is the body of POST /api/menu/{id}/rate.
type MenuRatingRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// MenuRatingResponse reports whether the service accepted a menu rating.
type MenuRatingResponse struct {
	Success bool `json:"success"`
}

// RecipeRatingRequest is the body of POST /api/recipe/{id}/rate.
type RecipeRatingRequest struct {
	Rating int `json:"rating"`
}
