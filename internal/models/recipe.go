package models

// Recipe is a recipe search hit.
type Recipe struct {
	ID          ID      `json:"id"`
	Name        string  `json:"name"`
	ImageURL    string  `json:"image_url,omitempty"`
	CookTime    Number  `json:"cook_time"`
	Rating      Number  `json:"rating"`
	Description string  `json:"description"`
}

// PlaceholderImage is shown for recipes without an image.
const PlaceholderImage = "https://via.placeholder.com/300x200"

func (r Recipe) Image() string {
	if r.ImageURL == "" {
		return PlaceholderImage
	}
	return r.ImageURL
}
