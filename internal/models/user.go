package models

// User is a member search hit.
type User struct {
	ID    ID     `json:"id"`
	Email string `json:"email"`
}
