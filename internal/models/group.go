package models

// Group is an eat-together dining group.
type Group struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Code        string `json:"code,omitempty"`
}

// FoodMatch is a restaurant recommended for a group.
type FoodMatch struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	CuisineType string `json:"cuisine_type"`
	PriceRange  string `json:"price_range"`
	Description string `json:"description"`
}

// CreateGroupRequest is the body of POST /api/group/create.
type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MemberRequest is the body of POST /api/group/{id}/member.
type MemberRequest struct {
	MemberID ID `json:"member_id"`
}
