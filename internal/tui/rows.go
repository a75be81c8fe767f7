package tui

import (
	"fmt"

	"github.com/jimezsa/eatcli/internal/models"
)

// Action is the button rendered next to a result row, bound to one id.
type Action struct {
	Label string
	ID    string
}

type Row struct {
	Text   string
	Action Action
}

func MemberRows(users []models.User) []Row {
	rows := make([]Row, 0, len(users))
	for _, user := range users {
		rows = append(rows, Row{
			Text:   user.Email,
			Action: Action{Label: "Add Member", ID: user.ID.String()},
		})
	}
	return rows
}

func RecipeRows(recipes []models.Recipe) []Row {
	rows := make([]Row, 0, len(recipes))
	for _, recipe := range recipes {
		rows = append(rows, Row{
			Text:   fmt.Sprintf("%s (%s mins, %s/5)", recipe.Name, recipe.CookTime, recipe.Rating),
			Action: Action{Label: "View Recipe", ID: recipe.ID.String()},
		})
	}
	return rows
}
