package api

import (
	"fmt"
	"strings"
	"time"
)

const (
	SourceMembers = "members"
	SourceRecipes = "recipes"
)

// Source describes a searchable field: how long it waits for typing to
// settle and what it tells the user.
type Source struct {
	Name        string
	Delay       time.Duration
	Placeholder string
	FailureText string
}

// Registry returns the searchable sources keyed by name.
func Registry(memberDelay, recipeDelay time.Duration) map[string]Source {
	return map[string]Source{
		SourceMembers: {
			Name:        SourceMembers,
			Delay:       defaultDuration(memberDelay, 500*time.Millisecond),
			Placeholder: "No users found",
			FailureText: "Failed to search for users.",
		},
		SourceRecipes: {
			Name:        SourceRecipes,
			Delay:       defaultDuration(recipeDelay, time.Second),
			Placeholder: "No recipes found.",
			FailureText: "Failed to search recipes.",
		},
	}
}

func Lookup(registry map[string]Source, name string) (Source, error) {
	source, ok := registry[NormalizeSource(name)]
	if !ok {
		return Source{}, fmt.Errorf("unknown source: %s", name)
	}
	return source, nil
}

func NormalizeSource(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "member", "user", "users":
		return SourceMembers
	case "recipe":
		return SourceRecipes
	default:
		return name
	}
}

func defaultDuration(value, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}
	return value
}
