// Package rating holds the state of a five-star rating picker. What is shown
// is derived from the state alone: a hovered star wins over the selection,
// and the selection wins over the last accepted rating.
package rating

import (
	"errors"
	"fmt"
	"strings"
)

const MaxStars = 5

var ErrNoSelection = errors.New("please select a rating before submitting")

type Widget struct {
	current  int
	selected int
	hover    int
}

// New starts a widget showing the rating already on record (0 for none).
func New(current int) *Widget {
	return &Widget{current: clamp(current)}
}

func Validate(stars int) error {
	if stars < 1 || stars > MaxStars {
		return fmt.Errorf("rating must be between 1 and %d, got %d", MaxStars, stars)
	}
	return nil
}

func (w *Widget) Hover(stars int) {
	if Validate(stars) == nil {
		w.hover = stars
	}
}

func (w *Widget) Leave() {
	w.hover = 0
}

func (w *Widget) Select(stars int) error {
	if err := Validate(stars); err != nil {
		return err
	}
	w.selected = stars
	return nil
}

// Selection returns the chosen rating or ErrNoSelection.
func (w *Widget) Selection() (int, error) {
	if w.selected == 0 {
		return 0, ErrNoSelection
	}
	return w.selected, nil
}

// Accept records a rating the service has taken.
func (w *Widget) Accept(stars int) {
	w.current = clamp(stars)
	w.selected = w.current
}

func (w *Widget) Current() int {
	return w.current
}

// Shown is the rating the stars currently display.
func (w *Widget) Shown() int {
	switch {
	case w.hover > 0:
		return w.hover
	case w.selected > 0:
		return w.selected
	default:
		return w.current
	}
}

// Lit reports, per star, whether it is highlighted.
func (w *Widget) Lit() [MaxStars]bool {
	var lit [MaxStars]bool
	shown := w.Shown()
	for i := range lit {
		lit[i] = i+1 <= shown
	}
	return lit
}

func (w *Widget) String() string {
	var b strings.Builder
	for _, on := range w.Lit() {
		if on {
			b.WriteString("★")
		} else {
			b.WriteString("☆")
		}
	}
	return b.String()
}

func clamp(stars int) int {
	if stars < 0 {
		return 0
	}
	if stars > MaxStars {
		return MaxStars
	}
	return stars
}
