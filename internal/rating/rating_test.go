package rating

import (
	"errors"
	"testing"
)

func TestSelectionRequired(t *testing.T) {
	w := New(0)
	if _, err := w.Selection(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("Selection() error = %v, want %v", err, ErrNoSelection)
	}
	if err := w.Select(4); err != nil {
		t.Fatalf("Select(4) error = %v", err)
	}
	got, err := w.Selection()
	if err != nil || got != 4 {
		t.Fatalf("Selection() = %d, %v, want 4, nil", got, err)
	}
}

func TestSelectRejectsOutOfRange(t *testing.T) {
	w := New(0)
	for _, stars := range []int{0, -1, 6} {
		if err := w.Select(stars); err == nil {
			t.Fatalf("Select(%d) error = nil, want error", stars)
		}
	}
}

func TestShownPrecedence(t *testing.T) {
	w := New(2)
	if got := w.Shown(); got != 2 {
		t.Fatalf("Shown() = %d, want 2", got)
	}

	_ = w.Select(3)
	w.Hover(5)
	if got := w.Shown(); got != 5 {
		t.Fatalf("Shown() while hovering = %d, want 5", got)
	}

	w.Leave()
	if got := w.Shown(); got != 3 {
		t.Fatalf("Shown() after leave = %d, want 3", got)
	}
}

func TestLitIsProjectionOfState(t *testing.T) {
	w := New(0)
	_ = w.Select(3)
	want := [MaxStars]bool{true, true, true, false, false}
	if got := w.Lit(); got != want {
		t.Fatalf("Lit() = %v, want %v", got, want)
	}
	if got := w.String(); got != "★★★☆☆" {
		t.Fatalf("String() = %q", got)
	}
}

func TestAcceptUpdatesCurrent(t *testing.T) {
	w := New(1)
	w.Accept(4)
	if w.Current() != 4 {
		t.Fatalf("Current() = %d, want 4", w.Current())
	}
	w.Leave()
	if got := w.Shown(); got != 4 {
		t.Fatalf("Shown() = %d, want 4", got)
	}
}
