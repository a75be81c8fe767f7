// Package notify keeps the transient, dismissible notices shown after an
// action succeeds or fails.
package notify

import (
	"sync"
	"time"

	"k8s.io/utils/clock"
)

type Level string

const (
	Success Level = "success"
	Info    Level = "info"
	Danger  Level = "danger"
)

const (
	FlashLifetime = 5 * time.Second
	AlertLifetime = 3 * time.Second
)

type Notice struct {
	ID      uint64
	Level   Level
	Message string
	Expires time.Time
}

type Board struct {
	clock    clock.PassiveClock
	lifetime time.Duration

	mu      sync.Mutex
	next    uint64
	notices []Notice
}

func NewBoard(clk clock.PassiveClock, lifetime time.Duration) *Board {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if lifetime <= 0 {
		lifetime = FlashLifetime
	}
	return &Board{clock: clk, lifetime: lifetime}
}

func (b *Board) Lifetime() time.Duration {
	return b.lifetime
}

// Push adds a notice on top of the board.
func (b *Board) Push(level Level, message string) Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	n := Notice{
		ID:      b.next,
		Level:   level,
		Message: message,
		Expires: b.clock.Now().Add(b.lifetime),
	}
	b.notices = append([]Notice{n}, b.notices...)
	return n
}

func (b *Board) Dismiss(id uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, n := range b.notices {
		if n.ID == id {
			b.notices = append(b.notices[:i], b.notices[i+1:]...)
			return true
		}
	}
	return false
}

func (b *Board) DismissNewest() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.notices) == 0 {
		return false
	}
	b.notices = b.notices[1:]
	return true
}

// Prune drops notices that expired at or before now.
func (b *Board) Prune(now time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pruneLocked(now)
}

func (b *Board) pruneLocked(now time.Time) int {
	kept := b.notices[:0]
	for _, n := range b.notices {
		if now.Before(n.Expires) {
			kept = append(kept, n)
		}
	}
	dropped := len(b.notices) - len(kept)
	b.notices = kept
	return dropped
}

// Active prunes against the board clock and returns the rest, newest first.
func (b *Board) Active() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pruneLocked(b.clock.Now())
	return append([]Notice(nil), b.notices...)
}

func (b *Board) Newest() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pruneLocked(b.clock.Now())
	if len(b.notices) == 0 {
		return Notice{}, false
	}
	return b.notices[0], true
}
