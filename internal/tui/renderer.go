package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Renderer turns controller callbacks into tea messages. The controller calls
// it with its lock held, so pushes never block: messages go on an unbounded
// queue that a forwarding goroutine hands to the program in order.
//
// Every message carries the clear epoch it was produced in. Clear starts a new
// epoch, which lets the model discard anything queued before the field was
// emptied.
type Renderer struct {
	mu     sync.Mutex
	queue  []tea.Msg
	epoch  uint64
	closed bool
	wake   chan struct{}
}

func NewRenderer() *Renderer {
	return &Renderer{wake: make(chan struct{}, 1)}
}

// Forward sends queued messages to p until the renderer is closed.
func (r *Renderer) Forward(p *tea.Program) {
	r.forward(p.Send)
}

func (r *Renderer) forward(send func(tea.Msg)) {
	for range r.wake {
		for _, msg := range r.Drain() {
			send(msg)
		}
	}
	for _, msg := range r.Drain() {
		send(msg)
	}
}

// Drain removes and returns the queued messages, oldest first.
func (r *Renderer) Drain() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	queued := r.queue
	r.queue = nil
	return queued
}

func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	close(r.wake)
}

func (r *Renderer) push(build func(epoch uint64) tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.queue = append(r.queue, build(r.epoch))
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

func (r *Renderer) Clear() {
	r.mu.Lock()
	r.epoch++
	r.mu.Unlock()
	r.push(func(epoch uint64) tea.Msg { return clearMsg{epoch: epoch} })
}

func (r *Renderer) Loading(query string) {
	r.push(func(epoch uint64) tea.Msg { return loadingMsg{epoch: epoch, query: query} })
}

func (r *Renderer) Results(query string, rows []Row) {
	r.push(func(epoch uint64) tea.Msg { return resultsMsg{epoch: epoch, query: query, rows: rows} })
}

func (r *Renderer) Empty(query string) {
	r.push(func(epoch uint64) tea.Msg { return emptyMsg{epoch: epoch, query: query} })
}

func (r *Renderer) Failed(query string, err error) {
	r.push(func(epoch uint64) tea.Msg { return failedMsg{epoch: epoch, query: query, err: err} })
}
