package api

import (
	"context"
	"errors"
	"math/rand"
	"net/url"
	"strings"
	"sync"
	"time"
)

var (
	// ErrRatingRejected means the service answered a menu rating with
	// success=false.
	ErrRatingRejected = errors.New("rating rejected")
	// ErrNoMatches means a group has no food matches to pick from.
	ErrNoMatches = errors.New("no food matches")
)

// Caller is the request surface of network.Client.
type Caller interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Service binds the endpoints of the eat-together REST API.
type Service struct {
	client Caller

	mu   sync.Mutex
	rand *rand.Rand
}

func New(client Caller) *Service {
	return &Service{
		client: client,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand replaces the source used by Roulette.
func (s *Service) WithRand(r *rand.Rand) *Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rand = r
	return s
}

func (s *Service) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.Intn(n)
}

// SearchPath appends ?key=value to base, escaping value the way a browser's
// encodeURIComponent does.
func SearchPath(base string, key string, value string) string {
	return base + "?" + key + "=" + QueryEscape(value)
}

func QueryEscape(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

func segment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}
