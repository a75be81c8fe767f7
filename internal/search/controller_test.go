package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

const waitFor = 2 * time.Second

type recordingRenderer struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingRenderer) add(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingRenderer) Clear()               { r.add("clear") }
func (r *recordingRenderer) Loading(query string) { r.add("loading:" + query) }
func (r *recordingRenderer) Empty(query string)   { r.add("empty:" + query) }
func (r *recordingRenderer) Results(query string, items []string) {
	r.add(fmt.Sprintf("results:%s:%v", query, items))
}
func (r *recordingRenderer) Failed(query string, err error) {
	r.add("failed:" + query)
}

func (r *recordingRenderer) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recordingRenderer) Last() string {
	events := r.Events()
	if len(events) == 0 {
		return ""
	}
	return events[len(events)-1]
}

// stubFetcher records queries and answers from a canned table. Queries listed
// in hold block until released.
type stubFetcher struct {
	mu      sync.Mutex
	queries []string
	answers map[string][]string
	fail    map[string]error
	hold    map[string]chan struct{}
	calls   chan string
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{
		answers: map[string][]string{},
		fail:    map[string]error{},
		hold:    map[string]chan struct{}{},
		calls:   make(chan string, 16),
	}
}

func (f *stubFetcher) Fetch(ctx context.Context, query string) ([]string, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	gate := f.hold[query]
	answer := f.answers[query]
	err := f.fail[query]
	f.mu.Unlock()

	f.calls <- query
	if gate != nil {
		<-gate
	}
	return answer, err
}

func (f *stubFetcher) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

func (f *stubFetcher) awaitCall(t *testing.T) string {
	t.Helper()
	select {
	case q := <-f.calls:
		return q
	case <-time.After(waitFor):
		t.Fatalf("fetcher was not called")
		return ""
	}
}

func newController(t *testing.T, name string, delay time.Duration) (*Controller[string], *stubFetcher, *recordingRenderer, *testingclock.FakeClock) {
	t.Helper()
	fetcher := newStubFetcher()
	renderer := &recordingRenderer{}
	clk := testingclock.NewFakeClock(time.Unix(0, 0))
	c := New[string](name, fetcher.Fetch, renderer, WithDelay(delay), WithClock(clk))
	t.Cleanup(c.Close)
	return c, fetcher, renderer, clk
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"", "   ", "ali", "  ali  ", "\tbob@x.com\n", " café ", "A B"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
	assert.Equal(t, "A B", Normalize(" A B "))
}

func TestBurstCollapsesIntoOneRequest(t *testing.T) {
	c, fetcher, renderer, clk := newController(t, "burst", 500*time.Millisecond)
	fetcher.answers["ali"] = []string{"ali@x.com"}

	c.Input("a")
	clk.Step(200 * time.Millisecond)
	c.Input("al")
	clk.Step(200 * time.Millisecond)
	c.Input("ali")
	assert.Equal(t, Waiting, c.State())

	clk.Step(499 * time.Millisecond)
	assert.Empty(t, fetcher.Queries())
	assert.True(t, clk.HasWaiters())

	clk.Step(time.Millisecond)
	assert.Equal(t, "ali", fetcher.awaitCall(t))

	require.Eventually(t, func() bool { return c.State() == RenderedResults }, waitFor, time.Millisecond)
	assert.Equal(t, []string{"ali"}, fetcher.Queries())
	assert.Equal(t, []string{"loading:ali", "results:ali:[ali@x.com]"}, renderer.Events())
	assert.Equal(t, float64(2), testutil.ToFloat64(debouncedTotal.WithLabelValues("burst")))
}

func TestSpacedKeystrokesEachIssueARequest(t *testing.T) {
	c, fetcher, _, clk := newController(t, "spaced", 500*time.Millisecond)

	c.Input("a")
	clk.Step(600 * time.Millisecond)
	assert.Equal(t, "a", fetcher.awaitCall(t))
	require.Eventually(t, func() bool { return c.State() == RenderedEmpty }, waitFor, time.Millisecond)

	c.Input("ab")
	clk.Step(600 * time.Millisecond)
	assert.Equal(t, "ab", fetcher.awaitCall(t))

	assert.Equal(t, []string{"a", "ab"}, fetcher.Queries())
}

func TestQueryIsTrimmedBeforeSending(t *testing.T) {
	c, fetcher, _, clk := newController(t, "trim", 500*time.Millisecond)

	c.Input("  bob@x.com \t")
	clk.Step(500 * time.Millisecond)
	assert.Equal(t, "bob@x.com", fetcher.awaitCall(t))
}

func TestClearingIsSynchronousAndSendsNothing(t *testing.T) {
	c, fetcher, renderer, clk := newController(t, "clear", 500*time.Millisecond)

	c.Input("ali")
	clk.Step(100 * time.Millisecond)
	c.Input("   ")

	assert.Equal(t, Idle, c.State())
	assert.Equal(t, []string{"clear"}, renderer.Events())
	assert.False(t, clk.HasWaiters())

	clk.Step(time.Second)
	assert.Empty(t, fetcher.Queries())
}

func TestFailureRendersOneNoticeAndKeepsResults(t *testing.T) {
	c, fetcher, renderer, clk := newController(t, "failure", 500*time.Millisecond)
	fetcher.answers["soup"] = []string{"tomato soup"}
	fetcher.fail["stew"] = errors.New("request failed")

	c.Input("soup")
	clk.Step(500 * time.Millisecond)
	fetcher.awaitCall(t)
	require.Eventually(t, func() bool { return c.State() == RenderedResults }, waitFor, time.Millisecond)

	c.Input("stew")
	clk.Step(500 * time.Millisecond)
	fetcher.awaitCall(t)
	require.Eventually(t, func() bool { return c.State() == RenderedError }, waitFor, time.Millisecond)

	events := renderer.Events()
	failed := 0
	for _, e := range events {
		if e == "failed:stew" {
			failed++
		}
		assert.NotEqual(t, "clear", e)
	}
	assert.Equal(t, 1, failed)
}

func TestEmptyResultRendersPlaceholder(t *testing.T) {
	c, fetcher, renderer, clk := newController(t, "empty", 500*time.Millisecond)
	fetcher.answers["nobody"] = []string{}

	c.Input("nobody")
	clk.Step(500 * time.Millisecond)
	fetcher.awaitCall(t)

	require.Eventually(t, func() bool { return c.State() == RenderedEmpty }, waitFor, time.Millisecond)
	assert.Equal(t, "empty:nobody", renderer.Last())
}

func TestStaleResponseIsNotRendered(t *testing.T) {
	c, fetcher, renderer, clk := newController(t, "stale", 500*time.Millisecond)
	release := make(chan struct{})
	fetcher.hold["old"] = release
	fetcher.answers["old"] = []string{"old-row"}
	fetcher.answers["new"] = []string{"new-row"}

	c.Input("old")
	clk.Step(500 * time.Millisecond)
	assert.Equal(t, "old", fetcher.awaitCall(t))

	c.Input("new")
	clk.Step(500 * time.Millisecond)
	assert.Equal(t, "new", fetcher.awaitCall(t))
	require.Eventually(t, func() bool { return c.State() == RenderedResults }, waitFor, time.Millisecond)

	close(release)
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(staleTotal.WithLabelValues("stale")) == 1
	}, waitFor, time.Millisecond)

	assert.Equal(t, "results:new:[new-row]", renderer.Last())
	for _, e := range renderer.Events() {
		assert.NotContains(t, e, "old-row")
	}
}

func TestClearRetiresInFlightRequest(t *testing.T) {
	c, fetcher, renderer, clk := newController(t, "clear-inflight", 500*time.Millisecond)
	release := make(chan struct{})
	fetcher.hold["ali"] = release
	fetcher.answers["ali"] = []string{"ali@x.com"}

	c.Input("ali")
	clk.Step(500 * time.Millisecond)
	fetcher.awaitCall(t)

	c.Input("")
	close(release)
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(staleTotal.WithLabelValues("clear-inflight")) == 1
	}, waitFor, time.Millisecond)

	assert.Equal(t, Idle, c.State())
	assert.Equal(t, "clear", renderer.Last())
}

func TestLatestIssuedResponseRendersWhileTyping(t *testing.T) {
	c, fetcher, renderer, clk := newController(t, "typing", 500*time.Millisecond)
	release := make(chan struct{})
	fetcher.hold["ali"] = release
	fetcher.answers["ali"] = []string{"ali@x.com"}

	c.Input("ali")
	clk.Step(500 * time.Millisecond)
	fetcher.awaitCall(t)

	// A keystroke only re-arms the timer; the in-flight request is still the
	// latest one issued, so its response is shown.
	c.Input("alic")
	close(release)
	require.Eventually(t, func() bool {
		return renderer.Last() == "results:ali:[ali@x.com]"
	}, waitFor, time.Millisecond)
	assert.Equal(t, Waiting, c.State())
}

func TestCloseStopsPendingTimer(t *testing.T) {
	c, fetcher, renderer, clk := newController(t, "close", 500*time.Millisecond)

	c.Input("ali")
	c.Close()
	clk.Step(time.Second)
	c.Input("bob")

	assert.False(t, clk.HasWaiters())
	assert.Empty(t, fetcher.Queries())
	assert.Empty(t, renderer.Events())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "waiting", Waiting.String())
	assert.Equal(t, "rendered-error", RenderedError.String())
	assert.Equal(t, "unknown", State(99).String())
}
