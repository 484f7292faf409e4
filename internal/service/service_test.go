package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Skotchmaster/idea_board/internal/db/dbtest"
	"github.com/Skotchmaster/idea_board/internal/repo"
	"github.com/Skotchmaster/idea_board/internal/tokens"
)

type publishedEvent struct {
	Topic string
	Key   string
	Event any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *fakePublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Topic: topic, Key: key, Event: event})
	return p.err
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		if m, ok := e.Event.(map[string]any); ok {
			out = append(out, m["type"].(string))
		}
	}
	return out
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	repo   *repo.GormRepo
	auth   *AuthService
	events *fakePublisher
	clock  *testClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	r := &repo.GormRepo{DB: dbtest.Open(t)}
	clock := &testClock{now: time.Now().UTC()}
	issuer := &tokens.Issuer{
		AccessSecret:  []byte("test-access-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		Now:           clock.Now,
	}
	events := &fakePublisher{}
	sessions := &SessionManager{Users: r, Tokens: issuer}

	return &testEnv{
		repo:   r,
		auth:   NewAuthService(r, sessions, events),
		events: events,
		clock:  clock,
	}
}

func strPtr(s string) *string { return &s }
