package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"dsa-tutor/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockModelClient ---
type MockModelClient struct {
	mock.Mock
}

func (m *MockModelClient) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// Prompt matchers keyed on phrases unique to each prompt.
var (
	contentPrompt = mock.MatchedBy(func(p string) bool { return strings.Contains(p, "creating comprehensive educational content") })
	quizPrompt    = mock.MatchedBy(func(p string) bool { return strings.Contains(p, "multiple-choice questions") })
	planPrompt    = mock.MatchedBy(func(p string) bool { return strings.Contains(p, "weekly progression plan") })
)

// memCache is an in-process domain.Cache.
type memCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newMemCache() *memCache {
	return &memCache{entries: map[string]string{}}
}

func (c *memCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}
