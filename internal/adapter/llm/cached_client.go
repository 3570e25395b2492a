package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"dsa-tutor/internal/cache"
	"dsa-tutor/internal/domain"
	"dsa-tutor/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultCompletionTTL is used when no TTL is configured.
const DefaultCompletionTTL = 24 * time.Hour

// CachedClient memoizes completions by prompt. Cache failures are logged and
// never fail a completion.
type CachedClient struct {
	next    domain.ModelClient
	cache   domain.Cache
	model   string
	ttl     time.Duration
	sfGroup singleflight.Group
}

// NewCachedClient decorates next with a completion cache.
func NewCachedClient(next domain.ModelClient, c domain.Cache, model string, ttl time.Duration) (*CachedClient, error) {
	if next == nil {
		return nil, errors.New("model client cannot be nil")
	}
	if c == nil {
		return nil, errors.New("cache instance cannot be nil for CachedClient")
	}
	if ttl <= 0 {
		ttl = DefaultCompletionTTL
	}
	return &CachedClient{next: next, cache: c, model: model, ttl: ttl}, nil
}

// CompletionKey returns the cache key of prompt for model.
func CompletionKey(model, prompt string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + prompt))
	return cache.GenerateCacheKey("llm", "completion", hex.EncodeToString(sum[:]))
}

// Complete implements domain.ModelClient
func (c *CachedClient) Complete(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()
	key := CompletionKey(c.model, prompt)

	cached, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		l.Debug("Completion cache hit", zap.String("key", key))
		return cached, nil
	case errors.Is(err, domain.ErrCacheMiss):
		l.Debug("Completion cache miss", zap.String("key", key))
	default:
		l.Warn("Completion cache lookup failed", zap.String("key", key), zap.Error(err))
	}

	res, err, shared := c.sfGroup.Do(key, func() (interface{}, error) {
		text, callErr := c.next.Complete(ctx, prompt)
		if callErr != nil {
			return nil, callErr
		}
		if setErr := c.cache.Set(ctx, key, text, c.ttl); setErr != nil {
			l.Warn("Failed to store completion in cache", zap.String("key", key), zap.Error(setErr))
		}
		return text, nil
	})
	if err != nil {
		return "", err
	}
	if shared {
		l.Debug("Completion shared with concurrent caller", zap.String("key", key))
	}

	text, ok := res.(string)
	if !ok {
		return "", fmt.Errorf("unexpected type from singleflight.Do for completion: %T", res)
	}
	return text, nil
}

// Invalidate removes the stored completion of prompt. Callers use it when a
// reply turns out to be unusable.
func (c *CachedClient) Invalidate(ctx context.Context, prompt string) error {
	key := CompletionKey(c.model, prompt)
	if err := c.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete cached completion %s: %w", key, err)
	}
	logger.Get().Debug("Completion cache entry invalidated", zap.String("key", key))
	return nil
}

var (
	_ domain.ModelClient           = (*CachedClient)(nil)
	_ domain.CompletionInvalidator = (*CachedClient)(nil)
)
