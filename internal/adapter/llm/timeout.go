package llm

import (
	"context"
	"time"

	"dsa-tutor/internal/domain"
)

type timeoutClient struct {
	next    domain.ModelClient
	timeout time.Duration
}

// WithTimeout bounds every call to next. A non-positive timeout returns next
// unchanged, leaving calls bounded only by the caller's context.
func WithTimeout(next domain.ModelClient, timeout time.Duration) domain.ModelClient {
	if timeout <= 0 {
		return next
	}
	return &timeoutClient{next: next, timeout: timeout}
}

func (c *timeoutClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.next.Complete(ctx, prompt)
}
