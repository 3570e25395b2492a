package domain

import "context"

// ModelClient is the port to the external generative model.
type ModelClient interface {
	// Complete sends a single prompt and returns the raw text reply.
	Complete(ctx context.Context, prompt string) (string, error)
}
