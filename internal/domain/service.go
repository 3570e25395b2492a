package domain

import "context"

// ContentService generates lesson, quiz and study plan for a topic.
type ContentService interface {
	Generate(ctx context.Context, req TopicRequest) (*GeneratedContent, error)
	TopicHistory() []HistoryEntry
}

// ParseFailurePolicy decides what happens when a structured model reply
// cannot be decoded.
type ParseFailurePolicy string

const (
	// PolicyAbort fails the whole request and reports the raw reply.
	PolicyAbort ParseFailurePolicy = "abort"
	// PolicyFallback substitutes a fixed default and lets the request succeed.
	PolicyFallback ParseFailurePolicy = "fallback"
)

// ParsePolicy returns the policy named by s, or def when s is unrecognized.
func ParsePolicy(s string, def ParseFailurePolicy) ParseFailurePolicy {
	switch ParseFailurePolicy(s) {
	case PolicyAbort, PolicyFallback:
		return ParseFailurePolicy(s)
	}
	return def
}
