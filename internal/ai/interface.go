package ai

import (
	"context"
)

// TextGenerator defines the contract for the remote generative-text service.
// This interface allows swapping providers (or stubbing them in tests) without touching the pipeline.
type TextGenerator interface {
	// Generate sends prompt as a single user turn and returns the raw text of the reply.
	// Transport failures, remote error statuses and remote timeouts are returned as errors.
	Generate(ctx context.Context, prompt string) (string, error)
}
