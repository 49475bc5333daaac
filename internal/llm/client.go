package llm

import (
	"context"
	"errors"
)

// ErrNoAPIKey is returned when a client is constructed without credentials.
// Tiers translate it into their skip behavior.
var ErrNoAPIKey = errors.New("llm api key not configured")

// Client is the interface for extraction model providers.
type Client interface {
	// ExtractJSON sends a text prompt and returns the raw JSON string the
	// model produced (markdown fences already stripped).
	ExtractJSON(ctx context.Context, prompt string) (string, error)

	// ExtractJSONFromImage sends a prompt plus a PNG snapshot to a
	// vision-capable model and returns the raw JSON string.
	ExtractJSONFromImage(ctx context.Context, prompt string, png []byte) (string, error)
}
