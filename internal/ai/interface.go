// README: Contract for text-completion model providers.
package ai

import (
	"context"
	"errors"
)

var (
	// ErrMissingKey is returned at construction when no API credential is configured.
	ErrMissingKey = errors.New("ai: api key not configured")
	// ErrUnavailable wraps transient upstream failures (network, non-2xx, empty reply).
	ErrUnavailable = errors.New("ai: model endpoint unavailable")
)

// TextCompleter sends one prompt to a completion endpoint and returns the raw
// reply text. Implementations hold the credential and connection; they do not
// retry and they honor ctx cancellation.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
