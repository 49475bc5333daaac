package extractor

import (
	"errors"
	"fmt"
	"strings"

	"go-jobpost-extraction/internal/models"
)

// Failure taxonomy. Tiers wrap their errors with one of these sentinels so
// the pipeline and callers can branch with errors.Is instead of string checks.
var (
	ErrNetworkTimeout       = errors.New("network timeout")
	ErrAuthConfigMissing    = errors.New("auth config missing")
	ErrMalformedResponse    = errors.New("malformed extraction response")
	ErrValidationRejected   = errors.New("validation rejected")
	ErrBrowserLaunchFailure = errors.New("browser launch failure")
	ErrSnapshotUnavailable  = errors.New("snapshot unavailable")
)

// TierFailure records why a single tier did not produce an accepted candidate.
type TierFailure struct {
	Tier models.Tier
	Err  error
}

func (f TierFailure) Error() string {
	return fmt.Sprintf("tier %s: %v", f.Tier, f.Err)
}

func (f TierFailure) Unwrap() error {
	return f.Err
}

// ExhaustedError is the terminal error returned when every tier failed.
// It carries one reason per attempted tier so the caller can show a real
// diagnostic instead of a generic failure.
type ExhaustedError struct {
	URL      string
	Failures []TierFailure
}

func (e *ExhaustedError) Error() string {
	reasons := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		reasons[i] = f.Error()
	}
	return fmt.Sprintf("extraction exhausted for %s: %s", e.URL, strings.Join(reasons, "; "))
}

func (e *ExhaustedError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}
