package extractor

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go-jobpost-extraction/internal/models"
)

// Pipeline runs tiers strictly sequentially in cost-ascending order. Cost
// rises with tier number and most URLs resolve at tier 1 or 2, so running
// tiers speculatively in parallel would spend the most expensive calls on
// URLs that never needed them.
type Pipeline struct {
	tiers []Extractor
}

// NewPipeline builds a pipeline over the given tiers, attempted in order.
func NewPipeline(tiers ...Extractor) *Pipeline {
	return &Pipeline{tiers: tiers}
}

// Extract tries each tier, validates every candidate through the gate, and
// returns the first accepted JobPosting. A tier error or gate rejection
// escalates to the next tier; only exhaustion of all tiers is terminal.
func (p *Pipeline) Extract(ctx context.Context, url string) (*models.JobPosting, error) {
	if len(p.tiers) == 0 {
		return nil, errors.New("pipeline has no tiers configured")
	}

	var failures []TierFailure
	for _, tier := range p.tiers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		job, err := tier.Extract(ctx, url)
		if err != nil {
			// Cancellation belongs to the caller, not the tier.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			if errors.Is(err, ErrAuthConfigMissing) {
				log.Printf("⏭️ Tier %s skipped (not configured)", tier.Tier())
			} else {
				log.Printf("⚠️ Tier %s failed: %v", tier.Tier(), err)
			}
			failures = append(failures, TierFailure{Tier: tier.Tier(), Err: err})
			continue
		}

		if err := Validate(job); err != nil {
			log.Printf("⚠️ Tier %s candidate rejected: %v", tier.Tier(), err)
			failures = append(failures, TierFailure{Tier: tier.Tier(), Err: err})
			continue
		}

		// Attribution is stamped here so it always reflects the tier whose
		// whole candidate was accepted. Fields are never merged across tiers.
		job.ExtractionTier = tier.Tier()
		job.SourceURL = url
		return job, nil
	}

	return nil, &ExhaustedError{URL: url, Failures: failures}
}

// Classify folds transport-level timeouts into the taxonomy. Tiers call it
// on errors from their outbound clients before reporting a failure.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrNetworkTimeout, err)
	}
	var timeoutErr interface{ Timeout() bool }
	if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrNetworkTimeout, err)
	}
	return err
}
