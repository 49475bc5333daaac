// Extraction tiers and the escalation pipeline that runs them.

package extractor

import (
	"context"

	"go-jobpost-extraction/internal/models"
)

// Extractor is one self-contained extraction strategy. Implementations
// return a complete candidate (possibly with missing fields, the gate
// decides) or an error from the taxonomy in errors.go.
type Extractor interface {
	Extract(ctx context.Context, url string) (*models.JobPosting, error)

	// Tier is the cost tier this strategy belongs to.
	Tier() models.Tier
}
