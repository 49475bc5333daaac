package extractor

import (
	"fmt"

	"go-jobpost-extraction/internal/models"
	"go-jobpost-extraction/internal/textutil"
)

// Sentinel values extraction models fall back to when a field is unknown.
// Compared case-insensitively after accent folding.
var sentinelValues = map[string]bool{
	"unknown company":  true,
	"unknown position": true,
	"unknown":          true,
	"n/a":              true,
	"none":             true,
	"null":             true,
	"not specified":    true,
}

// Validate is the single gate applied to every tier candidate before it can
// be returned or short-circuit the chain. It rejects candidates whose
// company or title is empty, whitespace-only, or a known sentinel.
func Validate(job *models.JobPosting) error {
	if job == nil {
		return fmt.Errorf("%w: no candidate", ErrValidationRejected)
	}
	if reason := checkField("company", job.Company); reason != "" {
		return fmt.Errorf("%w: %s", ErrValidationRejected, reason)
	}
	if reason := checkField("title", job.Title); reason != "" {
		return fmt.Errorf("%w: %s", ErrValidationRejected, reason)
	}
	return nil
}

func checkField(name, value string) string {
	folded := textutil.Fold(value)
	if folded == "" {
		return name + " is empty"
	}
	if sentinelValues[folded] {
		return fmt.Sprintf("%s is a placeholder (%q)", name, value)
	}
	return ""
}
