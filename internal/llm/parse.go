package llm

import (
	"encoding/json"
	"fmt"

	"go-jobpost-extraction/internal/models"
	"go-jobpost-extraction/internal/textutil"
)

type jobPayload struct {
	Company         string   `json:"company"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	Salary          string   `json:"salary"`
	PostedDate      string   `json:"posted_date"`
	EmploymentType  string   `json:"employment_type"`
	ExperienceLevel string   `json:"experience_level"`
	SkillsRequired  []string `json:"skills_required"`
}

// ParseJobPosting decodes a model response produced against jobSchema.
// Field values are whitespace/unicode-cleaned; skill order is preserved.
func ParseJobPosting(raw string) (*models.JobPosting, error) {
	var payload jobPayload
	if err := json.Unmarshal([]byte(cleanMarkdownJSON(raw)), &payload); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	skills := make([]string, 0, len(payload.SkillsRequired))
	for _, s := range payload.SkillsRequired {
		if cleaned := textutil.Clean(s); cleaned != "" {
			skills = append(skills, cleaned)
		}
	}

	return &models.JobPosting{
		Company:         textutil.Clean(payload.Company),
		Title:           textutil.Clean(payload.Title),
		Description:     payload.Description,
		Location:        textutil.Clean(payload.Location),
		Salary:          textutil.Clean(payload.Salary),
		PostedDate:      textutil.Clean(payload.PostedDate),
		EmploymentType:  textutil.Clean(payload.EmploymentType),
		ExperienceLevel: textutil.Clean(payload.ExperienceLevel),
		SkillsRequired:  skills,
	}, nil
}

// ParseCompanyTitle decodes the focused secondary response.
func ParseCompanyTitle(raw string) (company, title string, err error) {
	var payload struct {
		Company string `json:"company"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal([]byte(cleanMarkdownJSON(raw)), &payload); err != nil {
		return "", "", fmt.Errorf("response is not valid JSON: %w", err)
	}
	return textutil.Clean(payload.Company), textutil.Clean(payload.Title), nil
}
