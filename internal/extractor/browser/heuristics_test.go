package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyFromText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "at Company",
			text:     "Senior Backend Engineer at Example Corp is hiring",
			expected: "Example Corp",
		},
		{
			name:     "Company is hiring",
			text:     "Great news! Initech is hiring engineers in Austin.",
			expected: "Initech",
		},
		{
			name:     "Join the team",
			text:     "Join the Globex team and ship software that matters.",
			expected: "Globex",
		},
		{
			name:     "lowercase company not matched",
			text:     "work at a startup doing things",
			expected: "",
		},
		{
			name:     "no pattern",
			text:     "Apply now for this exciting opportunity.",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, companyFromText(tt.text))
		})
	}
}

func TestCompanyForHost(t *testing.T) {
	assert.Equal(t, "Netflix", companyForHost("jobs.netflix.com"))
	assert.Equal(t, "Google", companyForHost("www.careers.google.com"))
	assert.Equal(t, "", companyForHost("example.com"))
}

func TestTitleFromPageTitle(t *testing.T) {
	assert.Equal(t, "Senior Go Engineer", titleFromPageTitle("Senior Go Engineer | Acme Careers"))
	assert.Equal(t, "Backend Engineer", titleFromPageTitle("Backend Engineer - Acme"))
	assert.Equal(t, "", titleFromPageTitle("Jobs"), "below minimum length")
	assert.Equal(t, "", titleFromPageTitle(""))
}
