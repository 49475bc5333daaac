package browser

import (
	"regexp"
	"strings"

	"go-jobpost-extraction/internal/textutil"
)

// Body-text patterns for the company name, tried in order. Capitalized word
// runs keep the match from swallowing surrounding prose.
var (
	atCompanyRe = regexp.MustCompile(`\bat\s+([A-Z][A-Za-z0-9&'.-]*(?:\s+[A-Z][A-Za-z0-9&'.-]*)*)`)
	hiringRe    = regexp.MustCompile(`\b([A-Z][A-Za-z0-9&'.-]*(?:\s+[A-Z][A-Za-z0-9&'.-]*)*)\s+is\s+hiring\b`)
	joinRe      = regexp.MustCompile(`\bJoin\s+(?:the\s+)?([A-Z][A-Za-z0-9&'.-]*(?:\s+[A-Z][A-Za-z0-9&'.-]*)*)\s+team\b`)
)

// companyFromText searches visible body text for "at <Company>",
// "<Company> is hiring", and similar phrasings.
func companyFromText(bodyText string) string {
	for _, re := range []*regexp.Regexp{atCompanyRe, hiringRe, joinRe} {
		if m := re.FindStringSubmatch(bodyText); m != nil {
			if company := cleanCompanyMatch(m[1]); company != "" {
				return company
			}
		}
	}
	return ""
}

func cleanCompanyMatch(raw string) string {
	company := textutil.Clean(strings.Trim(raw, ".,"))
	n := len([]rune(company))
	if n < 2 || n > 80 {
		return ""
	}
	return company
}

// Well-known posting-site hosts mapped to their canonical company name.
// Consulted only when the metadata, selector, and regex paths all missed.
var knownCareerHosts = map[string]string{
	"jobs.netflix.com":           "Netflix",
	"careers.google.com":         "Google",
	"jobs.apple.com":             "Apple",
	"amazon.jobs":                "Amazon",
	"careers.microsoft.com":      "Microsoft",
	"jobs.careers.microsoft.com": "Microsoft",
	"metacareers.com":            "Meta",
	"jobs.spotify.com":           "Spotify",
	"careers.airbnb.com":         "Airbnb",
	"jobs.dropbox.com":           "Dropbox",
	"careers.twitter.com":        "X",
	"jobs.gitlab.com":            "GitLab",
}

func companyForHost(host string) string {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	return knownCareerHosts[host]
}

// titleFromPageTitle falls back to the <title> element, trimming the
// " - Company" / " | Site" suffixes job boards append.
func titleFromPageTitle(pageTitle string) string {
	title := textutil.Clean(pageTitle)
	for _, sep := range []string{" | ", " – ", " — ", " - "} {
		if idx := strings.Index(title, sep); idx > 0 {
			title = title[:idx]
			break
		}
	}
	n := len([]rune(title))
	if n < 5 || n > 200 {
		return ""
	}
	return title
}
