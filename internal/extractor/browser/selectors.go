package browser

import (
	"github.com/PuerkitoBio/goquery"

	"go-jobpost-extraction/internal/textutil"
)

// Ordered candidate selectors per field, most reliable first. The first
// match that passes the length sanity filter wins.
type fieldSelectors struct {
	selectors []string
	minLen    int
	maxLen    int // 0 means unbounded
}

var companySelectors = fieldSelectors{
	selectors: []string{
		`[data-testid="company-name"]`,
		`[itemprop="hiringOrganization"]`,
		`.company-name`,
		`.employer-name`,
		`.topcard__org-name-link`,
		`a.company`,
	},
	minLen: 2,
	maxLen: 120,
}

var titleSelectors = fieldSelectors{
	selectors: []string{
		`[data-testid="job-title"]`,
		`[itemprop="title"]`,
		`.job-title`,
		`.topcard__title`,
		`h1`,
	},
	minLen: 5,
	maxLen: 200,
}

var descriptionSelectors = fieldSelectors{
	selectors: []string{
		`[data-testid="job-description"]`,
		`[itemprop="description"]`,
		`.job-description`,
		`#job-description`,
		`.description__text`,
		`article`,
	},
	minLen: 101,
}

var locationSelectors = fieldSelectors{
	selectors: []string{
		`[data-testid="job-location"]`,
		`[itemprop="jobLocation"]`,
		`.job-location`,
		`.location`,
		`.topcard__flavor--bullet`,
	},
	minLen: 2,
	maxLen: 160,
}

var salarySelectors = fieldSelectors{
	selectors: []string{
		`[data-testid="salary"]`,
		`[itemprop="baseSalary"]`,
		`.salary`,
		`.compensation`,
		`.title-salary`,
	},
	minLen: 2,
	maxLen: 120,
}

func (f fieldSelectors) first(doc *goquery.Document) string {
	for _, sel := range f.selectors {
		text := textutil.Clean(doc.Find(sel).First().Text())
		if text == "" {
			continue
		}
		n := len([]rune(text))
		if n < f.minLen {
			continue
		}
		if f.maxLen > 0 && n > f.maxLen {
			continue
		}
		return text
	}
	return ""
}
