package models

import "strconv"

// Tier identifies which extraction strategy produced a JobPosting.
type Tier string

const (
	TierScrape   Tier = "scrape"   // managed scraping service + text model
	TierBrowser  Tier = "browser"  // headless browser, metadata/selector/regex
	TierSnapshot Tier = "snapshot" // screenshot or text reduction + model
)

// JobPosting is the normalized record produced by the extraction pipeline.
// One candidate is built per tier and accepted or discarded as a whole;
// callers own persistence.
type JobPosting struct {
	Company         string   `json:"company"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	Location        string   `json:"location,omitempty"`
	Salary          string   `json:"salary,omitempty"`
	PostedDate      string   `json:"posted_date,omitempty"`
	EmploymentType  string   `json:"employment_type,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	SkillsRequired  []string `json:"skills_required,omitempty"`
	RawText         string   `json:"raw_text,omitempty"`
	ExtractionTier  Tier     `json:"extraction_tier"`
	SourceURL       string   `json:"source_url"`
}

// SalaryRange formats structured salary data into the free-form Salary field.
type SalaryRange struct {
	Min      float64
	Max      float64
	Currency string // ISO code or symbol
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

func (s SalaryRange) String() string {
	cur := s.Currency
	if sym, ok := currencySymbols[cur]; ok {
		cur = sym
	}
	switch {
	case s.Min > 0 && s.Max > 0:
		return cur + trimFloat(s.Min) + " - " + cur + trimFloat(s.Max)
	case s.Min > 0:
		return cur + trimFloat(s.Min)
	case s.Max > 0:
		return cur + trimFloat(s.Max)
	}
	return ""
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
