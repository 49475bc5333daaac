package browser

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-jobpost-extraction/internal/models"
	"go-jobpost-extraction/internal/textutil"
)

// jobPostingFromMetadata scans every embedded JSON-LD block for a JobPosting
// node, handling singular, array-wrapped, and @graph forms. The metadata
// path is trusted exclusively: it returns a candidate only when both the
// hiring-organization name and the title are present.
func jobPostingFromMetadata(doc *goquery.Document) (*models.JobPosting, bool) {
	var found *models.JobPosting
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var node any
		if err := json.Unmarshal([]byte(s.Text()), &node); err != nil {
			return true
		}
		if posting, ok := findJobPostingNode(node); ok {
			if job := jobFromNode(posting); job != nil {
				found = job
				return false
			}
		}
		return true
	})
	return found, found != nil
}

func findJobPostingNode(node any) (map[string]any, bool) {
	switch v := node.(type) {
	case []any:
		for _, item := range v {
			if posting, ok := findJobPostingNode(item); ok {
				return posting, true
			}
		}
	case map[string]any:
		if isJobPostingType(v["@type"]) {
			return v, true
		}
		if graph, ok := v["@graph"]; ok {
			return findJobPostingNode(graph)
		}
	}
	return nil, false
}

func isJobPostingType(t any) bool {
	switch v := t.(type) {
	case string:
		return strings.EqualFold(v, "JobPosting")
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.EqualFold(s, "JobPosting") {
				return true
			}
		}
	}
	return false
}

func jobFromNode(m map[string]any) *models.JobPosting {
	title := textutil.Clean(str(m["title"]))
	company := textutil.Clean(hiringOrgName(m["hiringOrganization"]))
	if title == "" || company == "" {
		return nil
	}

	job := &models.JobPosting{
		Company:         company,
		Title:           title,
		Description:     htmlToText(str(m["description"])),
		Location:        locationFromNode(m["jobLocation"]),
		Salary:          salaryFromNode(m["baseSalary"]),
		PostedDate:      textutil.Clean(str(m["datePosted"])),
		EmploymentType:  textutil.Clean(strOrJoined(m["employmentType"])),
		ExperienceLevel: textutil.Clean(experienceFromNode(m["experienceRequirements"])),
		SkillsRequired:  stringList(m["skills"]),
	}
	return job
}

func hiringOrgName(node any) string {
	switch v := node.(type) {
	case string:
		return v
	case map[string]any:
		return str(v["name"])
	}
	return ""
}

func locationFromNode(node any) string {
	switch v := node.(type) {
	case string:
		return textutil.Clean(v)
	case []any:
		for _, item := range v {
			if loc := locationFromNode(item); loc != "" {
				return loc
			}
		}
	case map[string]any:
		if addr, ok := v["address"].(map[string]any); ok {
			parts := make([]string, 0, 3)
			for _, key := range []string{"addressLocality", "addressRegion", "addressCountry"} {
				if p := textutil.Clean(str(addr[key])); p != "" {
					parts = append(parts, p)
				}
			}
			if len(parts) > 0 {
				return strings.Join(parts, ", ")
			}
		}
		return textutil.Clean(str(v["name"]))
	}
	return ""
}

func salaryFromNode(node any) string {
	m, ok := node.(map[string]any)
	if !ok {
		return ""
	}
	r := models.SalaryRange{Currency: str(m["currency"])}
	if value, ok := m["value"].(map[string]any); ok {
		r.Min = num(value["minValue"])
		r.Max = num(value["maxValue"])
		if r.Min == 0 && r.Max == 0 {
			r.Min = num(value["value"])
		}
	}
	return r.String()
}

func experienceFromNode(node any) string {
	switch v := node.(type) {
	case string:
		return v
	case map[string]any:
		return str(v["description"])
	}
	return ""
}

func stringList(node any) []string {
	switch v := node.(type) {
	case string:
		var out []string
		for _, part := range strings.Split(v, ",") {
			if cleaned := textutil.Clean(part); cleaned != "" {
				out = append(out, cleaned)
			}
		}
		return out
	case []any:
		var out []string
		for _, item := range v {
			if cleaned := textutil.Clean(str(item)); cleaned != "" {
				out = append(out, cleaned)
			}
		}
		return out
	}
	return nil
}

func strOrJoined(node any) string {
	switch v := node.(type) {
	case string:
		return v
	case []any:
		return strings.Join(stringList(v), ", ")
	}
	return ""
}

func str(node any) string {
	s, _ := node.(string)
	return s
}

func num(node any) float64 {
	f, _ := node.(float64)
	return f
}

// htmlToText flattens HTML fragments that sites embed in description fields.
func htmlToText(fragment string) string {
	if fragment == "" || !strings.Contains(fragment, "<") {
		return strings.TrimSpace(fragment)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return textutil.Clean(doc.Text())
}
