package llm

import "fmt"

const systemPrompt = `You are a precise job posting parser. You extract structured fields from job posting content and return them as raw JSON. Copy values from the source text verbatim, do not invent or summarize. Return ONLY the JSON object, no markdown, no explanation.`

const jobSchema = `{
  "company": "string (required, the hiring company name)",
  "title": "string (required, the job title)",
  "description": "string (the full job description text)",
  "location": "string (city/region/remote, empty if absent)",
  "salary": "string (free-form, e.g. \"$90000 - $120000\", empty if absent)",
  "posted_date": "string (as written on the page, empty if absent)",
  "employment_type": "string (e.g. Full-time, Contract, empty if absent)",
  "experience_level": "string (e.g. Senior, Entry level, empty if absent)",
  "skills_required": ["string (in the order they appear)"]
}`

// JobPostingPrompt asks for the full schema against cleaned page content.
func JobPostingPrompt(pageText string) string {
	return fmt.Sprintf(`Extract the job posting from the page content below.

Return ONLY valid JSON matching this exact structure:
%s

If a field is not present in the content, use an empty string (or empty list). Never guess a company or title.

Page content:
"""
%s
"""`, jobSchema, pageText)
}

// CompanyTitlePrompt is the focused secondary request issued when the full
// extraction left company or title empty or placeholder-like.
func CompanyTitlePrompt(pageText string) string {
	return fmt.Sprintf(`From the page content below, identify ONLY the hiring company name and the job title.

Return ONLY valid JSON: {"company": "string", "title": "string"}
Use an empty string when the content truly does not contain the value.

Page content:
"""
%s
"""`, pageText)
}

// SnapshotImagePrompt matches the vision path: the model reads the fields
// off a screenshot of the posting.
func SnapshotImagePrompt() string {
	return fmt.Sprintf(`The attached image is a screenshot of a job posting page. Read it and extract the posting fields.

Return ONLY valid JSON matching this exact structure:
%s

If a field is not visible in the screenshot, use an empty string (or empty list).`, jobSchema)
}
