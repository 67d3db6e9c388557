package services

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeExtractionPrompt creates the instruction sent alongside the PDF.
// It spells out the exact JSON shape wanted; the model still drifts (missing
// keys, prose instead of arrays), which the profile normalizer absorbs.
func (pb *PromptBuilder) BuildResumeExtractionPrompt() string {
	return `You are an expert resume parser. Analyze the attached PDF resume and extract its content as structured data.

Return your response in the following JSON format:
{
  "name": "<full name>",
  "email": "<email address>",
  "phone": "<phone number>",
  "website": "<personal website or profile URL>",
  "summary": "<professional summary, 2-4 sentences>",
  "work_experience": [
    {
      "job_title": "<job title>",
      "company": "<company name>",
      "dates": "<employment period>",
      "responsibilities": ["<responsibility 1>", "<responsibility 2>"]
    }
  ],
  "education": [
    {
      "degree": "<degree name>",
      "university": "<institution name>",
      "dates": "<study period>"
    }
  ],
  "skills": ["<skill 1>", "<skill 2>"]
}

Rules:
- Return ONLY the JSON object, no explanatory text.
- Preserve the order in which entries appear in the resume.
- Use plain strings for every value; do not nest additional objects.
- Omit nothing you can find, but never invent information that is not in the resume.`
}
