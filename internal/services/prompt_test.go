package services

import (
	"strings"
	"testing"
)

func TestBuildResumeExtractionPrompt(t *testing.T) {
	prompt := NewPromptBuilder().BuildResumeExtractionPrompt()

	// The prompt must spell out every key of the profile schema; the
	// normalizer covers drift, but the prompt is the first line of defense.
	for _, key := range []string{
		"name", "email", "phone", "website", "summary",
		"work_experience", "job_title", "company", "dates", "responsibilities",
		"education", "degree", "university",
		"skills",
	} {
		if !strings.Contains(prompt, `"`+key+`"`) {
			t.Errorf("Expected prompt to mention the %q key", key)
		}
	}

	if !strings.Contains(prompt, "ONLY the JSON object") {
		t.Error("Expected the prompt to demand a JSON-only response")
	}
}
