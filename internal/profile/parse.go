package profile

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrUnparseable wraps JSON decode failures so callers can distinguish a bad
// AI response from other extraction failures.
var ErrUnparseable = fmt.Errorf("could not parse AI response as JSON")

// ParseResponse converts the raw text returned by the AI model into a
// normalized Profile. The model frequently wraps its JSON in markdown code
// fences; those are stripped first. If the remaining text is not valid JSON
// the error wraps ErrUnparseable and normalization is not attempted.
func ParseResponse(text string) (Profile, error) {
	jsonStr := ExtractJSON(text)

	var raw interface{}
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}

	return Normalize(raw), nil
}

// ExtractJSON strips markdown code fences and trims the text down to the
// outermost JSON object or array boundaries.
func ExtractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}
	if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
