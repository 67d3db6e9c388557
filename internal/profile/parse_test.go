package profile

import (
	"errors"
	"reflect"
	"testing"
)

func TestExtractJSONStripsFences(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "json fence",
			input: "```json\n{\"name\": \"Ada\"}\n```",
			want:  "{\"name\": \"Ada\"}",
		},
		{
			name:  "plain fence",
			input: "```\n{\"name\": \"Ada\"}\n```",
			want:  "{\"name\": \"Ada\"}",
		},
		{
			name:  "no fence",
			input: "{\"name\": \"Ada\"}",
			want:  "{\"name\": \"Ada\"}",
		},
		{
			name:  "surrounding prose",
			input: "Here is the extracted data:\n{\"name\": \"Ada\"}\nLet me know if you need more.",
			want:  "{\"name\": \"Ada\"}",
		},
		{
			name:  "array payload",
			input: "```json\n[\"Go\", \"SQL\"]\n```",
			want:  "[\"Go\", \"SQL\"]",
		},
	}

	for _, tc := range cases {
		got := ExtractJSON(tc.input)
		if got != tc.want {
			t.Errorf("%s: Expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestParseResponse(t *testing.T) {
	p, err := ParseResponse("```json\n{\"name\":\"Ada Lovelace\",\"skills\":\"Mathematics\"}\n```")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if p.Name != "Ada Lovelace" {
		t.Errorf("Expected Name 'Ada Lovelace', got %q", p.Name)
	}
	if !reflect.DeepEqual(p.Skills, []string{"Mathematics"}) {
		t.Errorf("Expected skills ['Mathematics'], got %v", p.Skills)
	}
	if p.Email != FallbackEmail {
		t.Errorf("Expected Email fallback, got %q", p.Email)
	}
	if len(p.WorkExperience) != 0 {
		t.Errorf("Expected empty work experience, got %d items", len(p.WorkExperience))
	}
}

func TestParseResponseUnparseable(t *testing.T) {
	_, err := ParseResponse("I could not read the document, sorry.")
	if err == nil {
		t.Fatal("Expected an error for non-JSON response")
	}
	if !errors.Is(err, ErrUnparseable) {
		t.Errorf("Expected error to wrap ErrUnparseable, got %v", err)
	}
}

func TestParseResponseMalformedShape(t *testing.T) {
	// Any JSON that parses must normalize without error, whatever its shape
	p, err := ParseResponse("```json\n{\"work_experience\": \"ten years\", \"skills\": 42}\n```")
	if err != nil {
		t.Fatalf("Unexpected error for parseable JSON: %v", err)
	}
	if len(p.WorkExperience) != 0 {
		t.Errorf("Expected empty work experience, got %d items", len(p.WorkExperience))
	}
	if !reflect.DeepEqual(p.Skills, []string{FallbackSkills}) {
		t.Errorf("Expected skills fallback, got %v", p.Skills)
	}
}
