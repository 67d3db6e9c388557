package render

import (
	"strings"
	"testing"

	"github.com/Alucard0x1/AI-Resume-Builder/internal/profile"
)

func adaProfile() profile.Profile {
	return profile.Normalize(map[string]interface{}{
		"name":   "Ada Lovelace",
		"skills": "Mathematics",
	})
}

func TestRenderAdaExample(t *testing.T) {
	html, err := Render(adaProfile())
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	if !strings.Contains(html, ">Ada Lovelace</h1>") {
		t.Error("Expected an h1 heading with the profile name")
	}
	if !strings.Contains(html, ">Mathematics</span>") {
		t.Error("Expected a skill badge reading 'Mathematics'")
	}
	if strings.Contains(html, "Work Experience") {
		t.Error("Expected the work experience section to be omitted for an empty sequence")
	}
	if strings.Contains(html, "Education") {
		t.Error("Expected the education section to be omitted for an empty sequence")
	}
	// Scalar fallbacks are still rendered
	if !strings.Contains(html, profile.FallbackEmail) {
		t.Errorf("Expected header to contain %q", profile.FallbackEmail)
	}
	if !strings.Contains(html, profile.FallbackSummary) {
		t.Errorf("Expected summary section to contain %q", profile.FallbackSummary)
	}
}

func TestRenderEscapesUntrustedContent(t *testing.T) {
	p := adaProfile()
	p.Name = "<script>alert('x')</script>"
	p.Skills = []string{"<b>bold</b>"}

	html, err := Render(p)
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	if strings.Contains(html, "<script>alert") {
		t.Error("Rendered output contains an unescaped script tag")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("Expected the name to appear in escaped form")
	}
	if strings.Contains(html, "<b>bold</b>") {
		t.Error("Rendered output contains unescaped skill markup")
	}
}

func TestRenderWorkExperienceSection(t *testing.T) {
	p := profile.Normalize(map[string]interface{}{
		"name": "Grace Hopper",
		"work_experience": []interface{}{
			map[string]interface{}{
				"job_title":        "Rear Admiral",
				"company":          "US Navy",
				"dates":            "1943-1986",
				"responsibilities": []interface{}{"Invented the compiler"},
			},
			map[string]interface{}{
				"job_title":        "Programmer",
				"company":          "Harvard",
				"dates":            "1944-1949",
				"responsibilities": "Worked on the Mark I",
			},
		},
	})

	html, err := Render(p)
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	if !strings.Contains(html, "Work Experience") {
		t.Error("Expected a work experience section")
	}
	if !strings.Contains(html, ">Rear Admiral</h3>") {
		t.Error("Expected the job title as a heading")
	}
	if !strings.Contains(html, "US Navy | 1943-1986") {
		t.Error("Expected company and dates in the subheading")
	}
	if !strings.Contains(html, "<li>Invented the compiler</li>") {
		t.Error("Expected responsibilities as list items")
	}

	// A single divider separates the second entry from the first
	if got := strings.Count(html, "<hr"); got != 1 {
		t.Errorf("Expected exactly 1 divider between 2 entries, got %d", got)
	}

	// Entries keep their original order
	if strings.Index(html, "Rear Admiral") > strings.Index(html, "Programmer") {
		t.Error("Expected work entries in original order")
	}
}

func TestRenderEducationSection(t *testing.T) {
	p := profile.Normalize(map[string]interface{}{
		"name": "Grace Hopper",
		"education": []interface{}{
			map[string]interface{}{"degree": "PhD Mathematics", "university": "Yale", "dates": "1930-1934"},
		},
	})

	html, err := Render(p)
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	if !strings.Contains(html, "Education") {
		t.Error("Expected an education section")
	}
	if !strings.Contains(html, ">PhD Mathematics</h3>") {
		t.Error("Expected the degree as a heading")
	}
	if !strings.Contains(html, "Yale | 1930-1934") {
		t.Error("Expected university and dates in the subheading")
	}
	// Education has no bullet list
	if strings.Contains(html, "<li>") {
		t.Error("Expected no list items in an education-only profile")
	}
}

func TestRenderWebsiteHyperlink(t *testing.T) {
	p := adaProfile()
	p.Website = "https://ada.dev"

	html, err := Render(p)
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	if !strings.Contains(html, `href="https://ada.dev"`) {
		t.Error("Expected the website as the hyperlink href")
	}
	if !strings.Contains(html, ">https://ada.dev</a>") {
		t.Error("Expected the website as the visible link text")
	}
}

func TestRenderDeterministic(t *testing.T) {
	p := adaProfile()

	first, err := Render(p)
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}
	second, err := Render(p)
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	if first != second {
		t.Error("Expected identical output for identical profiles")
	}
}

func TestRenderPrintButton(t *testing.T) {
	html, err := Render(adaProfile())
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	if !strings.Contains(html, "window.print()") {
		t.Error("Expected a print action in the document")
	}
	if !strings.Contains(html, "no-print") {
		t.Error("Expected the print action to be excluded from print output")
	}
}

func TestExportFilename(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Ada Lovelace", "Ada_Lovelace_CV.html"},
		{"Grace Brewster Murray Hopper", "Grace_Brewster_Murray_Hopper_CV.html"},
		{"Plato", "Plato_CV.html"},
	}

	for _, tc := range cases {
		if got := ExportFilename(tc.name); got != tc.want {
			t.Errorf("ExportFilename(%q): Expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
