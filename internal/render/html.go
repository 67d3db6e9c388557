package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/Alucard0x1/AI-Resume-Builder/internal/profile"
)

// documentTemplate is the full standalone CV document. All interpolated
// fields come from untrusted resume content, so everything goes through
// html/template's contextual escaping.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Name}} - CV</title>
<script src="https://cdn.tailwindcss.com"></script>
<style>
  @media print {
    .no-print { display: none; }
    body { background: white; }
  }
</style>
</head>
<body class="bg-gray-100 font-sans">
<div class="max-w-3xl mx-auto bg-white shadow-lg my-8 p-10">
  <div class="no-print text-right mb-4">
    <button onclick="window.print()" class="bg-blue-600 text-white px-4 py-2 rounded hover:bg-blue-700">Print CV</button>
  </div>
  <header class="border-b-2 border-gray-800 pb-4 mb-6">
    <h1 class="text-3xl font-bold text-gray-900">{{.Name}}</h1>
    <p class="text-gray-600 mt-2">{{.Email}} &bull; {{.Phone}} &bull; <a href="{{.Website}}" class="text-blue-600 hover:underline">{{.Website}}</a></p>
  </header>
{{if .Summary}}  <section class="mb-6">
    <h2 class="text-xl font-semibold text-gray-800 uppercase tracking-wide mb-2">Summary</h2>
    <p class="text-gray-700">{{.Summary}}</p>
  </section>
{{end}}{{if .WorkExperience}}  <section class="mb-6">
    <h2 class="text-xl font-semibold text-gray-800 uppercase tracking-wide mb-2">Work Experience</h2>
{{range $i, $job := .WorkExperience}}{{if $i}}    <hr class="my-4 border-gray-300">
{{end}}    <div class="mb-2">
      <h3 class="text-lg font-semibold text-gray-900">{{$job.JobTitle}}</h3>
      <p class="text-gray-600 italic">{{$job.Company}} | {{$job.Dates}}</p>
      <ul class="list-disc list-inside text-gray-700 mt-2">
{{range $job.Responsibilities}}        <li>{{.}}</li>
{{end}}      </ul>
    </div>
{{end}}  </section>
{{end}}{{if .Education}}  <section class="mb-6">
    <h2 class="text-xl font-semibold text-gray-800 uppercase tracking-wide mb-2">Education</h2>
{{range $i, $edu := .Education}}{{if $i}}    <hr class="my-4 border-gray-300">
{{end}}    <div class="mb-2">
      <h3 class="text-lg font-semibold text-gray-900">{{$edu.Degree}}</h3>
      <p class="text-gray-600 italic">{{$edu.University}} | {{$edu.Dates}}</p>
    </div>
{{end}}  </section>
{{end}}{{if .Skills}}  <section>
    <h2 class="text-xl font-semibold text-gray-800 uppercase tracking-wide mb-2">Skills</h2>
    <div class="flex flex-wrap gap-2">
{{range .Skills}}      <span class="bg-gray-200 text-gray-800 px-3 py-1 rounded-full text-sm">{{.}}</span>
{{end}}    </div>
  </section>
{{end}}</div>
</body>
</html>
`

var documentTmpl = template.Must(template.New("cv").Parse(documentTemplate))

// Render produces the standalone HTML document for a normalized profile.
// Deterministic: the same profile always yields the same document.
func Render(p profile.Profile) (string, error) {
	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("failed to render CV document: %w", err)
	}
	return buf.String(), nil
}

// ExportFilename returns the download filename for a rendered CV,
// e.g. "Ada Lovelace" -> "Ada_Lovelace_CV.html".
func ExportFilename(name string) string {
	return strings.ReplaceAll(name, " ", "_") + "_CV.html"
}
