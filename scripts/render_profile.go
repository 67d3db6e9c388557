package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Alucard0x1/AI-Resume-Builder/internal/profile"
	"github.com/Alucard0x1/AI-Resume-Builder/internal/render"
)

// Dev helper: feed a saved AI response (the raw text, fences and all) through
// the normalizer and renderer without running the server.
//
//	go run scripts/render_profile.go response.txt out.html
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: render_profile <response.txt> <out.html>")
		os.Exit(2)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("❌ Failed to read response file: %v", err)
	}

	p, err := profile.ParseResponse(string(raw))
	if err != nil {
		log.Fatalf("❌ Failed to parse response: %v", err)
	}

	html, err := render.Render(p)
	if err != nil {
		log.Fatalf("❌ Failed to render CV: %v", err)
	}

	if err := os.WriteFile(os.Args[2], []byte(html), 0644); err != nil {
		log.Fatalf("❌ Failed to write output: %v", err)
	}

	log.Printf("✅ Wrote %s (%s)\n", os.Args[2], render.ExportFilename(p.Name))
}
