// Dev tool: renders a snapshot file through each template and writes the
// HTML next to it, for eyeballing template changes without the server.
//
// Usage: go run tools/render_preview.go [snapshot.json]
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

func main() {
	in := "resume-builder-storage.json"
	if len(os.Args) > 1 {
		in = os.Args[1]
	}
	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read snapshot: %v\n", err)
		os.Exit(2)
	}
	var state model.AppState
	if err := json.Unmarshal(b, &state); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}

	for _, tpl := range []model.TemplateID{model.TemplateModern, model.TemplateClassic, model.TemplateMinimal} {
		html, err := render.Render(state.ResumeData, tpl, state.Language)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render %s: %v\n", tpl, err)
			os.Exit(2)
		}
		out := fmt.Sprintf("preview_%s.html", tpl)
		if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", out, err)
			os.Exit(2)
		}
		fmt.Printf("wrote %s\n", out)
	}
}
