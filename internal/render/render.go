// Package render maps the resume document to the preview HTML. Rendering is
// a pure function of (data, template, language); the three templates share
// one section skeleton and differ only in style tokens.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"resume-builder/internal/i18n"
	"resume-builder/internal/model"
)

// PreviewTargetID is the element id of the rendered document root. The
// export engine captures this element; everything outside it is chrome.
const PreviewTargetID = "resume-preview"

// Section identifies one of the fixed-order document sections.
type Section string

const (
	SectionHeader     Section = "header"
	SectionSummary    Section = "summary"
	SectionExperience Section = "experience"
	SectionProjects   Section = "projects"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
)

//go:embed preview.html.tmpl
var previewHTML string

var previewTmpl = template.Must(template.New("preview").Funcs(template.FuncMap{
	"join":      strings.Join,
	"dateRange": dateRange,
}).Parse(previewHTML))

type viewModel struct {
	Data         model.ResumeData
	Template     model.TemplateID
	T            i18n.Table
	CSS          template.CSS
	TargetID     string
	ContactParts []string
	SkillNames   string
}

// Render produces the full preview document. Section order is fixed (header,
// summary, experience, projects, education, skills) and a section appears iff
// its backing data is non-empty, regardless of template.
func Render(data model.ResumeData, tpl model.TemplateID, lang model.Language) (string, error) {
	css, ok := templateCSS[tpl]
	if !ok {
		return "", fmt.Errorf("unknown template %q", tpl)
	}

	vm := viewModel{
		Data:         data,
		Template:     tpl,
		T:            i18n.For(lang),
		CSS:          template.CSS(baseCSS + css),
		TargetID:     PreviewTargetID,
		ContactParts: contactParts(data.PersonalInfo),
		SkillNames:   skillNames(data.Skills),
	}

	var buf bytes.Buffer
	if err := previewTmpl.Execute(&buf, vm); err != nil {
		return "", fmt.Errorf("rendering preview: %w", err)
	}
	return buf.String(), nil
}

// SectionPresence reports which sections a data set produces. By
// construction this depends only on the data, never on the template.
func SectionPresence(data model.ResumeData) []Section {
	out := []Section{SectionHeader}
	if data.PersonalInfo.Summary != "" {
		out = append(out, SectionSummary)
	}
	if len(data.Experience) > 0 {
		out = append(out, SectionExperience)
	}
	if len(data.Projects) > 0 {
		out = append(out, SectionProjects)
	}
	if len(data.Education) > 0 {
		out = append(out, SectionEducation)
	}
	if len(data.Skills) > 0 {
		out = append(out, SectionSkills)
	}
	return out
}

// contactParts collects the non-empty contact fields in display order; the
// template joins them with the separator glyph.
func contactParts(info model.PersonalInfo) []string {
	parts := []string{}
	for _, p := range []string{info.Email, info.Phone, info.Location, info.Website, info.LinkedIn, info.GitHub} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func skillNames(skills []model.Skill) string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

// dateRange renders dates as the raw strings the user typed; current entries
// show the localized Present token instead of an end date.
func dateRange(start, end string, current bool, present string) string {
	if current {
		return start + " - " + present
	}
	return start + " - " + end
}
