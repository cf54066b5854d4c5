// Package i18n holds the static string tables for the preview. There is no
// translation infrastructure beyond these tables.
package i18n

import (
	"golang.org/x/text/language"

	"resume-builder/internal/model"
)

// Table holds the localized preview tokens: section headings plus the label
// shown in place of an end date for current entries.
type Table struct {
	Summary    string
	Experience string
	Projects   string
	Education  string
	Skills     string
	Present    string
}

var tables = map[model.Language]Table{
	model.LangEnglish: {
		Summary:    "Summary",
		Experience: "Experience",
		Projects:   "Projects",
		Education:  "Education",
		Skills:     "Skills",
		Present:    "Present",
	},
	model.LangGerman: {
		Summary:    "Zusammenfassung",
		Experience: "Erfahrung",
		Projects:   "Projekte",
		Education:  "Ausbildung",
		Skills:     "Fähigkeiten",
		Present:    "Heute",
	},
}

// For returns the table for the given language, falling back to English for
// anything unknown.
func For(lang model.Language) Table {
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[model.LangEnglish]
}

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first tag is the fallback
	language.German,
})

// Match resolves an arbitrary BCP 47 tag (e.g. "de-AT", "en-US") to one of
// the supported languages.
func Match(tag string) model.Language {
	t, err := language.Parse(tag)
	if err != nil {
		return model.LangEnglish
	}
	_, idx, _ := matcher.Match(t)
	if idx == 1 {
		return model.LangGerman
	}
	return model.LangEnglish
}
