package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-builder/internal/i18n"
	"resume-builder/internal/model"
)

func TestForKnownLanguages(t *testing.T) {
	en := i18n.For(model.LangEnglish)
	assert.Equal(t, "Experience", en.Experience)
	assert.Equal(t, "Present", en.Present)

	de := i18n.For(model.LangGerman)
	assert.Equal(t, "Erfahrung", de.Experience)
	assert.Equal(t, "Zusammenfassung", de.Summary)
	assert.Equal(t, "Heute", de.Present)
}

func TestForUnknownFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, i18n.For(model.LangEnglish), i18n.For(model.Language("fr")))
}

func TestMatch(t *testing.T) {
	cases := []struct {
		tag  string
		want model.Language
	}{
		{"en", model.LangEnglish},
		{"en-US", model.LangEnglish},
		{"de", model.LangGerman},
		{"de-AT", model.LangGerman},
		{"fr", model.LangEnglish},
		{"", model.LangEnglish},
		{"not a tag", model.LangEnglish},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, i18n.Match(tc.tag), "tag %q", tc.tag)
	}
}
