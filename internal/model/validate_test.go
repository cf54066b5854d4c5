package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateExperienceEndDateConditional(t *testing.T) {
	exp := Experience{
		ID:          NewID(),
		Company:     "Acme",
		Position:    "Engineer",
		StartDate:   "2020",
		Current:     false,
		Description: "Shipped production Go services.",
	}

	errs := ValidateExperience(exp)
	assert.Contains(t, fieldNames(errs), "endDate")

	exp.Current = true
	assert.Empty(t, ValidateExperience(exp))

	exp.Current = false
	exp.EndDate = "2023"
	assert.Empty(t, ValidateExperience(exp))
}

func TestValidatePersonalInfo(t *testing.T) {
	errs := ValidatePersonalInfo(PersonalInfo{})
	names := fieldNames(errs)
	assert.Contains(t, names, "fullName")
	assert.Contains(t, names, "email")
	assert.Contains(t, names, "summary")

	info := PersonalInfo{
		FullName: "Ada Lovelace",
		Email:    "not-an-email",
		Phone:    "123",
		Location: "London",
		Website:  "not a url",
		Summary:  "Analytical engine programmer.",
	}
	errs = ValidatePersonalInfo(info)
	names = fieldNames(errs)
	assert.Contains(t, names, "email")
	assert.Contains(t, names, "website")
	assert.NotContains(t, names, "fullName")
}

func TestValidateSkillLevelBounds(t *testing.T) {
	assert.NotEmpty(t, ValidateSkill(Skill{ID: NewID(), Name: "Go", Level: 0}))
	assert.NotEmpty(t, ValidateSkill(Skill{ID: NewID(), Name: "Go", Level: 6}))
	assert.Empty(t, ValidateSkill(Skill{ID: NewID(), Name: "Go", Level: 3}))
}

func TestValidateSnapshotAcceptsCurrentFormat(t *testing.T) {
	b, err := json.Marshal(InitialState())
	require.NoError(t, err)
	assert.NoError(t, ValidateSnapshot(b))
}

func TestValidateSnapshotRejectsBadEnums(t *testing.T) {
	state := InitialState()
	b, err := json.Marshal(state)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	m["selectedTemplate"] = "neon"
	bad, err := json.Marshal(m)
	require.NoError(t, err)

	assert.Error(t, ValidateSnapshot(bad))
}

func TestValidateSnapshotRejectsMissingAggregate(t *testing.T) {
	assert.Error(t, ValidateSnapshot([]byte(`{"selectedTemplate":"modern","language":"en"}`)))
}

func TestPatchAppliesOnlySetFields(t *testing.T) {
	e := Experience{Company: "Acme", Position: "Engineer"}
	pos := "Lead Engineer"
	ExperiencePatch{Position: &pos}.Apply(&e)
	assert.Equal(t, "Lead Engineer", e.Position)
	assert.Equal(t, "Acme", e.Company)
}
