package ats_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-builder/internal/ats"
	"resume-builder/internal/model"
)

func fullResume() model.ResumeData {
	data := model.InitialState().ResumeData
	data.PersonalInfo = model.PersonalInfo{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "+44 1234",
		Summary:  "Seasoned engineer building distributed systems in kubernetes and golang environments.",
	}
	data.Experience = append(data.Experience, model.Experience{
		ID:          model.NewID(),
		Company:     "Acme",
		Position:    "Backend Engineer",
		StartDate:   "2020",
		Current:     true,
		Description: "Designed microservices with golang, postgres and kubernetes. Owned deployment pipelines end to end and mentored junior engineers on code review practices.",
	})
	data.Education = append(data.Education, model.Education{
		ID:     model.NewID(),
		School: "University of London",
		Degree: "BSc",
		Field:  "Mathematics",
	})
	return data
}

func TestEmptyResumeWithoutJobDescription(t *testing.T) {
	res := ats.Score(model.InitialState().ResumeData, "")

	// Keyword block passes for free; every structural check fails.
	assert.Equal(t, 60, res.Score)
	assert.Empty(t, res.MissingKeywords)
	assert.Contains(t, res.Suggestions, "Paste a Job Description to check for keyword matching.")
	assert.Contains(t, res.Suggestions, "Add your full name.")
	assert.Contains(t, res.Suggestions, "Add at least one work experience.")
}

func TestCompleteResumeWithoutJobDescription(t *testing.T) {
	res := ats.Score(fullResume(), "")

	assert.Equal(t, 100, res.Score)
	assert.Equal(t, []string{"Paste a Job Description to check for keyword matching."}, res.Suggestions)
}

func TestKeywordMatchingReportsMisses(t *testing.T) {
	jd := "We need golang and kubernetes experience. Familiarity with terraform required."
	res := ats.Score(fullResume(), jd)

	// golang, kubernetes, experience match; terraform and the filler words do not.
	assert.Contains(t, res.MissingKeywords, "terraform")
	assert.NotContains(t, res.MissingKeywords, "golang")
	assert.NotContains(t, res.MissingKeywords, "kubernetes")
	assert.Greater(t, res.Score, 40)
	assert.Less(t, res.Score, 100)
}

func TestKeywordsAreLowercasedAndDeduplicated(t *testing.T) {
	jd := "TERRAFORM terraform Terraform"
	res := ats.Score(fullResume(), jd)

	assert.Equal(t, []string{"terraform"}, res.MissingKeywords)
}

func TestKeywordListIsCapped(t *testing.T) {
	words := make([]string, 0, 40)
	for _, w := range []string{
		"alpha1", "bravo2", "charlie3", "delta4", "echofive", "foxtrot6", "golfseven", "hotel8",
		"india9", "juliet10", "kilo11", "lima12", "mike13", "november14", "oscar15", "papa16",
		"quebec17", "romeo18", "sierra19", "tango20", "uniform21", "victor22", "whiskey23",
	} {
		words = append(words, w)
	}
	res := ats.Score(model.InitialState().ResumeData, strings.Join(words, " "))

	assert.Len(t, res.MissingKeywords, 20)
}

func TestShortWordsAreNotKeywords(t *testing.T) {
	res := ats.Score(fullResume(), "go js ci cd api team")

	assert.Empty(t, res.MissingKeywords)
}

func TestLowOverlapSuggestsMoreKeywords(t *testing.T) {
	jd := "terraform ansible puppet chefcook saltstack"
	res := ats.Score(fullResume(), jd)

	assert.Contains(t, res.Suggestions, "Try to include more keywords from the job description.")
}
