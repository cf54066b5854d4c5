// Package ats scores a resume against a job description with a simple
// keyword-matching heuristic. Pure function, no external calls.
package ats

import (
	"encoding/json"
	"regexp"
	"strings"

	"resume-builder/internal/model"
)

// Result is the heuristic's output: an integer score 0-100 plus the
// keywords the resume is missing and plain-language suggestions.
type Result struct {
	Score           int      `json:"score"`
	MissingKeywords []string `json:"missingKeywords"`
	Suggestions     []string `json:"suggestions"`
}

const maxKeywords = 20

// Candidate keywords are any words of five letters or more; a predefined
// skill list or real NLP would do better, but this matches what recruiters'
// simplest filters do.
var wordPattern = regexp.MustCompile(`\b\w{5,}\b`)

// Score awards up to 30 points for basic structure, 10 for content length,
// and 60 for keyword overlap with the job description. With no job
// description the keyword block passes for free and the caller is told to
// paste one.
func Score(data model.ResumeData, jobDescription string) Result {
	score := 0.0
	suggestions := []string{}
	missing := []string{}

	if data.PersonalInfo.FullName != "" {
		score += 5
	} else {
		suggestions = append(suggestions, "Add your full name.")
	}
	if data.PersonalInfo.Email != "" {
		score += 5
	} else {
		suggestions = append(suggestions, "Add your email address.")
	}
	if data.PersonalInfo.Phone != "" {
		score += 5
	} else {
		suggestions = append(suggestions, "Add your phone number.")
	}
	if len(data.Experience) > 0 {
		score += 10
	} else {
		suggestions = append(suggestions, "Add at least one work experience.")
	}
	if len(data.Education) > 0 {
		score += 5
	} else {
		suggestions = append(suggestions, "Add your education details.")
	}

	resumeJSON, _ := json.Marshal(data)
	if len(resumeJSON) > 500 {
		score += 10
	} else {
		suggestions = append(suggestions, "Your resume seems a bit short. Add more details to your experience.")
	}

	if jobDescription != "" {
		resumeText := strings.ToLower(string(resumeJSON))
		words := wordPattern.FindAllString(strings.ToLower(jobDescription), -1)
		keywords := dedupe(words)
		if len(keywords) > maxKeywords {
			keywords = keywords[:maxKeywords]
		}

		matched := 0
		for _, kw := range keywords {
			if strings.Contains(resumeText, kw) {
				matched++
			} else {
				missing = append(missing, kw)
			}
		}

		matchScore := 0.0
		if len(keywords) > 0 {
			matchScore = float64(matched) / float64(len(keywords)) * 60
			if matchScore > 60 {
				matchScore = 60
			}
		}
		score += matchScore
		if matchScore < 30 {
			suggestions = append(suggestions, "Try to include more keywords from the job description.")
		}
	} else {
		score += 60
		suggestions = append(suggestions, "Paste a Job Description to check for keyword matching.")
	}

	return Result{
		Score:           int(score + 0.5),
		MissingKeywords: missing,
		Suggestions:     suggestions,
	}
}

func dedupe(words []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, w := range words {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}
