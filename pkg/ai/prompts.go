package ai

import "fmt"

// Prompt builders with a stable contract; the strings are part of the
// product, not throwaway test fixtures.

// SummaryPrompt drafts the professional summary at the top of the resume.
func SummaryPrompt(role, experience string) string {
	return fmt.Sprintf(
		"Write a professional resume summary for a %s with the following experience: %s. Keep it concise (2-3 sentences) and impactful.",
		role, experience)
}

// ExperienceDescriptionPrompt drafts bullet-style copy for one position.
func ExperienceDescriptionPrompt(role, company, keywords string) string {
	return fmt.Sprintf(
		"Write a professional resume description for a %s position at %s. Use these keywords: %s. Create 3-4 bullet points highlighting achievements and responsibilities. Use strong action verbs and quantify results where possible. Return only the bullet points, each starting with a bullet point (•).",
		role, company, keywords)
}

// ImprovePrompt rewrites existing text in place.
func ImprovePrompt(text string) string {
	return fmt.Sprintf(
		"Rewrite the following resume text to be more professional, concise, and impactful. Use strong action verbs: %q. Return only the improved text.",
		text)
}
