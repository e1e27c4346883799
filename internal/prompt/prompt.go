// Package prompt holds the fixed instruction templates sent to the model.
// Inputs are truncated to a character budget and embedded without escaping.
package prompt

// Character budgets per input.
const (
	SubmissionSourceLimit = 3000
	ChecklistSourceLimit  = 3000
	ReviewChecklistLimit  = 2000
	ReviewSubmissionLimit = 8000
)

const (
	organizeSubmission = "Organize the following 510(k) submission into structured markdown " +
		"with headings, summary, and checklist.\n\nSource:\n"
	organizeChecklist = "Organize the following checklist into a clear markdown checklist " +
		"grouped by sections.\n\nSource:\n"
	review = "Using the checklist below, evaluate the submission and produce a " +
		"structured review report with findings, recommended actions, and " +
		"missing documents.\n\nCHECKLIST:\n"
)

func OrganizeSubmission(text string) string {
	return organizeSubmission + Truncate(text, SubmissionSourceLimit)
}

func OrganizeChecklist(text string) string {
	return organizeChecklist + Truncate(text, ChecklistSourceLimit)
}

// Review builds the checklist-driven review prompt.
func Review(checklist, submission string) string {
	return review + Truncate(checklist, ReviewChecklistLimit) +
		"\n\nSUBMISSION:\n" + Truncate(submission, ReviewSubmissionLimit)
}

// Truncate returns at most n characters (runes) of s.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
