package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"longer", "abcdef", 3, "abc"},
		{"multibyte", "äöüß", 2, "äö"},
		{"zero", "abc", 0, ""},
		{"empty", "", 3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.n))
		})
	}
}

func TestOrganizeSubmissionTruncates(t *testing.T) {
	src := strings.Repeat("a", 3000) + strings.Repeat("Q", 2000)

	p := OrganizeSubmission(src)

	assert.True(t, strings.HasSuffix(p, src[:3000]))
	assert.NotContains(t, p, "Q")
	assert.Equal(t, utf8.RuneCountInString(organizeSubmission)+3000, utf8.RuneCountInString(p))
	assert.True(t, strings.HasPrefix(p, "Organize the following 510(k) submission"))
}

func TestOrganizeChecklistTruncates(t *testing.T) {
	src := strings.Repeat("b", 3500)

	p := OrganizeChecklist(src)

	assert.True(t, strings.HasSuffix(p, "Source:\n"+strings.Repeat("b", 3000)))
	assert.NotContains(t, p, strings.Repeat("b", 3001))
}

func TestReviewBudgets(t *testing.T) {
	checklist := strings.Repeat("c", 2500)
	submission := strings.Repeat("s", 9000)

	p := Review(checklist, submission)

	assert.Contains(t, p, "CHECKLIST:\n"+strings.Repeat("c", 2000)+"\n\nSUBMISSION:\n")
	assert.True(t, strings.HasSuffix(p, "SUBMISSION:\n"+strings.Repeat("s", 8000)))
	assert.NotContains(t, p, strings.Repeat("c", 2001))
	assert.NotContains(t, p, strings.Repeat("s", 8001))
}

func TestBuildersAreDeterministic(t *testing.T) {
	assert.Equal(t, Review("x", "y"), Review("x", "y"))
	assert.Equal(t, OrganizeSubmission("x"), OrganizeSubmission("x"))
}

func TestShortInputsEmbeddedVerbatim(t *testing.T) {
	assert.Equal(t, organizeChecklist+"- [ ] item {json}", OrganizeChecklist("- [ ] item {json}"))
}
