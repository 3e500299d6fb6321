package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullResume() *Resume {
	return &Resume{
		Contact: Contact{
			Name:     "Jordan Reyes",
			Email:    "jordan@example.com",
			LinkedIn: "linkedin.com/in/jordanreyes",
		},
		Summary: "Backend engineer with 6 years building data platforms.",
		Skills:  []string{"Go", "PostgreSQL", "Kubernetes"},
		Experience: []Entry{
			{
				Title:        "Senior Engineer",
				Organization: "Acme Corp",
				StartDate:    "2021-03",
				Description:  "Led migration of billing pipeline to event sourcing.",
			},
			{
				Title:        "Engineer",
				Organization: "Widgets Inc",
				StartDate:    "2018-01",
				EndDate:      "2021-02",
				Description:  "Built internal APIs.",
			},
		},
		Education: []Entry{
			{
				Title:        "BSc Computer Science",
				Organization: "State University",
				StartDate:    "2014",
				EndDate:      "2018",
			},
		},
	}
}

func TestMarkdownFullResume(t *testing.T) {
	md := fullResume().Markdown()

	assert.True(t, strings.HasPrefix(md, "# Jordan Reyes\n"), "missing name heading: %s", md)
	assert.Contains(t, md, "jordan@example.com | linkedin.com/in/jordanreyes")
	assert.Contains(t, md, "## Summary")
	assert.Contains(t, md, "## Skills\n\nGo, PostgreSQL, Kubernetes")
	assert.Contains(t, md, "### Senior Engineer at Acme Corp")
	assert.Contains(t, md, "*2021-03 - Present*")
	assert.Contains(t, md, "*2018-01 - 2021-02*")
	assert.Contains(t, md, "## Education")
	assert.NotContains(t, md, "## Projects", "empty section should be omitted")
}

func TestMarkdownSectionOrder(t *testing.T) {
	md := fullResume().Markdown()

	summaryAt := strings.Index(md, "## Summary")
	skillsAt := strings.Index(md, "## Skills")
	expAt := strings.Index(md, "## Experience")
	eduAt := strings.Index(md, "## Education")

	require.True(t, summaryAt >= 0 && skillsAt >= 0 && expAt >= 0 && eduAt >= 0)
	assert.Less(t, summaryAt, skillsAt)
	assert.Less(t, skillsAt, expAt)
	assert.Less(t, expAt, eduAt)
}

func TestMarkdownEmptyResume(t *testing.T) {
	md := (&Resume{}).Markdown()
	assert.Equal(t, "\n", md)
}

func TestMarkdownEndsWithSingleNewline(t *testing.T) {
	md := fullResume().Markdown()
	assert.True(t, strings.HasSuffix(md, "\n"))
	assert.False(t, strings.HasSuffix(md, "\n\n"))
}
