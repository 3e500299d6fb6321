package resume

import (
	"fmt"
	"strings"
)

// Markdown renders the resume as a Markdown document. Empty sections
// are omitted entirely.
func (r *Resume) Markdown() string {
	var b strings.Builder

	if r.Contact.Name != "" {
		fmt.Fprintf(&b, "# %s\n\n", r.Contact.Name)
	}
	if line := r.contactLine(); line != "" {
		b.WriteString(line + "\n\n")
	}

	if r.Summary != "" {
		b.WriteString("## Summary\n\n")
		b.WriteString(r.Summary + "\n\n")
	}

	if len(r.Skills) > 0 {
		b.WriteString("## Skills\n\n")
		b.WriteString(strings.Join(r.Skills, ", ") + "\n\n")
	}

	writeEntries(&b, "Experience", r.Experience)
	writeEntries(&b, "Education", r.Education)
	writeEntries(&b, "Projects", r.Projects)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func (r *Resume) contactLine() string {
	var parts []string
	for _, p := range []string{r.Contact.Email, r.Contact.Phone, r.Contact.LinkedIn, r.Contact.Website} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}

func writeEntries(b *strings.Builder, heading string, entries []Entry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	for _, e := range entries {
		fmt.Fprintf(b, "### %s", e.Title)
		if e.Organization != "" {
			fmt.Fprintf(b, " at %s", e.Organization)
		}
		b.WriteString("\n\n")

		if e.StartDate != "" {
			end := e.EndDate
			if end == "" {
				end = "Present"
			}
			fmt.Fprintf(b, "*%s - %s*\n\n", e.StartDate, end)
		}
		if e.Description != "" {
			b.WriteString(e.Description + "\n\n")
		}
	}
}
