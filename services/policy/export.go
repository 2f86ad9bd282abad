package policy

import "strings"

// ExportText renders a generated document as plain text for download.
// Literal '#' and '**' markup characters are removed and runs of blank
// lines are collapsed to a single one.
func ExportText(document string) string {
	stripped := strings.ReplaceAll(document, "**", "")
	stripped = strings.ReplaceAll(stripped, "#", "")

	lines := strings.Split(stripped, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if strings.TrimSpace(trimmed) == "" {
			if blank {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, strings.TrimLeft(trimmed, " "))
	}
	return strings.Join(out, "\n")
}
