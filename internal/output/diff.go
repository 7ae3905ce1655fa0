package output

import "strings"

// Diff line markers per file status.
var diffMarkers = map[string]string{
	StatusMissing:  "-",
	StatusModified: "~",
	StatusExtra:    "+",
}

// FormatDiffHeader renders a file header line for drift output, such as
// "  ~ package.json".
func FormatDiffHeader(path, status string) string {
	marker, ok := diffMarkers[status]
	if !ok {
		marker = " "
	}
	style := statusStyle(status)
	return "  " + style.Render(marker) + " " + style.Render(path) + StyleDim.Render(" ("+status+")")
}

// IndentDiff indents every non-empty line of diff.
func IndentDiff(diff string, indent string) string {
	if diff == "" {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
