package pdfgen

import "strings"

// Prefixes of the lines extracted from the converter's --status output.
const (
	activationPrefix   = "Activation:"
	pagesPerHourPrefix = "Pages per hour:"
)

// statusLine returns the trimmed remainder of the first line in output that
// starts with prefix. Keeping line selection here, away from process
// execution, makes the parsing rules independently testable.
func statusLine(output, prefix string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return "", false
}

// isActivatedStatus reports whether status output carries a valid license
// activation token. A missing "Activation:" line, an empty token, and the
// literal "none" (any case) all mean not activated.
func isActivatedStatus(output string) bool {
	token, ok := statusLine(output, activationPrefix)
	if !ok || token == "" {
		return false
	}
	return !strings.EqualFold(token, "none")
}
