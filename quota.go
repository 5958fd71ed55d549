package pdfgen

import (
	"regexp"
	"strconv"
)

// Quota is a remaining-pages reading from the converter's status output.
// Non-negative values are page counts; the two negative sentinels mark
// uncapped licenses and unreadable status output.
type Quota int

const (
	// QuotaUnlimited marks a license without an hourly page cap.
	QuotaUnlimited Quota = -1
	// QuotaUnknown marks status output the quota could not be read from.
	QuotaUnknown Quota = -2
)

// remainingPattern extracts the parenthesized "<value> remaining" token,
// e.g. "Pages per hour: 1000 (523 remaining)".
var remainingPattern = regexp.MustCompile(`\(([^)]+) remaining\)`)

// Unlimited reports whether the license has no hourly page cap.
func (q Quota) Unlimited() bool { return q == QuotaUnlimited }

// Known reports whether the quota could be read from the status output.
func (q Quota) Known() bool { return q != QuotaUnknown }

func (q Quota) String() string {
	switch q {
	case QuotaUnlimited:
		return "unlimited"
	case QuotaUnknown:
		return "unknown"
	default:
		return strconv.Itoa(int(q))
	}
}

// parseRemainingPages reads the remaining quota from the "Pages per hour:"
// status line. A missing line, a non-matching pattern, and a non-numeric
// token are all soft fallbacks to QuotaUnknown, never errors.
func parseRemainingPages(output string) Quota {
	line, ok := statusLine(output, pagesPerHourPrefix)
	if !ok {
		return QuotaUnknown
	}

	match := remainingPattern.FindStringSubmatch(line)
	if match == nil {
		return QuotaUnknown
	}

	if match[1] == "unlimited" {
		return QuotaUnlimited
	}

	n, err := strconv.Atoi(match[1])
	if err != nil {
		return QuotaUnknown
	}
	return Quota(n)
}
