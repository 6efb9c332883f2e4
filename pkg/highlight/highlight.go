// Package highlight classifies output lines by severity keywords so the
// frontend can apply its own coloring after the child's was stripped.
package highlight

import "strings"

// Severity is the display class of an output line.
type Severity int

const (
	SeverityPlain Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "plain"
	}
}

var (
	errorTokens   = []string{"error", "err:", "fatal", "failed", "failure"}
	warningTokens = []string{"warning", "warn:", "caution"}
	infoTokens    = []string{"info", "information", "note:", "hint:"}
)

// Classify returns the severity of a line by case-insensitive substring
// matching. Error outranks warning, warning outranks info.
func Classify(line string) Severity {
	lower := strings.ToLower(line)
	for _, tok := range errorTokens {
		if strings.Contains(lower, tok) {
			return SeverityError
		}
	}
	for _, tok := range warningTokens {
		if strings.Contains(lower, tok) {
			return SeverityWarning
		}
	}
	for _, tok := range infoTokens {
		if strings.Contains(lower, tok) {
			return SeverityInfo
		}
	}
	return SeverityPlain
}
