// Package ansi removes terminal escape sequences from process output.
//
// HEMTT colors its output even when piped unless told otherwise; the runner
// additionally forces NO_COLOR, but stripping here guarantees the consumer
// never sees control sequences regardless of how well-behaved the tool is.
package ansi

import "regexp"

// escapePattern matches CSI sequences (ESC '[' parameter bytes, intermediate
// bytes, final byte) and the single-character Fe escapes (ESC '@' through
// ESC '_').
var escapePattern = regexp.MustCompile(`\x1b(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

// Strip returns line with all escape sequences removed. Visible text and
// whitespace are untouched; characters that merely resemble escape syntax
// without a leading ESC byte are kept.
func Strip(line string) string {
	return escapePattern.ReplaceAllString(line, "")
}
