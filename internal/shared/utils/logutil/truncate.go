// Package logutil bounds client-controlled strings, such as query strings and
// user agents, before they reach the access log.
package logutil

import "unicode/utf8"

// TruncateForLog cuts s to at most maxLen bytes without splitting a character
// and marks the cut with "...".
func TruncateForLog(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
