package utils

import (
	"strings"
	"unicode/utf8"
)

// MaskEmail hides an account address in log lines about failed logins and
// registrations. Only the first character of the local part and the domain
// survive: "ann@example.com" becomes "a***@example.com".
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(strings.TrimSpace(email), "@")
	if !ok {
		return "***"
	}
	_, size := utf8.DecodeRuneInString(local)
	return local[:size] + "***@" + domain
}
