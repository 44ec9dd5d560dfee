// Package email holds address helpers used by the contact relay.
package email

import (
	"net/mail"
	"strings"
	"unicode"
)

// Normalize parses addr as a bare RFC 5322 address and returns it with the
// domain lower-cased. Display-name forms ("Jane <j@x.io>") are rejected.
func Normalize(addr string) (string, bool) {
	addr = strings.TrimSpace(addr)
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return "", false
	}
	at := strings.LastIndexByte(addr, '@')
	if at <= 0 || !strings.Contains(addr[at+1:], ".") {
		return "", false
	}
	return addr[:at] + "@" + strings.ToLower(addr[at+1:]), true
}

// DeriveNameFromEmail guesses first and last names from the local part,
// e.g. "jane.doe+site@x.io" gives ("Jane", "Site"). Missing parts are empty.
func DeriveNameFromEmail(email string) (string, string) {
	localPart := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		localPart = email[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+' || unicode.IsDigit(r)
	})

	if len(parts) == 0 {
		return "", ""
	}

	first := capitalize(parts[0])
	last := ""
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}
	return first, last
}

// DisplayName joins the derived names, falling back to "Website visitor".
func DisplayName(email string) string {
	first, last := DeriveNameFromEmail(email)
	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		return "Website visitor"
	}
	return name
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
