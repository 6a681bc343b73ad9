package request

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	digitPattern = regexp.MustCompile(`\d`)
)

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// validPhone accepts 10 to 15 digits with optional +, spaces and dashes.
// Carrier-level validation is the CRM's problem, not the capture form's.
func validPhone(s string) bool {
	digits := len(digitPattern.FindAllString(s, -1))
	if digits < 10 || digits > 15 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return true
}

func validName(s string) bool {
	return len(strings.TrimSpace(s)) >= 2
}
