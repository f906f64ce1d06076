package validate

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{7,14}$`)
	digitsOnly   = regexp.MustCompile(`[^0-9]`)
)

// Email checks the basic local@domain.tld shape. Full RFC parsing is
// deliberately out of scope; the mail provider is the final arbiter.
func Email(email string) bool {
	return emailPattern.MatchString(email)
}

// Phone accepts E.164 or plain digits of plausible length.
func Phone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}

// NormalizePhone strips formatting and forces a leading "+", returning false
// when the result is not a plausible international number.
func NormalizePhone(phone string) (string, bool) {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return "", false
	}
	normalized := trimmed
	if !strings.HasPrefix(trimmed, "+") {
		normalized = "+" + digitsOnly.ReplaceAllString(trimmed, "")
	}
	if !Phone(normalized) {
		return "", false
	}
	return normalized, true
}

// Amount reports whether a monetary amount is strictly positive.
func Amount(amount float64) bool {
	return amount > 0
}
