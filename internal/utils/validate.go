package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether the string looks like an email address.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidPhone reports whether the string is a plausible phone number: at
// least 10 digits after stripping spaces, dashes and parentheses. An empty
// phone is accepted since the field is optional.
func ValidPhone(phone string) bool {
	if phone == "" {
		return true
	}
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, phone)
	if len(clean) < 10 {
		return false
	}
	for _, r := range clean {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// CheckPassword enforces the password policy: at least 8 characters with
// one uppercase letter, one lowercase letter and one digit. The returned
// string is a human-readable reason when the password is rejected.
func CheckPassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "password must be at least 8 characters long"
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper {
		return false, "password must contain at least one uppercase letter"
	}
	if !lower {
		return false, "password must contain at least one lowercase letter"
	}
	if !digit {
		return false, "password must contain at least one number"
	}
	return true, ""
}
