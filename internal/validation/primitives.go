// Package validation contains format and range checks applied to raw member
// input before it reaches the points calculators.
package validation

import (
	"regexp"
	"strings"
	"time"
)

// MinAdultAge is the minimum age required to open an account.
const MinAdultAge = 18

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	// French numbers only: +33 or 0 prefix, then a non-zero digit and eight more.
	phonePattern  = regexp.MustCompile(`^(?:\+33|0)[1-9][0-9]{8}$`)
	ibanPattern   = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{4}[0-9]{7}[A-Z0-9]{0,16}$`)
	postalPattern = regexp.MustCompile(`^[0-9]{5}$`)
)

// IsValidEmail reports whether the input looks like an email address.
// Format check only, no deliverability verification.
func IsValidEmail(input string) bool {
	return emailPattern.MatchString(input)
}

// IsValidFrenchPhone reports whether the input is a French phone number.
// Whitespace is stripped before matching; foreign formats always reject.
func IsValidFrenchPhone(input string) bool {
	normalized := strings.Join(strings.Fields(input), "")
	return phonePattern.MatchString(normalized)
}

// IsValidIBAN performs a structural IBAN check. It does not verify the
// mod-97 check digits.
func IsValidIBAN(input string) bool {
	return ibanPattern.MatchString(input)
}

// IsValidFrenchPostalCode reports whether the input is exactly five digits.
func IsValidFrenchPostalCode(input string) bool {
	return postalPattern.MatchString(input)
}

// IsValidAge reports whether the person born at dateOfBirth has reached
// minAge whole years at the reference instant. The year difference is
// reduced by one when the birthday has not yet occurred that year.
func IsValidAge(dateOfBirth, now time.Time, minAge int) bool {
	age := now.Year() - dateOfBirth.Year()
	if now.Month() < dateOfBirth.Month() ||
		(now.Month() == dateOfBirth.Month() && now.Day() < dateOfBirth.Day()) {
		age--
	}
	return age >= minAge
}

// IsAdult reports whether the person born at dateOfBirth is at least
// MinAdultAge at the reference instant.
func IsAdult(dateOfBirth, now time.Time) bool {
	return IsValidAge(dateOfBirth, now, MinAdultAge)
}

// HasEnoughPoints reports whether the available balance covers the
// required amount.
func HasEnoughPoints(available, required int64) bool {
	return available >= required
}
