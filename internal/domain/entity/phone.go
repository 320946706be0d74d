package entity

import "regexp"

// PhoneFormatHint is shown next to every phone input.
const PhoneFormatHint = "+7XXXXXXXXXX"

var phonePattern = regexp.MustCompile(`^\+7\d{10}$`)

// IsValidPhone reports whether phone is a Russian mobile number: "+7" followed by exactly ten digits.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
