package utils

import (
	"fmt"
	"strings"

	"kbs-store/models"
)

// NormalizePhone canonicalizes an Indian mobile number to "91XXXXXXXXXX".
// Accepted inputs are a bare 10-digit number starting 6-9, or the same
// number already carrying the "91" country code. Anything else fails with
// models.ErrInvalidPhone.
func NormalizePhone(phone string) (string, error) {
	digits := stripNonDigits(phone)

	if len(digits) == 10 && validMobile(digits) {
		return "91" + digits, nil
	}

	if len(digits) == 12 && strings.HasPrefix(digits, "91") && validMobile(digits[2:]) {
		return digits, nil
	}

	return "", fmt.Errorf("%w: %q", models.ErrInvalidPhone, phone)
}

// FormatPhoneForDisplay renders a canonical number as "+91 XXXXX XXXXX".
// Inputs it cannot interpret come back unchanged.
func FormatPhoneForDisplay(phone string) string {
	digits := stripNonDigits(phone)

	if len(digits) == 12 && strings.HasPrefix(digits, "91") {
		number := digits[2:]
		return fmt.Sprintf("+91 %s %s", number[:5], number[5:])
	}

	if len(digits) == 10 {
		return fmt.Sprintf("%s %s", digits[:5], digits[5:])
	}

	return phone
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func validMobile(number string) bool {
	if len(number) != 10 {
		return false
	}
	return number[0] >= '6' && number[0] <= '9'
}
