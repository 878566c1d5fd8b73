package validation

import (
	"strings"
	"unicode"
)

// SpecialChars is the accepted special-character set for passwords.
const SpecialChars = `!@#$%^&*()_+-=[]{};:'",.<>/?\|~`

// PasswordChecklist is the live password-strength indicator: four
// independent predicates, all of which must hold for acceptance. It feeds
// the as-you-type checklist UI and the submission gate alike.
type PasswordChecklist struct {
	MinLength bool `json:"min_length"`
	Uppercase bool `json:"uppercase"`
	TwoDigits bool `json:"two_digits"`
	Special   bool `json:"special"`
}

func (c PasswordChecklist) Passes() bool {
	return c.MinLength && c.Uppercase && c.TwoDigits && c.Special
}

// CheckPassword evaluates the complexity policy over pw.
func CheckPassword(pw string) PasswordChecklist {
	var digits int
	var c PasswordChecklist
	c.MinLength = len(pw) >= 8
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			c.Uppercase = true
		case unicode.IsDigit(r):
			digits++
		case strings.ContainsRune(SpecialChars, r):
			c.Special = true
		}
	}
	c.TwoDigits = digits >= 2
	return c
}
