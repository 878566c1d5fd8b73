package validation

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Errors is a field-keyed error map. An empty map means the draft is valid.
// Keys are the wire (json) field names so server-side validation errors can
// be merged into the same map.
type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

// First returns the first invalid field following the given deterministic
// field order, so callers can auto-focus it. Fields not listed in the order
// come last, in map order.
func (e Errors) First(order ...string) (string, string) {
	for _, f := range order {
		if msg, ok := e[f]; ok {
			return f, msg
		}
	}
	for f, msg := range e {
		return f, msg
	}
	return "", ""
}

// Merge overlays other onto e, keeping existing entries on key collisions.
func (e Errors) Merge(other Errors) {
	for f, msg := range other {
		if _, ok := e[f]; !ok {
			e[f] = msg
		}
	}
}

var (
	// local@domain.tld with a 2+ character TLD.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)
	// Regional mobile convention: 11 digits starting with 09.
	phoneRegex = regexp.MustCompile(`^09\d{9}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report errors under the json field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(v.RegisterValidation("email_addr", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("ph_mobile", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return IsPersonName(fl.Field().String())
	}))
	must(v.RegisterValidation("password_complex", func(fl validator.FieldLevel) bool {
		return CheckPassword(fl.Field().String()).Passes()
	}))
	return v
}

// IsPersonName restricts name fields to unicode letters, spaces, hyphens
// and apostrophes, starting with a letter.
func IsPersonName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) {
			continue
		}
		if i > 0 && (r == ' ' || r == '-' || r == '\'') {
			continue
		}
		return false
	}
	return true
}

// IsEmail reports whether s has the local@domain.tld shape.
func IsEmail(s string) bool { return emailRegex.MatchString(s) }

// IsMobile reports whether s follows the 11-digit 09-prefixed convention.
func IsMobile(s string) bool { return phoneRegex.MatchString(s) }

// Struct validates v and returns submission-blocking errors keyed by wire
// field name.
func Struct(v any) Errors {
	err := validate.Struct(v)
	if err == nil {
		return Errors{}
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"_": err.Error()}
	}
	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		if _, dup := out[fe.Field()]; dup {
			continue
		}
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email_addr":
		return "Enter a valid email address."
	case "ph_mobile":
		return "Phone number must be 11 digits starting with 09."
	case "person_name":
		return "Only letters, spaces, hyphens and apostrophes are allowed."
	case "password_complex":
		return "Password must be at least 8 characters with an uppercase letter, two digits and a special character."
	case "eqfield":
		return "Passwords do not match."
	case "min":
		return "Not enough items."
	case "gt", "gte", "gtefield":
		return "Value is out of range."
	default:
		return "Invalid value."
	}
}
