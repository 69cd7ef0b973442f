package contact

import (
	"regexp"
	"strings"
	"unicode"
)

// Submission is one contact-form post. All fields are untrusted.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

const (
	msgFieldsRequired = "All fields are required"
	msgInvalidEmail   = "Invalid email format"
)

// ws matches what a browser's \s would: ASCII and Unicode whitespace plus BOM.
const ws = `\s\v\p{Z}\x{FEFF}`

var emailPattern = regexp.MustCompile(`^[^` + ws + `@]+@[^` + ws + `@]+\.[^` + ws + `@]+$`)

// Validate checks presence and shape of the submission fields.
// The first failing rule wins; it returns nil or a *ValidationError.
func Validate(s Submission) error {
	if blank(s.Name) || blank(s.Email) || blank(s.Message) {
		return &ValidationError{Message: msgFieldsRequired}
	}
	if !emailPattern.MatchString(s.Email) {
		return &ValidationError{Message: msgInvalidEmail}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimFunc(s, isSpace) == ""
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
