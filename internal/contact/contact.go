// Package contact validates the portfolio's contact form. Submissions never
// leave the process: a valid form only flips a transient confirmation flag.
package contact

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// Field names a contact form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// MinMessageLength is the shortest accepted message, counted after trimming
// in UTF-16 code units the way browsers measure string length.
const MinMessageLength = 10

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ParseField maps an input name onto a Field.
func ParseField(s string) (Field, bool) {
	switch Field(s) {
	case FieldName, FieldEmail, FieldMessage:
		return Field(s), true
	}
	return "", false
}

// Form carries the raw field values.
type Form struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

func (f *Form) set(field Field, value string) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldMessage:
		f.Message = value
	}
}

// Errors maps a field to its validation message.
type Errors map[Field]string

// Result is the outcome of a submission.
type Result struct {
	OK     bool
	Errors Errors
}

// Validate checks the form field by field.
func Validate(f Form) Result {
	errs := Errors{}

	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = "Name is required"
	}

	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		errs[FieldEmail] = "Email is required"
	case !emailPattern.MatchString(f.Email):
		errs[FieldEmail] = "Please enter a valid email"
	}

	message := strings.TrimSpace(f.Message)
	switch {
	case message == "":
		errs[FieldMessage] = "Message is required"
	case len(utf16.Encode([]rune(message))) < MinMessageLength:
		errs[FieldMessage] = "Message must be at least 10 characters"
	}

	return Result{OK: len(errs) == 0, Errors: errs}
}
