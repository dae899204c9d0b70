package contact

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// MinPhoneLength is the minimum number of characters accepted for a phone number.
const MinPhoneLength = 10

// emailPattern accepts local@domain.tld with no whitespace and a single @.
// RE2's \s is ASCII only, so vertical tab, Unicode separators and the BOM
// are excluded explicitly.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// Contact is a stored contact record
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Input is the client-supplied part of a contact
type Input struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message,omitempty"`
}

// Field identifies an input field in validation errors
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldMessage Field = "message"
)

// ValidEmail reports whether s has the local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Validate checks the input against the rules shared by the API and the UI.
// Missing required fields are reported before format problems, so a request
// lacking a phone fails with ErrRequired even if its email is also malformed.
func (in Input) Validate() error {
	if errs := in.FieldErrors(); len(errs) > 0 {
		return firstError(errs)
	}
	return nil
}

// FieldErrors returns every failing field with its user-facing message.
// An empty map means the input is valid.
func (in Input) FieldErrors() map[Field]*ValidationError {
	errs := make(map[Field]*ValidationError)

	if strings.TrimSpace(in.Name) == "" {
		errs[FieldName] = &ValidationError{Field: FieldName, Reason: "Name is required", Err: ErrRequired}
	}

	switch {
	case strings.TrimSpace(in.Email) == "":
		errs[FieldEmail] = &ValidationError{Field: FieldEmail, Reason: "Email is required", Err: ErrRequired}
	case !ValidEmail(in.Email):
		errs[FieldEmail] = &ValidationError{Field: FieldEmail, Reason: "Invalid email format", Err: ErrInvalidEmail}
	}

	switch {
	case strings.TrimSpace(in.Phone) == "":
		errs[FieldPhone] = &ValidationError{Field: FieldPhone, Reason: "Phone is required", Err: ErrRequired}
	case utf8.RuneCountInString(in.Phone) < MinPhoneLength:
		errs[FieldPhone] = &ValidationError{Field: FieldPhone, Reason: "Phone must be at least 10 digits", Err: ErrPhoneTooShort}
	}

	return errs
}

// firstError picks the error to surface for a whole request: any missing
// field wins, then email format, then phone length.
func firstError(errs map[Field]*ValidationError) error {
	for _, f := range []Field{FieldName, FieldEmail, FieldPhone} {
		if e, ok := errs[f]; ok && e.Err == ErrRequired {
			return e
		}
	}
	for _, f := range []Field{FieldEmail, FieldPhone} {
		if e, ok := errs[f]; ok {
			return e
		}
	}
	return nil
}

// New builds an unsaved contact from validated input.
func New(in Input) *Contact {
	return &Contact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}
}
