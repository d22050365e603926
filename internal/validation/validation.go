// Package validation turns raw user payloads into sanitized domain values.
// All checks for a payload run in one pass so callers receive every field
// error at once, not just the first.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/userhub/userhub/internal/model"
)

// maxNameLength is the longest accepted user name, in characters.
const maxNameLength = 100

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string
	Message string
}

// Errors collects the field errors from one validation pass.
type Errors struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *Errors) Error() string {
	parts := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

func (e *Errors) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// ValidateNewUser sanitizes a create payload and checks every constraint.
// Name is trimmed; email is trimmed and lower-cased. On failure the returned
// Errors carries one entry per offending field.
func ValidateNewUser(name, email string) (model.NewUser, *Errors) {
	errs := &Errors{}

	name = strings.TrimSpace(name)
	switch {
	case name == "":
		errs.add("name", "must contain at least one character")
	case utf8.RuneCountInString(name) > maxNameLength:
		errs.add("name", "must be 100 characters or fewer")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	switch {
	case email == "":
		errs.add("email", "must contain at least one character")
	case !IsValidEmail(email):
		errs.add("email", "invalid email format")
	}

	if len(errs.Fields) > 0 {
		return model.NewUser{}, errs
	}

	return model.NewUser{Name: name, Email: email}, nil
}

// ValidateUserChanges sanitizes a partial-update payload. A field that is
// omitted, or whose value trims down to the empty string, counts as not
// provided; an update with no effective fields fails with a "general" error.
func ValidateUserChanges(name, email *string) (model.UserChanges, *Errors) {
	errs := &Errors{}
	var changes model.UserChanges

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed != "" {
			if utf8.RuneCountInString(trimmed) > maxNameLength {
				errs.add("name", "must be 100 characters or fewer")
			}
			changes.Name = &trimmed
		}
	}

	if email != nil {
		sanitized := strings.ToLower(strings.TrimSpace(*email))
		if sanitized != "" {
			if !IsValidEmail(sanitized) {
				errs.add("email", "invalid email format")
			}
			changes.Email = &sanitized
		}
	}

	if changes.Name == nil && changes.Email == nil {
		errs.add("general", "must provide at least one field to update")
	}

	if len(errs.Fields) > 0 {
		return model.UserChanges{}, errs
	}

	return changes, nil
}

// IsValidEmail reports whether s has a minimally plausible email shape:
// exactly one @ with a non-empty part on each side, and a domain whose last
// dot is neither its first nor last character. This is deliberately not RFC
// 5322; it accepts some addresses a full parser would reject.
func IsValidEmail(s string) bool {
	if s == "" {
		return false
	}

	if strings.Count(s, "@") != 1 {
		return false
	}

	at := strings.Index(s, "@")
	if at == 0 || at == len(s)-1 {
		return false
	}

	domain := s[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
