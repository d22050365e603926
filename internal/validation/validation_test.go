package validation

import (
	"strings"
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"basic", "user@example.com", true},
		{"subdomain", "user@mail.example.com", true},
		{"short_tld", "a@b.co", true},
		{"empty", "", false},
		{"no_at", "user.example.com", false},
		{"double_at", "user@@example.com", false},
		{"at_first", "@example.com", false},
		{"at_last", "user@", false},
		{"dot_leading_domain", "user@.com", false},
		{"dot_trailing_domain", "user@example.", false},
		{"no_dot_in_domain", "user@example", false},
		{"leading_dot_with_inner_dot", "user@.example.com", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsValidEmail(test.email); got != test.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", test.email, got, test.want)
			}
		})
	}
}

func TestValidateNewUser_Sanitizes(t *testing.T) {
	user, errs := ValidateNewUser("  Ada  ", "ADA@EXAMPLE.COM")
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}

	if user.Name != "Ada" {
		t.Errorf("expected name %q, got %q", "Ada", user.Name)
	}

	if user.Email != "ada@example.com" {
		t.Errorf("expected email %q, got %q", "ada@example.com", user.Email)
	}
}

func TestValidateNewUser_FieldErrors(t *testing.T) {
	longName := strings.Repeat("a", 101)

	tests := []struct {
		name        string
		inputName   string
		inputEmail  string
		wantFields  []string
		wantMessage string
	}{
		{"empty_name", "", "ada@example.com", []string{"name"}, "must contain at least one character"},
		{"whitespace_name", "   ", "ada@example.com", []string{"name"}, "must contain at least one character"},
		{"name_too_long", longName, "ada@example.com", []string{"name"}, "must be 100 characters or fewer"},
		{"empty_email", "Ada", "  ", []string{"email"}, "must contain at least one character"},
		{"bad_email", "Ada", "not-an-email", []string{"email"}, "invalid email format"},
		{"both_invalid", "", "nope", []string{"name", "email"}, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, errs := ValidateNewUser(test.inputName, test.inputEmail)
			if errs == nil {
				t.Fatal("expected validation errors, got nil")
			}

			if len(errs.Fields) != len(test.wantFields) {
				t.Fatalf("expected %d errors, got %d: %v", len(test.wantFields), len(errs.Fields), errs)
			}

			for i, field := range test.wantFields {
				if errs.Fields[i].Field != field {
					t.Errorf("error %d: expected field %q, got %q", i, field, errs.Fields[i].Field)
				}
			}

			if test.wantMessage != "" && errs.Fields[0].Message != test.wantMessage {
				t.Errorf("expected message %q, got %q", test.wantMessage, errs.Fields[0].Message)
			}
		})
	}
}

func TestValidateNewUser_AccumulatesBothFields(t *testing.T) {
	_, errs := ValidateNewUser("   ", "user@@example.com")
	if errs == nil {
		t.Fatal("expected validation errors, got nil")
	}

	fields := make(map[string]bool)
	for _, fe := range errs.Fields {
		fields[fe.Field] = true
	}

	if !fields["name"] || !fields["email"] {
		t.Errorf("expected errors for both name and email, got %v", errs.Fields)
	}
}

func TestValidateUserChanges_NoFields(t *testing.T) {
	whitespace := "   "

	tests := []struct {
		name  string
		nameP *string
		email *string
	}{
		{"both_nil", nil, nil},
		{"whitespace_only", &whitespace, &whitespace},
		{"one_nil_one_whitespace", nil, &whitespace},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, errs := ValidateUserChanges(test.nameP, test.email)
			if errs == nil {
				t.Fatal("expected validation errors, got nil")
			}

			if len(errs.Fields) != 1 || errs.Fields[0].Field != "general" {
				t.Fatalf("expected single general error, got %v", errs.Fields)
			}

			if errs.Fields[0].Message != "must provide at least one field to update" {
				t.Errorf("unexpected message: %q", errs.Fields[0].Message)
			}
		})
	}
}

func TestValidateUserChanges_PartialFields(t *testing.T) {
	name := "  Grace  "
	email := "  GRACE@EXAMPLE.COM "

	changes, errs := ValidateUserChanges(&name, nil)
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if changes.Name == nil || *changes.Name != "Grace" {
		t.Errorf("expected trimmed name, got %v", changes.Name)
	}
	if changes.Email != nil {
		t.Errorf("expected nil email, got %v", *changes.Email)
	}

	changes, errs = ValidateUserChanges(nil, &email)
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if changes.Name != nil {
		t.Errorf("expected nil name, got %v", *changes.Name)
	}
	if changes.Email == nil || *changes.Email != "grace@example.com" {
		t.Errorf("expected sanitized email, got %v", changes.Email)
	}
}

func TestValidateUserChanges_InvalidFields(t *testing.T) {
	longName := strings.Repeat("x", 101)
	badEmail := "grace@"

	_, errs := ValidateUserChanges(&longName, &badEmail)
	if errs == nil {
		t.Fatal("expected validation errors, got nil")
	}

	if len(errs.Fields) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs.Fields)
	}

	if errs.Fields[0].Field != "name" || errs.Fields[0].Message != "must be 100 characters or fewer" {
		t.Errorf("unexpected name error: %+v", errs.Fields[0])
	}

	if errs.Fields[1].Field != "email" || errs.Fields[1].Message != "invalid email format" {
		t.Errorf("unexpected email error: %+v", errs.Fields[1])
	}
}

func TestValidateUserChanges_WhitespaceFieldIgnoredNextToValidField(t *testing.T) {
	whitespace := "  "
	email := "new@example.com"

	changes, errs := ValidateUserChanges(&whitespace, &email)
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}

	if changes.Name != nil {
		t.Errorf("expected whitespace-only name to count as absent, got %q", *changes.Name)
	}

	if changes.Email == nil || *changes.Email != "new@example.com" {
		t.Errorf("expected email to be set, got %v", changes.Email)
	}
}

func TestErrors_Error(t *testing.T) {
	errs := &Errors{}
	errs.add("name", "must contain at least one character")
	errs.add("email", "invalid email format")

	want := "name: must contain at least one character; email: invalid email format"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}
}
