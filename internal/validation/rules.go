// Package validation holds the pure field rules applied to a staff record
// before it is submitted. The result is a field-error map; an empty map
// means the record is submittable.
package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/staff-service/internal/domain"
)

// Validation messages rendered inline by the UI and echoed in API 400s.
const (
	MsgNameRequired  = "name is required"
	MsgEmailRequired = "Email is required"
	MsgEmailFormat   = "Invalid email format"
	MsgPhoneRequired = "Phone number is required"
	MsgPhoneFormat   = "Invalid phone number format"
)

// FieldErrors maps a field name to a human-readable message.
type FieldErrors map[string]string

// candidate carries the validate tags; domain structs stay tag-free.
type candidate struct {
	Name        string `validate:"required"`
	Email       string `validate:"required,staff_email"`
	PhoneNumber string `validate:"required,staff_phone"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("staff_email", func(fl validator.FieldLevel) bool {
		return emailOK(fl.Field().String())
	})
	_ = v.RegisterValidation("staff_phone", func(fl validator.FieldLevel) bool {
		return phoneOK(fl.Field().String())
	})
	return v
}

// ValidateStaff checks name, email and phone format. It is pure and never
// fails: rule violations come back as map entries, nothing else.
func ValidateStaff(s domain.Staff) FieldErrors {
	c := candidate{
		Name:        strings.TrimSpace(s.Name),
		Email:       strings.TrimSpace(s.Email),
		PhoneNumber: strings.TrimSpace(s.PhoneNumber),
	}

	errs := FieldErrors{}
	err := validate.Struct(c)
	if err == nil {
		return errs
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs
	}
	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "Name":
			errs["name"] = MsgNameRequired
		case "Email":
			if fe.ActualTag() == "required" {
				errs["email"] = MsgEmailRequired
			} else {
				errs["email"] = MsgEmailFormat
			}
		case "PhoneNumber":
			if fe.ActualTag() == "required" {
				errs["phoneNumber"] = MsgPhoneRequired
			} else {
				errs["phoneNumber"] = MsgPhoneFormat
			}
		}
	}
	return errs
}

// emailOK wants exactly one @, a non-empty local part, a domain with a
// dot and an alphabetic TLD segment, no consecutive dots and no dot
// touching the @.
func emailOK(s string) bool {
	if strings.Count(s, "@") != 1 {
		return false
	}
	at := strings.Index(s, "@")
	local, dom := s[:at], s[at+1:]
	if local == "" || dom == "" {
		return false
	}
	if strings.Contains(s, "..") {
		return false
	}
	if strings.HasSuffix(local, ".") || strings.HasPrefix(dom, ".") {
		return false
	}
	dot := strings.LastIndex(dom, ".")
	if dot < 0 || dot == len(dom)-1 {
		return false
	}
	for _, r := range dom[dot+1:] {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// phonePattern allows an optional +<country code> with a single optional
// space after it, then digits. Letters, hyphens and parentheses never
// match.
var phonePattern = regexp.MustCompile(`^(\+\d{1,3} ?)?\d+$`)

func phoneOK(s string) bool {
	if !phonePattern.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 9 && digits <= 15
}
