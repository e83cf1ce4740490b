package domain

import "github.com/go-playground/validator/v10"

// validate is safe for concurrent use and caches rule parsing.
var validate = validator.New()

// SubscriberEmail is an email address that passed syntax validation.
// The zero value is not a valid address; use ParseSubscriberEmail.
type SubscriberEmail struct {
	value string
}

// ParseSubscriberEmail validates raw against the standard email grammar and
// wraps it verbatim. No trimming or case folding is applied. The domain must
// be a dotted hostname, so "user@localhost" and IP literals are rejected.
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	if err := validate.Var(raw, "required,email"); err != nil {
		return SubscriberEmail{}, &ValidationError{Field: "email", Value: raw, kind: ErrInvalidSubscriberEmail}
	}
	return SubscriberEmail{value: raw}, nil
}

// MustParseSubscriberEmail is like ParseSubscriberEmail but panics on invalid
// input. Intended for constants and tests.
func MustParseSubscriberEmail(raw string) SubscriberEmail {
	email, err := ParseSubscriberEmail(raw)
	if err != nil {
		panic(err)
	}
	return email
}

// String returns the address exactly as it was parsed.
func (e SubscriberEmail) String() string { return e.value }
