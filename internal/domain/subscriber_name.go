package domain

import (
	"strings"
	"unicode/utf8"
)

const maxSubscriberNameLength = 256

// forbiddenNameCharacters are rejected to keep names safe to echo in markup.
const forbiddenNameCharacters = `/()"<>\{}`

// SubscriberName is a display name that passed validation.
type SubscriberName struct {
	value string
}

// ParseSubscriberName rejects blank names, names longer than 256 characters
// and names containing any of / ( ) " < > \ { }.
func ParseSubscriberName(raw string) (SubscriberName, error) {
	isBlank := strings.TrimSpace(raw) == ""
	isTooLong := utf8.RuneCountInString(raw) > maxSubscriberNameLength
	hasForbidden := strings.ContainsAny(raw, forbiddenNameCharacters)

	if isBlank || isTooLong || hasForbidden {
		return SubscriberName{}, &ValidationError{Field: "name", Value: raw, kind: ErrInvalidSubscriberName}
	}
	return SubscriberName{value: raw}, nil
}

func (n SubscriberName) String() string { return n.value }
