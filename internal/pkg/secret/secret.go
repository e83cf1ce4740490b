// Package secret provides a string wrapper whose contents stay out of logs,
// debug output and serialized data unless explicitly exposed.
package secret

import "gopkg.in/yaml.v3"

// Redacted is what every formatting and encoding path renders instead of the
// wrapped value.
const Redacted = "[REDACTED]"

// String holds a sensitive value such as an API token.
//
// The value sits behind a pointer so that reflection-based printing of a
// struct holding a String in an unexported field (where fmt cannot call
// String methods) shows an address instead of the contents.
type String struct {
	v *value
}

type value struct{ raw string }

// New wraps raw.
func New(raw string) String { return String{v: &value{raw: raw}} }

// Expose returns the raw value. Call it only at the point of use.
func (s String) Expose() string {
	if s.v == nil {
		return ""
	}
	return s.v.raw
}

// IsZero reports whether no value is held.
func (s String) IsZero() bool { return s.Expose() == "" }

func (s String) String() string   { return Redacted }
func (s String) GoString() string { return "secret.String(" + Redacted + ")" }

func (s String) MarshalJSON() ([]byte, error)     { return []byte(`"` + Redacted + `"`), nil }
func (s String) MarshalText() ([]byte, error)     { return []byte(Redacted), nil }
func (s String) MarshalYAML() (interface{}, error) { return Redacted, nil }

// UnmarshalYAML lets configuration files populate a String directly.
func (s *String) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	s.v = &value{raw: raw}
	return nil
}
