package domain

import "unique"

// CanonicalName is the interned canonical form of a title, used as a cache key.
// Two CanonicalNames compare equal exactly when their strings are equal.
type CanonicalName struct {
	h unique.Handle[string]
}

// NewCanonicalName interns s.
func NewCanonicalName(s string) CanonicalName {
	return CanonicalName{h: unique.Make(s)}
}

// String returns the underlying string value.
func (n CanonicalName) String() string {
	var zero unique.Handle[string]
	if n.h == zero {
		return ""
	}
	return n.h.Value()
}

// IsZero reports whether n was never assigned.
func (n CanonicalName) IsZero() bool {
	var zero unique.Handle[string]
	return n.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (n CanonicalName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *CanonicalName) UnmarshalText(text []byte) error {
	n.h = unique.Make(string(text))
	return nil
}
