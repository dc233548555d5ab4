// Package domain contains the value types shared by the title parameter engine and its adapters.
package domain

import "strings"

// MaxTitleBytes is the longest page text, in bytes, that a title may carry.
const MaxTitleBytes = 255

// Title is a resolved page reference.
// Titles are immutable once built; the parameter engine hands out *Title values
// and relies on pointer identity for cache stability.
type Title struct {
	namespace string
	text      string
	fragment  string
	name      CanonicalName
}

// NewTitle builds a Title from already normalised parts.
// It does no validation; use a ports.TitleParser to turn user text into a Title.
func NewTitle(namespace, text, fragment string) *Title {
	t := &Title{
		namespace: namespace,
		text:      text,
		fragment:  fragment,
	}
	t.name = NewCanonicalName(t.buildFullText())
	return t
}

// Namespace returns the namespace prefix, or "" for the main namespace.
func (t *Title) Namespace() string { return t.namespace }

// Text returns the page text without namespace or fragment.
func (t *Title) Text() string { return t.text }

// Fragment returns the section fragment, or "".
func (t *Title) Fragment() string { return t.fragment }

// PrefixedText returns "Namespace:Text", or just the text in the main namespace.
func (t *Title) PrefixedText() string {
	if t.namespace == "" {
		return t.text
	}
	return t.namespace + ":" + t.text
}

// FullText returns the canonical name of the title, including namespace and fragment.
func (t *Title) FullText() string {
	return t.name.String()
}

// Name returns the interned canonical name.
func (t *Title) Name() CanonicalName {
	return t.name
}

// Equal reports whether both titles have the same canonical name.
func (t *Title) Equal(other *Title) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.name == other.name
}

// String implements fmt.Stringer.
func (t *Title) String() string {
	return t.FullText()
}

func (t *Title) buildFullText() string {
	var b strings.Builder
	b.WriteString(t.PrefixedText())
	if t.fragment != "" {
		b.WriteByte('#')
		b.WriteString(t.fragment)
	}
	return b.String()
}
