package domain

// Mode tells validation how the caller supplied a value.
type Mode int

const (
	// ModeStringly means the value arrived as raw text and has to be parsed.
	ModeStringly Mode = iota
	// ModeNative means the value arrived as an already resolved title.
	ModeNative
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeStringly:
		return "stringly"
	case ModeNative:
		return "native"
	default:
		return "unknown"
	}
}

// ValueKind identifies which branch of a Value is set.
type ValueKind int

const (
	// KindInvalid is the zero Value.
	KindInvalid ValueKind = iota
	// KindRaw is a Value holding raw text.
	KindRaw
	// KindResolved is a Value holding a resolved *Title.
	KindResolved
)

// Value is the input of a title parameter: either raw text or an already resolved title.
// The zero Value is neither and never validates.
type Value struct {
	kind  ValueKind
	raw   string
	title *Title
}

// Raw wraps raw text.
func Raw(s string) Value {
	return Value{kind: KindRaw, raw: s}
}

// Resolved wraps a resolved title. A nil title yields the zero Value.
func Resolved(t *Title) Value {
	if t == nil {
		return Value{}
	}
	return Value{kind: KindResolved, title: t}
}

// Kind reports which branch is set.
func (v Value) Kind() ValueKind { return v.kind }

// RawText returns the raw text and whether the value is raw.
func (v Value) RawText() (string, bool) {
	return v.raw, v.kind == KindRaw
}

// Title returns the resolved title and whether the value is resolved.
func (v Value) Title() (*Title, bool) {
	return v.title, v.kind == KindResolved
}

// PlainText returns the canonical name for resolved values and the raw text otherwise.
func (v Value) PlainText() string {
	switch v.kind {
	case KindResolved:
		return v.title.FullText()
	case KindRaw:
		return v.raw
	default:
		return ""
	}
}
