// Package definition implements the type independent half of a parameter definition:
// naming, defaults, list handling and allowed-value restriction.
// Typed parameters embed behaviour by holding a *Definition and delegating to it.
package definition

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/titleparam/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultDelimiter separates the items of a list parameter when no delimiter is configured.
const DefaultDelimiter = ","

// Option keys understood by ApplyConfig.
const (
	KeyName      = "name"
	KeyAliases   = "aliases"
	KeyDefault   = "default"
	KeyValues    = "values"
	KeyIsList    = "islist"
	KeyDelimiter = "delimiter"
	KeyTrim      = "trim"
	KeyToLower   = "tolower"
	KeyMessage   = "message"
)

// Definition holds the generic settings of a parameter.
type Definition struct {
	name       string
	aliases    []string
	message    string
	defaults   []string
	hasDefault bool
	allowed    []string
	isList     bool
	delimiter  string
	trim       bool
	toLower    bool
}

// New creates a Definition named name with trimming enabled.
func New(name string) *Definition {
	return &Definition{
		name:      name,
		delimiter: DefaultDelimiter,
		trim:      true,
	}
}

// Name returns the parameter name.
func (d *Definition) Name() string { return d.name }

// Aliases returns the alternative names of the parameter.
func (d *Definition) Aliases() []string { return slices.Clone(d.aliases) }

// Message returns the human readable description of the parameter.
func (d *Definition) Message() string { return d.message }

// IsList reports whether the parameter takes a delimited list of values.
func (d *Definition) IsList() bool { return d.isList }

// Delimiter returns the list delimiter.
func (d *Definition) Delimiter() string { return d.delimiter }

// AllowedValues returns the allowed values, or nil when any value is allowed.
func (d *Definition) AllowedValues() []string { return slices.Clone(d.allowed) }

// Default returns the default values and whether a default is configured.
func (d *Definition) Default() ([]string, bool) {
	return slices.Clone(d.defaults), d.hasDefault
}

// Matches reports whether key names this parameter, either by name or by alias.
// Matching is case-insensitive.
func (d *Definition) Matches(key string) bool {
	if strings.EqualFold(key, d.name) {
		return true
	}
	return slices.ContainsFunc(d.aliases, func(a string) bool {
		return strings.EqualFold(key, a)
	})
}

// ApplyConfig sets the generic options found in opts.
// Keys it does not know are ignored so typed parameters can share the map.
func (d *Definition) ApplyConfig(opts map[string]any) error {
	if v, ok := opts[KeyName]; ok {
		s, err := asString(KeyName, v)
		if err != nil {
			return err
		}
		d.name = s
	}

	if v, ok := opts[KeyAliases]; ok {
		list, err := asStrings(KeyAliases, v)
		if err != nil {
			return err
		}
		d.aliases = list
	}

	if v, ok := opts[KeyMessage]; ok {
		s, err := asString(KeyMessage, v)
		if err != nil {
			return err
		}
		d.message = s
	}

	if v, ok := opts[KeyIsList]; ok {
		b, err := asBool(KeyIsList, v)
		if err != nil {
			return err
		}
		d.isList = b
	}

	if v, ok := opts[KeyDelimiter]; ok {
		s, err := asString(KeyDelimiter, v)
		if err != nil {
			return err
		}
		if s == "" {
			return zerr.With(zerr.Wrap(domain.ErrInvalidOption, "delimiter must not be empty"), "key", KeyDelimiter)
		}
		d.delimiter = s
	}

	if v, ok := opts[KeyTrim]; ok {
		b, err := asBool(KeyTrim, v)
		if err != nil {
			return err
		}
		d.trim = b
	}

	if v, ok := opts[KeyToLower]; ok {
		b, err := asBool(KeyToLower, v)
		if err != nil {
			return err
		}
		d.toLower = b
	}

	if v, ok := opts[KeyValues]; ok {
		list, err := asStrings(KeyValues, v)
		if err != nil {
			return err
		}
		d.allowed = list
	}

	// Defaults last so they see the final list settings.
	if v, ok := opts[KeyDefault]; ok {
		list, err := asStrings(KeyDefault, v)
		if err != nil {
			return err
		}
		d.defaults = list
		d.hasDefault = true
	}

	return nil
}

// Split turns a raw argument into the values to validate.
// List parameters are split on the delimiter; every value is cleaned.
func (d *Definition) Split(raw string) []string {
	if !d.isList {
		return []string{d.Clean(raw)}
	}
	parts := strings.Split(raw, d.delimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, d.Clean(p))
	}
	return out
}

// Clean applies the trim and tolower settings to a single value.
func (d *Definition) Clean(value string) string {
	if d.trim {
		value = strings.TrimSpace(value)
	}
	if d.toLower {
		value = strings.ToLower(value)
	}
	return value
}

// Validate runs the generic checks on the plain text form of a value.
// Only the allowed-value restriction can reject a string here; type specific
// checks belong to the typed parameter.
func (d *Definition) Validate(plain string) bool {
	if len(d.allowed) == 0 {
		return true
	}
	if d.toLower {
		plain = strings.ToLower(plain)
	}
	return slices.Contains(d.allowed, plain)
}

func invalidOption(key string, v any) error {
	err := zerr.Wrap(domain.ErrInvalidOption, "unexpected option type")
	err = zerr.With(err, "key", key)
	return zerr.With(err, "got", fmt.Sprintf("%T", v))
}

func asString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", invalidOption(key, v)
	}
	return s, nil
}

func asBool(key string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, invalidOption(key, v)
	}
	return b, nil
}

// asStrings accepts a single string or a list of strings.
func asStrings(key string, v any) ([]string, error) {
	switch t := v.(type) {
	case string:
		return []string{t}, nil
	case []string:
		return slices.Clone(t), nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, invalidOption(key, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, invalidOption(key, v)
	}
}
