// Package titleparam implements the title parameter type: validation and
// formatting of values that name pages, with an existence requirement and a
// per-parameter resolution cache.
package titleparam

import (
	"context"
	"errors"

	"go.trai.ch/titleparam/internal/core/domain"
	"go.trai.ch/titleparam/internal/core/ports"
	"go.trai.ch/titleparam/internal/engine/definition"
	"go.trai.ch/zerr"
)

// Option keys understood by TitleParam.ApplyConfig in addition to the generic ones.
const (
	KeyMustExist = "mustExist"
	// KeyHasToExist is the legacy spelling of KeyMustExist.
	KeyHasToExist = "hastoexist"
)

// TitleParam validates and formats a parameter whose values are page titles.
//
// It is meant to be driven as validate-then-format: Validate accepts or
// rejects a value, Format turns an accepted value into a *domain.Title.
// A TitleParam is not safe for concurrent use unless it was built with a
// concurrent Cache such as ShardedCache.
type TitleParam struct {
	base      *definition.Definition
	parser    ports.TitleParser
	oracle    ports.PageOracle
	logger    ports.Logger
	cache     Cache
	mustExist bool
}

// Option configures a TitleParam.
type Option func(*TitleParam)

// WithCache replaces the default MapCache.
func WithCache(c Cache) Option {
	return func(p *TitleParam) {
		p.cache = c
	}
}

// WithLogger sets the logger used to report oracle failures.
func WithLogger(l ports.Logger) Option {
	return func(p *TitleParam) {
		p.logger = l
	}
}

// New creates a TitleParam on top of base. Titles are required to exist until
// ApplyConfig says otherwise.
func New(base *definition.Definition, parser ports.TitleParser, oracle ports.PageOracle, opts ...Option) *TitleParam {
	p := &TitleParam{
		base:      base,
		parser:    parser,
		oracle:    oracle,
		mustExist: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.cache == nil {
		p.cache = NewMapCache()
	}
	return p
}

// Name returns the parameter name.
func (p *TitleParam) Name() string { return p.base.Name() }

// Definition returns the generic definition the parameter delegates to.
func (p *TitleParam) Definition() *definition.Definition { return p.base }

// MustExist reports whether validation requires titles to exist.
func (p *TitleParam) MustExist() bool { return p.mustExist }

// SetMustExist sets the existence requirement.
func (p *TitleParam) SetMustExist(v bool) { p.mustExist = v }

// Cache returns the resolution cache.
func (p *TitleParam) Cache() Cache { return p.cache }

// ApplyConfig hands opts to the generic definition and then picks up the
// existence requirement. A missing key leaves the current setting alone.
func (p *TitleParam) ApplyConfig(opts map[string]any) error {
	if err := p.base.ApplyConfig(opts); err != nil {
		return err
	}

	for _, key := range []string{KeyHasToExist, KeyMustExist} {
		v, ok := opts[key]
		if !ok {
			continue
		}
		b, ok := v.(bool)
		if !ok {
			err := zerr.Wrap(domain.ErrInvalidOption, "existence requirement must be a boolean")
			return zerr.With(err, "key", key)
		}
		p.mustExist = b
	}

	return nil
}

// Validate reports whether v is an acceptable value for the parameter.
//
// In ModeStringly the plain text of v is parsed into a title; in ModeNative v
// must already hold one. When the existence requirement is on, the title must
// also exist according to the oracle. Titles parsed from text are cached only
// once they pass every check. Validate never returns an error: failures of
// any kind yield false.
func (p *TitleParam) Validate(ctx context.Context, v domain.Value, mode domain.Mode) bool {
	if v.Kind() == domain.KindInvalid {
		return false
	}

	plain := v.PlainText()
	if !p.base.Validate(plain) {
		return false
	}

	var title *domain.Title
	switch mode {
	case domain.ModeStringly:
		parsed, err := p.parser.Parse(plain)
		if err != nil {
			return false
		}
		title = parsed
	case domain.ModeNative:
		resolved, ok := v.Title()
		if !ok {
			return false
		}
		title = resolved
	default:
		return false
	}

	if p.mustExist && !p.exists(ctx, title) {
		return false
	}

	if mode == domain.ModeStringly {
		p.cache.Store(plain, title)
	}
	return true
}

// Format returns the title for a value that passed Validate.
//
// Resolved values are returned unchanged. Raw values come from the cache
// when possible and are parsed (and cached) otherwise, so repeated calls for
// the same name return the same *domain.Title. Format does not check
// existence. An error means the value cannot name a title at all, which
// signals that Format was called without a matching Validate.
func (p *TitleParam) Format(v domain.Value) (*domain.Title, error) {
	switch v.Kind() {
	case domain.KindResolved:
		title, _ := v.Title()
		return title, nil
	case domain.KindRaw:
		raw, _ := v.RawText()
		if title, ok := p.cache.Lookup(raw); ok {
			return title, nil
		}
		parsed, err := p.parser.Parse(raw)
		if err != nil {
			wrapped := zerr.Wrap(domain.ErrUnresolvableValue, "failed to format title parameter")
			wrapped = zerr.With(wrapped, "param", p.Name())
			wrapped = zerr.With(wrapped, "value", raw)
			return nil, zerr.With(wrapped, "reason", err.Error())
		}
		return p.cache.Store(raw, parsed), nil
	default:
		wrapped := zerr.Wrap(domain.ErrUnresolvableValue, "unsupported value")
		return nil, zerr.With(wrapped, "param", p.Name())
	}
}

func (p *TitleParam) exists(ctx context.Context, title *domain.Title) bool {
	ok, err := p.oracle.Exists(ctx, title)
	if err != nil {
		// A cancelled lookup says nothing about the page.
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return false
		}
		if p.logger != nil {
			p.logger.Warn("page lookup failed", "param", p.Name(), "title", title.FullText(), "error", err)
		}
		return false
	}
	return ok
}
