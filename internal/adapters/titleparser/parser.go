// Package titleparser turns user supplied text into normalised page titles.
package titleparser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.trai.ch/titleparam/internal/core/domain"
	"go.trai.ch/titleparam/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/unicode/norm"
)

// DefaultNamespaces are recognised when no namespaces are configured.
var DefaultNamespaces = []string{
	"Talk",
	"User",
	"User talk",
	"Project",
	"File",
	"MediaWiki",
	"Template",
	"Help",
	"Category",
}

const illegalChars = "<>[]{}|"

var _ ports.TitleParser = (*Parser)(nil)

// Parser implements ports.TitleParser.
type Parser struct {
	// namespaces maps the lowercased prefix to its canonical spelling.
	namespaces       map[string]string
	firstLetterUpper bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithNamespaces replaces the recognised namespace prefixes.
func WithNamespaces(namespaces ...string) Option {
	return func(p *Parser) {
		p.namespaces = make(map[string]string, len(namespaces))
		for _, ns := range namespaces {
			canonical := upperFirst(collapse(ns))
			if canonical == "" {
				continue
			}
			p.namespaces[strings.ToLower(canonical)] = canonical
		}
	}
}

// WithFirstLetterUpper controls whether the first letter of the page text is capitalised.
func WithFirstLetterUpper(enabled bool) Option {
	return func(p *Parser) {
		p.firstLetterUpper = enabled
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{firstLetterUpper: true}
	WithNamespaces(DefaultNamespaces...)(p)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse implements ports.TitleParser.
func (p *Parser) Parse(text string) (*domain.Title, error) {
	s := norm.NFC.String(text)

	var fragment string
	if i := strings.IndexByte(s, '#'); i >= 0 {
		fragment = collapse(s[i+1:])
		s = s[:i]
	}

	s = collapse(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, ":"))

	namespace, rest := p.splitNamespace(s)
	if rest == "" {
		return nil, parseError(domain.ErrEmptyTitle, text)
	}
	if strings.HasPrefix(rest, ":") {
		return nil, parseError(domain.ErrLeadingColon, text)
	}
	if err := checkText(rest); err != nil {
		return nil, parseError(err, text)
	}
	if strings.ContainsFunc(fragment, isIllegal) {
		return nil, parseError(domain.ErrIllegalCharacters, text)
	}

	if p.firstLetterUpper {
		rest = upperFirst(rest)
	}
	// Capitalisation can grow the text, so the limit applies to the final form.
	if len(rest) > domain.MaxTitleBytes {
		return nil, parseError(domain.ErrTitleTooLong, text)
	}
	return domain.NewTitle(namespace, rest, fragment), nil
}

func (p *Parser) splitNamespace(s string) (string, string) {
	i := strings.IndexByte(s, ':')
	if i <= 0 {
		return "", s
	}
	prefix := strings.ToLower(strings.TrimSpace(s[:i]))
	canonical, ok := p.namespaces[prefix]
	if !ok {
		return "", s
	}
	return canonical, strings.TrimSpace(s[i+1:])
}

func checkText(s string) error {
	if strings.ContainsFunc(s, isIllegal) {
		return domain.ErrIllegalCharacters
	}
	if isRelative(s) {
		return domain.ErrRelativeTitle
	}
	return nil
}

func isIllegal(r rune) bool {
	return strings.ContainsRune(illegalChars, r) || unicode.IsControl(r) || r == utf8.RuneError
}

func isRelative(s string) bool {
	if s == "." || s == ".." {
		return true
	}
	return strings.HasPrefix(s, "./") ||
		strings.HasPrefix(s, "../") ||
		strings.Contains(s, "/./") ||
		strings.Contains(s, "/../") ||
		strings.HasSuffix(s, "/.") ||
		strings.HasSuffix(s, "/..")
}

// collapse turns underscores into spaces, squeezes whitespace runs and trims.
func collapse(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}

func parseError(err error, text string) error {
	return zerr.With(zerr.Wrap(err, "failed to parse title"), "text", text)
}
