// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/titleparam/internal/core/domain"

// TitleParser turns user supplied text into a normalised title.
//
//go:generate go run go.uber.org/mock/mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type TitleParser interface {
	// Parse returns the title named by text.
	// It must be deterministic: the same text always yields a title with the same canonical name.
	// It returns an error when no title can be built from text (empty, illegal characters, ...).
	Parse(text string) (*domain.Title, error)
}
