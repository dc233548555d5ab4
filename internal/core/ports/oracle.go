package ports

import (
	"context"

	"go.trai.ch/titleparam/internal/core/domain"
)

// PageOracle answers whether a title names an existing page.
//
//go:generate go run go.uber.org/mock/mockgen -source=oracle.go -destination=mocks/mock_oracle.go -package=mocks
type PageOracle interface {
	// Exists reports whether the page behind title exists.
	// Only the prefixed text of the title matters; fragments are ignored.
	Exists(ctx context.Context, title *domain.Title) (bool, error)
}
