package ports

import (
	"context"

	"go.trai.ch/libpack/internal/core/domain"
)

// Prompter asks the user to pick libraries interactively.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Select shows the entries and returns the values of the selected rows.
	Select(ctx context.Context, entries []domain.SelectionEntry) ([]string, error)
}
