package ports

import "go.trai.ch/libpack/internal/core/domain"

// Catalog discovers the buildable libraries of the source tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type Catalog interface {
	// Libraries returns every library version that has a manifest, in directory listing order.
	Libraries() ([]domain.Library, error)

	// Selection returns the rows of the interactive picker.
	Selection() ([]domain.SelectionEntry, error)

	// Resolve maps name@version references or library folders to libraries.
	Resolve(refs []string) ([]domain.Library, error)

	// Scaffold creates the source folder of a new library version.
	Scaffold(pkg domain.Package) (domain.Library, error)
}
