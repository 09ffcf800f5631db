package ports

// Hasher defines the interface for computing content digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile returns the digest of a single file.
	HashFile(path string) (string, error)

	// HashTree returns a digest over every file below root together with the
	// sorted list of those files relative to root.
	HashTree(root string) (string, []string, error)
}
