package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestParse is returned when a library manifest is missing or malformed.
	ErrManifestParse = zerr.New("manifest parse failed")

	// ErrProcess is returned when a package manager or bundler subprocess exits non-zero.
	ErrProcess = zerr.New("process failed")

	// ErrIO is returned when the output folder is missing at bundle manifest write time.
	ErrIO = zerr.New("output folder unavailable")

	// ErrNoLibrariesSelected is returned when a build is requested without any library.
	ErrNoLibrariesSelected = zerr.New("no libraries selected")

	// ErrLibraryNotFound is returned when a requested library is not in the catalog.
	ErrLibraryNotFound = zerr.New("library not found")

	// ErrLibraryExists is returned when scaffolding a library version that already exists.
	ErrLibraryExists = zerr.New("library already exists")

	// ErrInvalidReference is returned when a library reference is not of the form name@version.
	ErrInvalidReference = zerr.New("invalid library reference")

	// ErrPromptAborted is returned when the user closes the interactive selection.
	ErrPromptAborted = zerr.New("prompt aborted")

	// ErrPromptUnavailable is returned when the interactive selection cannot be rendered.
	ErrPromptUnavailable = zerr.New("prompt unavailable")

	// ErrTasksFailed is returned in strict mode when at least one build task failed.
	ErrTasksFailed = zerr.New("one or more build tasks failed")

	// ErrInvalidConfig is returned when the workspace configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")
)
