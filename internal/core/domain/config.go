package domain

import "path/filepath"

// Config is the resolved workspace configuration.
// Directory fields are absolute once loaded.
type Config struct {
	Root               string
	SourceDir          string
	DistDir            string
	StateDir           string
	ManifestFile       string
	BundleManifestFile string
	EntryFile          string
	OutputFile         string
	StylesheetFile     string
	PostbuildScript    string
	PackageManager     string
	Bundler            []string
	// BundlerConfig is the bundler configuration file. Empty selects the built-in one.
	BundlerConfig      string
	Postbuild          []string
	Strict             bool
	LogLevel           LogLevel
	Prompt             PromptMode
}

// PromptMode controls whether build may fall back to the interactive picker.
type PromptMode string

const (
	// PromptAuto prompts only when stdin is a terminal outside CI.
	PromptAuto PromptMode = "auto"
	// PromptInteractive always uses the full-screen picker.
	PromptInteractive PromptMode = "interactive"
	// PromptAccessible uses the line-based picker for screen readers and pipes.
	PromptAccessible PromptMode = "accessible"
	// PromptOff never prompts.
	PromptOff PromptMode = "off"
)

// ParsePromptMode parses a prompt mode name, treating the empty string as auto.
func ParsePromptMode(s string) (PromptMode, bool) {
	switch mode := PromptMode(s); mode {
	case "":
		return PromptAuto, true
	case PromptAuto, PromptInteractive, PromptAccessible, PromptOff:
		return mode, true
	default:
		return "", false
	}
}

// OutputFolder returns the dist folder of a library version.
func (c *Config) OutputFolder(name, version string) string {
	return filepath.Join(c.DistDir, name, version)
}

// LibraryFolder returns the source folder of a library version.
func (c *Config) LibraryFolder(name, version string) string {
	return filepath.Join(c.SourceDir, name, version)
}
