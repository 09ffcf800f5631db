package prompt

import (
	"os"

	"go.trai.ch/libpack/internal/core/domain"
	"golang.org/x/term"
)

// DetectMode resolves the configured mode against the current process environment.
func DetectMode(configured domain.PromptMode) domain.PromptMode {
	return ResolveMode(configured, term.IsTerminal(int(os.Stdin.Fd())), os.Getenv("CI"))
}

// ResolveMode applies auto-detection to the configured mode. Auto prompts only on a
// terminal outside CI; explicit modes are kept as they are.
func ResolveMode(configured domain.PromptMode, isTTY bool, ci string) domain.PromptMode {
	if configured != domain.PromptAuto && configured != "" {
		return configured
	}

	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return domain.PromptOff
	}
	return domain.PromptInteractive
}
