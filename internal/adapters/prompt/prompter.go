// Package prompt implements the interactive library picker.
package prompt

import (
	"context"
	"errors"
	"io"
	"slices"

	"github.com/charmbracelet/huh"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Group is the picker section of one library name.
type Group struct {
	Name    string
	Options []huh.Option[string]
}

// Prompter implements ports.Prompter with a huh form.
type Prompter struct {
	mode domain.PromptMode
	in   io.Reader
	out  io.Writer
}

// New creates a Prompter rendering to out and reading keys from in.
func New(mode domain.PromptMode, in io.Reader, out io.Writer) *Prompter {
	return &Prompter{mode: mode, in: in, out: out}
}

// Select shows one multi-select per library name and returns the chosen folders
// in catalog order.
func (p *Prompter) Select(ctx context.Context, entries []domain.SelectionEntry) ([]string, error) {
	if p.mode == domain.PromptOff {
		return nil, errors.Join(domain.ErrPromptUnavailable, zerr.New("interactive selection is disabled"))
	}

	groups := Groups(entries)
	if len(groups) == 0 {
		return nil, nil
	}

	selections := make([][]string, len(groups))
	fields := make([]huh.Field, len(groups))
	for i, g := range groups {
		fields[i] = huh.NewMultiSelect[string]().
			Title(g.Name).
			Options(g.Options...).
			Value(&selections[i])
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(huh.ThemeCharm()).
		WithInput(p.in).
		WithOutput(p.out).
		WithAccessible(p.mode == domain.PromptAccessible)

	if err := form.RunWithContext(ctx); err != nil {
		switch {
		case errors.Is(err, huh.ErrUserAborted):
			return nil, errors.Join(domain.ErrPromptAborted, err)
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			return nil, errors.Join(domain.ErrPromptUnavailable, zerr.Wrap(err, "library picker failed"))
		}
	}

	return slices.Concat(selections...), nil
}

// Groups folds the flat selection rows into one group per disabled header row.
// Version rows seen before any header are collected under an unnamed group.
func Groups(entries []domain.SelectionEntry) []Group {
	var groups []Group
	for _, e := range entries {
		if e.Disabled {
			groups = append(groups, Group{Name: e.Label})
			continue
		}
		if len(groups) == 0 {
			groups = append(groups, Group{})
		}
		last := &groups[len(groups)-1]
		last.Options = append(last.Options, huh.NewOption(e.Label, e.Value))
	}

	return slices.DeleteFunc(groups, func(g Group) bool { return len(g.Options) == 0 })
}
