package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/libpack/internal/app"
	"go.trai.ch/libpack/internal/ui/style"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List libraries and their last build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.app(cmd.Context())
			if err != nil {
				return err
			}

			statuses, err := a.List(cmd.Context())
			if err != nil {
				return err
			}
			renderList(cmd.OutOrStdout(), statuses)
			return nil
		},
	}
}

func renderList(w io.Writer, statuses []app.LibraryStatus) {
	if len(statuses) == 0 {
		_, _ = fmt.Fprintln(w, style.Muted.Render("no libraries found"))
		return
	}

	var current string
	for _, s := range statuses {
		m := s.Library.Manifest
		if m.Name != current {
			current = m.Name
			_, _ = fmt.Fprintln(w, style.Name.Render(m.Name))
		}

		if s.Build == nil {
			_, _ = fmt.Fprintf(w, "  %s %s %s\n", style.Muted.Render(style.Circle), m.Version, style.Muted.Render("never built"))
			continue
		}

		built := s.Build.Timestamp.Local().Format(time.DateTime)
		_, _ = fmt.Fprintf(w, "  %s %s %s\n",
			style.Success.Render(style.Dot),
			m.Version,
			style.Muted.Render(fmt.Sprintf("built %s, assets %s", built, s.Build.AssetsHash)),
		)
	}
}
