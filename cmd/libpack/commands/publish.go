package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/libpack/internal/ui/style"
)

func (c *CLI) newPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Check built bundles before publishing them to the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.app(cmd.Context())
			if err != nil {
				return err
			}

			statuses, err := a.Publish(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, s := range statuses {
				id := style.Name.Render(s.Library.Manifest.ID())
				if s.Ready {
					_, _ = fmt.Fprintf(w, "%s %s\n", style.Success.Render(style.Check), id)
					continue
				}
				_, _ = fmt.Fprintf(w, "%s %s %s\n", style.Failure.Render(style.Cross), id, style.Failure.Render(s.Reason))
			}
			_, _ = fmt.Fprintln(w, style.Muted.Render("uploading to the store is not supported yet"))
			return nil
		},
	}
}
