package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/ui/style"
)

func (c *CLI) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <version> | add <name@version>",
		Short: "Create the source folder of a new library version",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pkg domain.Package
			if len(args) == 2 {
				pkg = domain.Package{Name: args[0], Version: args[1]}
			} else {
				parsed, err := domain.ParsePackage(args[0])
				if err != nil {
					return err
				}
				pkg = parsed
			}

			a, err := c.app(cmd.Context())
			if err != nil {
				return err
			}

			lib, err := a.Add(cmd.Context(), pkg.Name, pkg.Version)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				style.Success.Render(style.Check),
				style.Name.Render(lib.Manifest.ID()),
				style.Muted.Render(lib.Folder),
			)
			return nil
		},
	}
}
