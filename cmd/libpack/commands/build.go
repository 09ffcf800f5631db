package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/libpack/internal/app"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [name@version | folder...]",
		Short: "Build libraries as SystemJS bundles",
		Long: "Build the given libraries one after another. Without arguments an interactive\n" +
			"picker lists every library version found in the source directory.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			strict, _ := cmd.Flags().GetBool("strict")
			if all && len(args) > 0 {
				return zerr.New("--all cannot be combined with library references")
			}

			a, err := c.app(cmd.Context())
			if err != nil {
				return err
			}

			report, err := a.Build(cmd.Context(), app.BuildOptions{
				Refs:   args,
				All:    all,
				Strict: strict,
			})
			renderReport(cmd.OutOrStdout(), report)
			return err
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Build every library in the source directory")
	cmd.Flags().Bool("strict", false, "Exit non-zero when any library fails to build")
	return cmd
}

func renderReport(w io.Writer, report domain.BuildReport) {
	for _, res := range report.Results {
		id := style.Name.Render(res.Library.Manifest.ID())
		duration := style.Muted.Render(res.Duration.Round(time.Millisecond).String())

		if res.Status == domain.StatusCompleted {
			detail := style.Muted.Render(fmt.Sprintf("%d assets", len(res.Assets)))
			_, _ = fmt.Fprintf(w, "%s %s %s %s\n", style.Success.Render(style.Check), id, detail, duration)
			continue
		}

		reason := string(res.FailedStep)
		if res.Err != nil {
			reason += ": " + firstLine(res.Err.Error())
		}
		_, _ = fmt.Fprintf(w, "%s %s %s %s\n", style.Failure.Render(style.Cross), id, style.Failure.Render(reason), duration)
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
