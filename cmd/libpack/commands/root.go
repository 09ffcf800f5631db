// Package commands implements the CLI commands for libpack.
package commands

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/libpack/internal/adapters/config"
	"go.trai.ch/libpack/internal/app"
	"go.trai.ch/libpack/internal/build"
	"go.trai.ch/libpack/internal/core/domain"
	"go.trai.ch/libpack/internal/ui/output"
)

// Exit codes returned by the CLI.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// Factory builds the application components once flags have been parsed.
type Factory func(ctx context.Context) (*app.Components, error)

// CLI represents the command line interface for libpack.
type CLI struct {
	factory    Factory
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance that resolves its app through factory.
func New(factory Factory) *CLI {
	rootCmd := &cobra.Command{
		Use:           "libpack",
		Short:         "Repackage npm libraries as versioned SystemJS bundles",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to libpack.yaml (default: ./libpack.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("prompt", "", "Library picker: auto, interactive, accessible or off")

	c := &CLI{
		factory: factory,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.bindFlags

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newPublishCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// bindFlags hands the persistent flags to viper before any component reads the configuration.
func (c *CLI) bindFlags(cmd *cobra.Command, _ []string) error {
	lipgloss.SetColorProfile(output.ColorProfile())

	flags := cmd.Flags()
	if path, _ := flags.GetString("config"); path != "" {
		viper.SetConfigFile(path)
	}
	if err := viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level")); err != nil {
		return err
	}
	return viper.BindPFlag(config.KeyPrompt, flags.Lookup("prompt"))
}

// app returns the application, building the components on first use.
func (c *CLI) app(ctx context.Context) (*app.App, error) {
	if c.components == nil {
		components, err := c.factory(ctx)
		if err != nil {
			return nil, err
		}
		c.components = components
	}
	return c.components.App, nil
}

// Components returns the application components, or nil if they were never built.
func (c *CLI) Components() *app.Components {
	return c.components
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// ExitCode maps a command error to the process exit code.
// Interrupts and an aborted picker exit with 130, like a shell killed by SIGINT.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, domain.ErrPromptAborted):
		return ExitInterrupted
	default:
		return ExitFailure
	}
}
