// Package commands implements the CLI commands for titleparam.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/titleparam/internal/adapters/config"
	"go.trai.ch/titleparam/internal/app"
	"go.trai.ch/titleparam/internal/build"
	"go.trai.ch/titleparam/internal/core/ports"
)

// jsonLogger is implemented by loggers that can switch to JSON records.
type jsonLogger interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for titleparam.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app and logger.
func New(a *app.App, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "titleparam",
		Short:         "Validate and resolve page title parameters",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to the parameter manifest")
	rootCmd.PersistentFlags().Bool("json", false, "Write log records as JSON")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		enable, _ := cmd.Flags().GetBool("json")
		if l, ok := c.logger.(jsonLogger); ok {
			l.SetJSON(enable)
		}
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// SetOut sets the destination for command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
