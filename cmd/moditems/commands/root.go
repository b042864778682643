// Package commands implements the CLI commands for moditems.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/moditems/internal/adapters/telemetry"
	"go.trai.ch/moditems/internal/app"
	"go.trai.ch/moditems/internal/build"
	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/moditems/internal/core/ports"
)

// Application represents the application logic interface.
type Application interface {
	Load(ctx context.Context, opts app.LoadOptions) (ports.World, error)
	ApplyItem(ctx context.Context, identifier string, target ports.Entity) domain.ApplyResult
	Inspect(target ports.Entity) (app.Inspection, error)
	Definition(identifier string) (domain.ItemDefinition, bool)
	Definitions() []string
	Present(identifier string, base domain.Presentation) domain.Presentation
	Watch(ctx context.Context, dir string) error
}

// Option configures a CLI.
type Option func(*CLI)

// WithJSONSwitch registers fn to be called with the value of the --json flag.
func WithJSONSwitch(fn func(enable bool)) Option {
	return func(c *CLI) {
		c.setJSON = fn
	}
}

// CLI represents the command line interface for moditems.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	setJSON func(enable bool)

	defsDir   string
	worldPath string
	jsonLogs  bool
	trace     bool
	shutdown  func(context.Context) error
	envErr    error
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "moditems",
		Short:         "Apply mod item stat modifiers to entities",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	settings, err := LoadSettings()
	if err != nil {
		c.envErr = err
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&c.defsDir, "defs", "d", settings.DefinitionsDir, "Directory containing item definition files ($MODITEMS_DEFS)")
	pf.StringVarP(&c.worldPath, "world", "w", settings.WorldPath, "World file describing entities and their stats ($MODITEMS_WORLD)")
	pf.BoolVar(&c.jsonLogs, "json", settings.JSONLogs, "Write logs as JSON ($MODITEMS_JSON)")
	pf.BoolVar(&c.trace, "trace", settings.Trace, "Print a summary line for every traced operation ($MODITEMS_TRACE)")

	rootCmd.PersistentPreRunE = c.before

	rootCmd.AddCommand(c.newApplyCmd())
	rootCmd.AddCommand(c.newIndexCmd())
	rootCmd.AddCommand(c.newDescribeCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) before(cmd *cobra.Command, _ []string) error {
	if c.envErr != nil {
		return c.envErr
	}
	if c.jsonLogs && c.setJSON != nil {
		c.setJSON(true)
	}
	if c.trace {
		c.shutdown = telemetry.Setup(telemetry.NewTextRenderer(cmd.ErrOrStderr()))
	}
	return nil
}

// Execute runs the root command with the given context.
// Spans recorded with --trace are flushed before it returns.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if c.shutdown != nil {
		_ = c.shutdown(context.WithoutCancel(ctx))
		c.shutdown = nil
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// loadOptions returns the load options for the global flags.
func (c *CLI) loadOptions(withWorld bool) app.LoadOptions {
	opts := app.LoadOptions{DefinitionsDir: c.defsDir}
	if withWorld {
		opts.WorldPath = c.worldPath
	}
	return opts
}
