package cli

import (
	"io"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/frain-dev/oasprobe/config"
	"github.com/frain-dev/oasprobe/pkg/log"
)

// App is the core dependency of the entire binary. Config and Logger are
// filled in by the root command's PersistentPreRunE.
type App struct {
	Version string
	Config  *config.Configuration
	Logger  *log.Logger
}

type OasprobeCli struct {
	cmd *cobra.Command
}

func NewCli(app *App) *OasprobeCli {
	cmd := &cobra.Command{
		Use:           "oasprobe",
		Version:       app.Version,
		Short:         "OpenAPI webhook fixtures and scope checks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	return &OasprobeCli{cmd: cmd}
}

func (c *OasprobeCli) Flags() *flag.FlagSet {
	return c.cmd.PersistentFlags()
}

func (c *OasprobeCli) PersistentPreRunE(fn func(*cobra.Command, []string) error) {
	c.cmd.PersistentPreRunE = fn
}

func (c *OasprobeCli) AddCommand(subCmd *cobra.Command) {
	c.cmd.AddCommand(subCmd)
}

func (c *OasprobeCli) SetArgs(args []string) {
	c.cmd.SetArgs(args)
}

func (c *OasprobeCli) SetOut(w io.Writer) {
	c.cmd.SetOut(w)
}

func (c *OasprobeCli) SetErr(w io.Writer) {
	c.cmd.SetErr(w)
}

func (c *OasprobeCli) Execute() error {
	return c.cmd.Execute()
}
