package main

import (
	"fmt"
	"os"

	"github.com/frain-dev/oasprobe/cmd/fixture"
	"github.com/frain-dev/oasprobe/cmd/hooks"
	"github.com/frain-dev/oasprobe/cmd/openapi"
	probecmd "github.com/frain-dev/oasprobe/cmd/probe"
	"github.com/frain-dev/oasprobe/cmd/version"
	"github.com/frain-dev/oasprobe/internal/pkg/cli"
	"github.com/frain-dev/oasprobe/internal/pkg/probe"
)

// set with -ldflags "-X main.buildVersion=..."
var buildVersion = "dev"

func main() {
	app := &cli.App{Version: buildVersion}

	c := newCli(app, probe.DefaultCatalog())
	if err := c.Execute(); err != nil {
		// probe failures have already been reported on stdout
		if probe.KindOf(err) == 0 {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(probe.ExitCode(err))
	}
}

func newCli(app *cli.App, resolver probe.Resolver) *cli.OasprobeCli {
	c := cli.NewCli(app)

	var configFile string
	var logLevel string

	c.Flags().StringVar(&configFile, "config", "", "Configuration file for oasprobe")
	c.Flags().StringVar(&logLevel, "log-level", "", "Log level: error, warn, info or debug")

	c.PersistentPreRunE(hooks.PreRun(app))

	c.AddCommand(version.AddVersionCommand(app))
	c.AddCommand(fixture.AddFixtureCommand(app))
	c.AddCommand(probecmd.AddProbeCommand(app, resolver))
	c.AddCommand(openapi.AddOpenAPICommand(app))

	return c
}
