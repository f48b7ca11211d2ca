package hooks

import (
	"github.com/spf13/cobra"

	"github.com/frain-dev/oasprobe/config"
	"github.com/frain-dev/oasprobe/internal/pkg/cli"
	"github.com/frain-dev/oasprobe/pkg/log"
)

// PreRun loads the configuration, applies flag overrides and sets up the
// logger before any subcommand runs.
func PreRun(app *cli.App) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfgPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			return err
		}

		// Override with CLI Flags
		cliConfig, err := buildCliConfiguration(cmd)
		if err != nil {
			return err
		}

		if err = cfg.Override(cliConfig); err != nil {
			return err
		}

		lvl, err := log.ParseLevel(cfg.Logger.Level)
		if err != nil {
			return err
		}

		lo := log.NewLogger(cmd.ErrOrStderr())
		lo.SetLevel(lvl)
		lo.SetPrefix(cmd.Name())

		app.Config = cfg
		app.Logger = lo

		lo.WithFields(log.Fields{"config": cfgPath, "fixture_path": cfg.Fixture.Path, "probe_target": cfg.Probe.Target}).Debug("configuration loaded")

		return nil
	}
}

func buildCliConfiguration(cmd *cobra.Command) (*config.Configuration, error) {
	c := &config.Configuration{}

	var err error
	if c.Logger.Level, err = stringFlag(cmd, "log-level"); err != nil {
		return nil, err
	}

	// fixture and probe flags only apply to their own command
	switch cmd.Name() {
	case "fixture":
		if c.Fixture.Path, err = stringFlag(cmd, "output"); err != nil {
			return nil, err
		}

		if c.Fixture.Format, err = stringFlag(cmd, "format"); err != nil {
			return nil, err
		}

		if cmd.Flags().Changed("validate") {
			v, err := cmd.Flags().GetBool("validate")
			if err != nil {
				return nil, err
			}
			c.Fixture.Validate = &v
		}
	case "probe":
		if c.Probe.Target, err = stringFlag(cmd, "target"); err != nil {
			return nil, err
		}

		if c.Probe.Member, err = stringFlag(cmd, "member"); err != nil {
			return nil, err
		}

		if c.Probe.Value, err = stringFlag(cmd, "value"); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// stringFlag returns "" unless the flag was set on the command line, so flag
// defaults never replace values from the config file or the environment.
func stringFlag(cmd *cobra.Command, name string) (string, error) {
	if !cmd.Flags().Changed(name) {
		return "", nil
	}
	return cmd.Flags().GetString(name)
}
