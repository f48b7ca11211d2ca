package probe

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frain-dev/oasprobe/internal/pkg/cli"
	"github.com/frain-dev/oasprobe/internal/pkg/probe"
)

func AddProbeCommand(app *cli.App, resolver probe.Resolver) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Check that a scope enumeration declares the webhooks member",
		Long: `Resolve a named enumeration, list its members and assert that the expected
member exists with the expected value. Exits 1 when the enumeration cannot be
resolved or either assertion fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config.Probe

			p := &probe.Probe{
				Resolver: resolver,
				Target:   cfg.Target,
				Member:   cfg.Member,
				Value:    cfg.Value,
				Out:      cmd.OutOrStdout(),
				Logger:   app.Logger,
			}

			err := p.Run(cmd.Context())
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().String("target", probe.DefaultTarget, "Name of the enumeration to resolve")
	cmd.Flags().String("member", probe.DefaultMember, "Member that must exist")
	cmd.Flags().String("value", probe.DefaultValue, "Value the member must hold")

	return cmd
}
