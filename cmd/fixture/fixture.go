package fixture

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frain-dev/oasprobe/internal/pkg/cli"
	"github.com/frain-dev/oasprobe/internal/pkg/fixture"
)

func AddFixtureCommand(app *cli.App) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Write a sample OpenAPI 3.1 spec with a webhook",
		Long: `Write a minimal OpenAPI 3.1 document declaring a single "newPet" POST webhook.
The file is overwritten on every run and its content is printed to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config.Fixture

			var format fixture.Format
			if cfg.Format != "" {
				f, err := fixture.ParseFormat(cfg.Format)
				if err != nil {
					return err
				}
				format = f
			}

			w := &fixture.Writer{
				Path:     cfg.Path,
				Format:   format,
				Validate: cfg.ShouldValidate(),
				Logger:   app.Logger,
			}

			res, err := w.Write(cmd.Context(), fixture.WebhookTestDocument())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created test OpenAPI spec with webhooks at %s\n", res.Path)
			if !quiet {
				fmt.Fprint(out, string(res.Content))
			}

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Path to write the spec to (default <tmp>/test_webhooks.json)")
	cmd.Flags().StringP("format", "f", "", "Output format: json or yaml (default from the file extension)")
	cmd.Flags().Bool("validate", false, "Validate the spec with kin-openapi before writing it")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not echo the written spec")

	return cmd
}
