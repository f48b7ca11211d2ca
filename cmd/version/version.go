package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frain-dev/oasprobe/internal/pkg/cli"
)

func AddVersionCommand(app *cli.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		// skip config loading
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "oasprobe version %s\n", app.Version)
			return err
		},
	}

	return cmd
}
