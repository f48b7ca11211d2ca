package hooks

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frain-dev/oasprobe/internal/pkg/cli"
	"github.com/frain-dev/oasprobe/internal/pkg/probe"
)

func newTestCommand(args ...string) *cobra.Command {
	return newNamedCommand("fixture", args...)
}

func newNamedCommand(name string, args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: name, RunE: func(cmd *cobra.Command, args []string) error { return nil }}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("log-level", "", "")
	cmd.Flags().StringP("output", "o", "", "")
	cmd.Flags().String("format", "", "")
	cmd.Flags().Bool("validate", false, "")
	cmd.SetErr(&bytes.Buffer{})
	_ = cmd.Flags().Parse(args)
	return cmd
}

func TestBuildCliConfiguration(t *testing.T) {
	t.Run("Fixture Flags", func(t *testing.T) {
		cmd := newTestCommand("-o", "/tmp/hooks.yaml", "--validate", "--log-level", "debug")

		c, err := buildCliConfiguration(cmd)

		assert.NoError(t, err)
		assert.Equal(t, "/tmp/hooks.yaml", c.Fixture.Path)
		assert.True(t, c.Fixture.ShouldValidate())
		assert.Equal(t, "debug", c.Logger.Level)
		assert.Empty(t, c.Probe.Target)
	})

	t.Run("Undefined Flags Are Ignored", func(t *testing.T) {
		cmd := &cobra.Command{Use: "version"}

		c, err := buildCliConfiguration(cmd)

		assert.NoError(t, err)
		assert.Empty(t, c.Fixture.Path)
		assert.Nil(t, c.Fixture.Validate)
	})

	t.Run("Output Flag Of Other Commands Is Ignored", func(t *testing.T) {
		cmd := newNamedCommand("openapi", "-o", "/tmp/out.json", "--log-level", "info")

		c, err := buildCliConfiguration(cmd)

		assert.NoError(t, err)
		assert.Empty(t, c.Fixture.Path)
		assert.Equal(t, "info", c.Logger.Level)
	})
}

func TestPreRun(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "oasprobe.json")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`{"fixture": {"path": "/tmp/from-file.json"}, "logger": {"level": "info"}}`), 0o644))

	t.Run("Flags Override Config File", func(t *testing.T) {
		app := &cli.App{}
		cmd := newTestCommand("--config", cfgFile, "-o", filepath.Join(dir, "from-flag.json"))

		require.NoError(t, PreRun(app)(cmd, nil))
		require.NotNil(t, app.Logger)
		require.Equal(t, filepath.Join(dir, "from-flag.json"), app.Config.Fixture.Path)
		require.Equal(t, "info", app.Config.Logger.Level)
		require.Equal(t, probe.DefaultTarget, app.Config.Probe.Target)
	})

	t.Run("Invalid Log Level", func(t *testing.T) {
		app := &cli.App{}
		cmd := newTestCommand("--log-level", "chatty")

		require.Error(t, PreRun(app)(cmd, nil))
		require.Nil(t, app.Config)
	})

	t.Run("Flag Defaults Keep Config Values", func(t *testing.T) {
		app := &cli.App{}
		cmd := newTestCommand("--config", cfgFile)
		cmd.Flags().String("target", "some.Default", "")

		require.NoError(t, PreRun(app)(cmd, nil))
		require.Equal(t, "/tmp/from-file.json", app.Config.Fixture.Path)
		require.Equal(t, probe.DefaultTarget, app.Config.Probe.Target)
	})

	t.Run("Explicit False Flag Overrides Config File", func(t *testing.T) {
		validating := filepath.Join(dir, "validate.json")
		require.NoError(t, os.WriteFile(validating, []byte(`{"fixture": {"validate": true}}`), 0o644))

		app := &cli.App{}
		require.NoError(t, PreRun(app)(newTestCommand("--config", validating), nil))
		require.True(t, app.Config.Fixture.ShouldValidate())

		app = &cli.App{}
		require.NoError(t, PreRun(app)(newTestCommand("--config", validating, "--validate=false"), nil))
		require.False(t, app.Config.Fixture.ShouldValidate())
	})

	t.Run("Invalid Format Flag", func(t *testing.T) {
		app := &cli.App{}
		cmd := newTestCommand("--format", "toml")

		require.Error(t, PreRun(app)(cmd, nil))
	})
}
