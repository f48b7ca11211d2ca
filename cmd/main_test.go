package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frain-dev/oasprobe/internal/pkg/cli"
	"github.com/frain-dev/oasprobe/internal/pkg/probe"
	"github.com/frain-dev/oasprobe/internal/pkg/scope"
)

func run(t *testing.T, resolver probe.Resolver, args ...string) (string, error) {
	t.Helper()

	if resolver == nil {
		resolver = probe.DefaultCatalog()
	}

	out := &bytes.Buffer{}
	c := newCli(&cli.App{Version: "test"}, resolver)
	c.SetOut(out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(args)

	err := c.Execute()
	return out.String(), err
}

func TestFixtureCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_webhooks.json")

	out, err := run(t, nil, "fixture", "-o", path, "--validate")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Created test OpenAPI spec with webhooks at "+path+"\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, string(data)))

	// a second run leaves the same bytes behind
	_, err = run(t, nil, "fixture", "-o", path, "-q")
	require.NoError(t, err)

	again, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, data, again)
}

func TestFixtureCommand_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_webhooks.yml")

	out, err := run(t, nil, "fixture", "-o", path, "-q")
	require.NoError(t, err)
	require.Equal(t, "Created test OpenAPI spec with webhooks at "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "newPet:")
}

func TestFixtureCommand_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "test_webhooks.json")

	_, err := run(t, nil, "fixture", "-o", path)
	require.Error(t, err)
	require.Equal(t, 1, probe.ExitCode(err))
}

func TestProbeCommand(t *testing.T) {
	t.Run("default catalog passes", func(t *testing.T) {
		out, err := run(t, nil, "probe")
		require.NoError(t, err)
		require.Contains(t, out, "Available OpenAPIScope members:")
		require.Contains(t, out, "  - Webhooks: webhooks")
		require.Equal(t, 0, probe.ExitCode(err))
	})

	t.Run("unknown target is an import failure", func(t *testing.T) {
		out, err := run(t, nil, "probe", "--target", "datamodel_code_generator.OpenAPIScope")
		require.Error(t, err)
		require.Equal(t, probe.ImportFailure, probe.KindOf(err))
		require.Equal(t, "Import error: cannot import name \"datamodel_code_generator.OpenAPIScope\": no enumeration registered under that name\n", out)
		require.Equal(t, 1, probe.ExitCode(err))
	})

	t.Run("wrong value is an assertion failure", func(t *testing.T) {
		c := probe.NewCatalog()
		require.NoError(t, c.Register(probe.DefaultTarget, scope.MustEnum("OpenAPIScope",
			scope.Member{Name: "Schemas", Value: "schemas"},
			scope.Member{Name: "Webhooks", Value: "hooks"},
		)))

		out, err := run(t, c, "probe")
		require.Error(t, err)
		require.Equal(t, probe.AssertionFailure, probe.KindOf(err))
		require.Contains(t, out, `Assertion failed: OpenAPIScope.Webhooks value should be "webhooks", got "hooks"`)
	})

	t.Run("member flag", func(t *testing.T) {
		out, err := run(t, nil, "probe", "--member", "Callbacks", "--value", "callbacks")
		require.Error(t, err)
		require.Contains(t, out, "Callbacks member not found in OpenAPIScope")
	})
}

func TestOpenAPICommand(t *testing.T) {
	dir := t.TempDir()
	spec := filepath.Join(dir, "test_webhooks.json")

	_, err := run(t, nil, "fixture", "-o", spec, "-q")
	require.NoError(t, err)

	t.Run("extracts the fixture webhook", func(t *testing.T) {
		out, err := run(t, nil, "openapi", "-i", spec)
		require.NoError(t, err)
		require.Contains(t, out, "Successfully extracted 1 webhook schemas")
		require.Contains(t, out, `"name": "POST newPet"`)
	})

	t.Run("valid payload", func(t *testing.T) {
		payload := filepath.Join(dir, "ok.json")
		require.NoError(t, os.WriteFile(payload, []byte(`{"id": 1, "name": "Rex"}`), 0o644))

		out, err := run(t, nil, "openapi", "-i", spec, "--payload", payload, "--webhook", "POST newPet")
		require.NoError(t, err)
		require.Equal(t, "Payload matches POST newPet\n", out)
	})

	t.Run("invalid payload", func(t *testing.T) {
		payload := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(payload, []byte(`{"id": "one"}`), 0o644))

		out, err := run(t, nil, "openapi", "-i", spec, "--payload", payload)
		require.Error(t, err)
		require.Contains(t, out, "name is required")
	})

	t.Run("paths scope is empty", func(t *testing.T) {
		_, err := run(t, nil, "openapi", "-i", spec, "--scope", "paths")
		require.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, nil, "version")
	require.NoError(t, err)
	require.Equal(t, "oasprobe version test\n", out)
}
