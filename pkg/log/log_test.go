package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: DebugLevel},
		{in: "INFO", want: InfoLevel},
		{in: "warn", want: WarnLevel},
		{in: "warning", want: WarnLevel},
		{in: "error", want: ErrorLevel},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(buf)

	l.Info("hidden")
	require.Zero(t, buf.Len())

	l.SetLevel(InfoLevel)
	l.WithFields(Fields{"path": "/tmp/x.json"}).Info("written")

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "written", entry["msg"])
	require.Equal(t, "/tmp/x.json", entry["path"])
	require.Equal(t, "info", entry["level"])
}

func TestLogger_SetPrefix(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLogger(buf)
	l.SetLevel(DebugLevel)
	l.SetPrefix("probe")

	l.Debugf("resolved %s", "scope.OpenAPIScope")

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "probe", entry["source"])
	require.Equal(t, "resolved scope.OpenAPIScope", entry["msg"])
	require.Equal(t, "debug", entry["level"])
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "warning", WarnLevel.String())
	require.Equal(t, "unknown", Level(9).String())
	require.NotNil(t, Default())
}
