package fixture

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/r3labs/diff/v3"

	"github.com/frain-dev/oasprobe/pkg/log"
)

// RoundTripError reports that the file on disk does not decode to what was
// written.
type RoundTripError struct {
	Path    string
	Changes diff.Changelog
}

func (e *RoundTripError) Error() string {
	paths := make([]string, 0, len(e.Changes))
	for _, c := range e.Changes {
		paths = append(paths, fmt.Sprintf("%s %s", c.Type, strings.Join(c.Path, ".")))
	}

	return fmt.Sprintf("%s does not match the encoded document: %s", e.Path, strings.Join(paths, ", "))
}

// Writer writes a Document to Path, replacing any existing content.
type Writer struct {
	Path     string
	Format   Format
	Validate bool
	Logger   log.StdLogger
}

type Result struct {
	Path    string
	Format  Format
	Bytes   int
	Content []byte
}

func (w *Writer) Write(ctx context.Context, doc Document) (*Result, error) {
	format := w.Format
	if format == "" {
		format = FormatFromPath(w.Path)
	}

	content, err := doc.Encode(format)
	if err != nil {
		return nil, err
	}

	if w.Validate {
		if err := Validate(ctx, content); err != nil {
			return nil, errors.Wrap(err, "document failed validation")
		}
		w.logger().Debug("document passed validation")
	}

	n, err := writeFile(w.Path, content)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", w.Path)
	}

	if err := verify(w.Path, format, content); err != nil {
		return nil, err
	}

	w.logger().WithFields(log.Fields{"path": w.Path, "format": format, "bytes": n}).Info("fixture written")

	return &Result{Path: w.Path, Format: format, Bytes: n, Content: content}, nil
}

func (w *Writer) logger() log.StdLogger {
	if w.Logger == nil {
		return log.Default()
	}
	return w.Logger
}

func writeFile(path string, content []byte) (n int, err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, err
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	n, err = f.Write(content)
	if err != nil {
		return n, err
	}

	return n, f.Sync()
}

func verify(path string, format Format, want []byte) error {
	got, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read back %s", path)
	}

	wantDoc, err := Decode(want, format)
	if err != nil {
		return err
	}

	gotDoc, err := Decode(got, format)
	if err != nil {
		return errors.Wrapf(err, "failed to decode %s", path)
	}

	changelog, err := diff.Diff(wantDoc, gotDoc)
	if err != nil {
		return errors.Wrap(err, "failed to compare documents")
	}

	if len(changelog) > 0 {
		return &RoundTripError{Path: path, Changes: changelog}
	}

	return nil
}
