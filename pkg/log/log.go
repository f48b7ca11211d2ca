package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	_ StdLogger = &Logger{}
	_ StdLogger = &logrus.Entry{}

	std = NewLogger(os.Stderr)
)

// StdLogger is the logging surface commands and packages depend on.
type StdLogger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})

	WithFields(f Fields) *logrus.Entry
}

type Fields = logrus.Fields

// Level represents a log level.
type Level int32

const (
	ErrorLevel Level = iota
	WarnLevel
	InfoLevel
	DebugLevel
)

var levels = map[Level]struct {
	name   string
	logrus logrus.Level
}{
	ErrorLevel: {"error", logrus.ErrorLevel},
	WarnLevel:  {"warning", logrus.WarnLevel},
	InfoLevel:  {"info", logrus.InfoLevel},
	DebugLevel: {"debug", logrus.DebugLevel},
}

func (l Level) String() string {
	if v, ok := levels[l]; ok {
		return v.name
	}
	return "unknown"
}

// ParseLevel maps a level name to a Level. "warn" is accepted for WarnLevel.
func ParseLevel(lvl string) (Level, error) {
	name := strings.ToLower(lvl)
	if name == "warn" {
		name = "warning"
	}

	for l, v := range levels {
		if v.name == name {
			return l, nil
		}
	}

	return ErrorLevel, fmt.Errorf("not a valid Level: %q", lvl)
}

// Default returns the stderr logger used when no Logger is configured.
func Default() StdLogger {
	return std
}

// Logger writes JSON lines to an io.Writer.
type Logger struct {
	logger *logrus.Logger
	entry  *logrus.Entry
}

// NewLogger creates a Logger writing to out at ErrorLevel.
func NewLogger(out io.Writer) *Logger {
	l := &logrus.Logger{
		Out: out,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		},
		Hooks: make(logrus.LevelHooks),
		Level: logrus.ErrorLevel,
	}

	return &Logger{logger: l, entry: logrus.NewEntry(l)}
}

func (l *Logger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *Logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *Logger) WithFields(f Fields) *logrus.Entry {
	return l.entry.WithFields(f)
}

// SetLevel sets the logger level. Unknown levels fall back to ErrorLevel.
func (l *Logger) SetLevel(v Level) {
	lvl, ok := levels[v]
	if !ok {
		lvl = levels[ErrorLevel]
	}

	l.logger.SetLevel(lvl.logrus)
}

// SetPrefix tags every entry with a source field.
func (l *Logger) SetPrefix(value interface{}) {
	l.entry = l.entry.WithField("source", value)
}
