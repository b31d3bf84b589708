package logger

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-hclog"
)

const (
	LogLevelInfo  = "info"
	LogLevelDebug = "debug"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Logger writes structured log entries for the server and its clients
type Logger interface {
	// Level returns the name of the active level
	Level() string
	Output() io.Writer

	Info(message string, keyvals ...interface{})
	Debug(message string, keyvals ...interface{})
	Error(message string, keyvals ...interface{})
	Warn(message string, keyvals ...interface{})

	// With returns a logger that adds the given key value pairs to every entry
	With(keyvals ...interface{}) Logger

	// StandardWriter returns a writer which logs every line written to it at debug level,
	// this is used by the HTTP request logger and the server error log
	StandardWriter() io.Writer
}

type CharmLogger struct {
	internal *log.Logger
	writer   io.Writer
	level    string
}

// NewLogger creates a logger writing to w, an unknown level logs a warning
// and falls back to info
func NewLogger(w io.Writer, level string) Logger {
	l := log.New(w)

	lev, err := log.ParseLevel(level)
	if err != nil {
		lev = log.InfoLevel
	}

	l.SetLevel(lev)
	cl := &CharmLogger{l, w, lev.String()}

	if err != nil {
		cl.Warn("Unknown log level, using info", "level", level)
	}

	return cl
}

func (l *CharmLogger) Level() string {
	return l.level
}

func (l *CharmLogger) Output() io.Writer {
	return l.writer
}

func (l *CharmLogger) With(keyvals ...interface{}) Logger {
	return &CharmLogger{l.internal.With(keyvals...), l.writer, l.level}
}

func (l *CharmLogger) StandardWriter() io.Writer {
	return l.internal.StandardLog(log.StandardLogOptions{ForceLevel: log.DebugLevel}).Writer()
}

func (l *CharmLogger) Info(message string, keyvals ...interface{}) {
	l.internal.Info(message, keyvals...)
}

func (l *CharmLogger) Debug(message string, keyvals ...interface{}) {
	l.internal.Debug(message, keyvals...)
}

func (l *CharmLogger) Error(message string, keyvals ...interface{}) {
	l.internal.Error(message, keyvals...)
}

func (l *CharmLogger) Warn(message string, keyvals ...interface{}) {
	l.internal.Warn(message, keyvals...)
}

// LoggerAsHCLogger returns a hclog logger with the same level and output,
// used to stream the output of long running commands into the log
func LoggerAsHCLogger(l Logger) hclog.Logger {
	lo := hclog.LoggerOptions{}
	lo.Level = hclog.LevelFromString(l.Level())
	lo.Output = l.Output()

	return hclog.New(&lo)
}
