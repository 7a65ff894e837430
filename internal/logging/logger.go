// Package logging provides the CLI's leveled logger: timestamped
// "[LEVEL] message" lines, colored on a terminal, with an optional rotating
// log file. It is built on logrus; output is routed through hooks so the
// console and the file can use different formatting.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/backmassage/phonesub/internal/config"
	"github.com/backmassage/phonesub/internal/term"
)

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	log  *logrus.Logger
	file *lumberjack.Logger
}

// NewLogger configures terminal colors from cfg and optionally opens the
// log file. Call Close when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	return newLogger(cfg, os.Stdout, os.Stderr)
}

func newLogger(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	lg := logrus.New()
	lg.SetOutput(io.Discard)
	lg.SetLevel(logrus.InfoLevel)
	if cfg.Verbose {
		lg.SetLevel(logrus.DebugLevel)
	}

	console := &lineFormatter{color: term.Enabled()}
	lg.AddHook(&writerHook{w: stdout, formatter: console, levels: []logrus.Level{
		logrus.InfoLevel, logrus.WarnLevel, logrus.DebugLevel,
	}})
	lg.AddHook(&writerHook{w: stderr, formatter: console, levels: []logrus.Level{
		logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel,
	}})

	l := &Logger{log: lg}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		// lumberjack opens lazily; open once here so a bad path fails at startup.
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		_ = f.Close()

		l.file = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: 3,
		}
		lg.AddHook(&writerHook{w: l.file, formatter: &lineFormatter{}, levels: logrus.AllLevels})
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.log.Info(fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green). It is an INFO entry with a tag.
func (l *Logger) Success(format string, args ...interface{}) {
	l.log.WithField(tagField, tagSuccess).Info(fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.log.Debug(fmt.Sprintf(format, args...))
}
