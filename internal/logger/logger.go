// Package logger is the app-wide structured logger. Output goes to a rotated
// file under the data directory; debug mode mirrors it to stderr.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/chronox22/eco-gamer-collective/internal/constants"
)

// Logger is nil until Init succeeds; the package helpers are no-ops until then.
var Logger *log.Logger

// Config holds logger configuration.
type Config struct {
	Debug   bool
	DataDir string

	// Session, when set, is attached to every line as "session".
	Session string

	// Output replaces the rotated log file. Used by tests.
	Output io.Writer
}

// Init builds the global logger from cfg.
func Init(cfg Config) error {
	out := cfg.Output
	if out == nil {
		logDir := filepath.Join(cfg.DataDir, "logs")
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return err
		}
		out = &lumberjack.Logger{
			Filename:   filepath.Join(logDir, constants.AppName+".log"),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}

	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
		out = io.MultiWriter(os.Stderr, out)
	}

	l := log.NewWithOptions(out, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})
	if cfg.Session != "" {
		l = l.With("session", cfg.Session)
	}
	Logger = l
	return nil
}

func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// Fatal logs msg and exits with status 1, logger or not.
func Fatal(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Fatal(msg, keyvals...)
	}
	os.Exit(1)
}
