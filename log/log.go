// Package log is a thin logrus proxy. Nothing is written unless logs.write is on.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/appecho/alpha/filesystem"
	"github.com/appecho/alpha/key"
	"github.com/appecho/alpha/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fields is an alias so callers don't need to import logrus.
type Fields = logrus.Fields

var logger = discard()

func discard() *logrus.Logger {
	return newLogger(io.Discard, false, logrus.PanicLevel)
}

func newLogger(w io.Writer, json bool, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	if json {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return l
}

// Setup opens today's log file under the logs directory when logs.write is on.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		logger = discard()
		return nil
	}

	path := filepath.Join(where.Logs(), time.Now().Format(time.DateOnly)+".log")
	f, err := filesystem.API().OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}

	logger = newLogger(f, viper.GetBool(key.LogsJson), level)
	return nil
}

// With returns an entry carrying the given fields.
func With(fields Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func Error(args ...any) {
	logger.Error(args...)
}

func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}
