// Package log writes diagnostics to a daily file in the logs directory when logging is enabled.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/prism-cli/prism/filesystem"
	"github.com/prism-cli/prism/key"
	"github.com/prism-cli/prism/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	logger  = logrus.New()
	enabled bool
)

// Setup opens today's log file when logs.write is set. Otherwise every call is a no-op.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	path := filepath.Join(where.Logs(), time.Now().Format(time.DateOnly)+".log")

	f, err := filesystem.API().OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		enabled = false
		return fmt.Errorf("open log file: %w", err)
	}

	SetupWriter(f)
	return nil
}

// SetupWriter sends logs to w instead of the logs directory.
func SetupWriter(w io.Writer) {
	enabled = true
	logger.SetOutput(w)

	if viper.GetBool(key.LogsJson) {
		logger.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

// Enabled reports whether logs are written anywhere.
func Enabled() bool {
	return enabled
}

func emit(level logrus.Level, args ...any) {
	if enabled {
		logger.Log(level, args...)
	}
}

func emitf(level logrus.Level, format string, args ...any) {
	if enabled {
		logger.Logf(level, format, args...)
	}
}

func Error(args ...any) { emit(logrus.ErrorLevel, args...) }
func Errorf(format string, args ...any) { emitf(logrus.ErrorLevel, format, args...) }
func Warn(args ...any) { emit(logrus.WarnLevel, args...) }
func Warnf(format string, args ...any) { emitf(logrus.WarnLevel, format, args...) }
func Info(args ...any) { emit(logrus.InfoLevel, args...) }
func Infof(format string, args ...any) { emitf(logrus.InfoLevel, format, args...) }
func Debugf(format string, args ...any) { emitf(logrus.DebugLevel, format, args...) }
func Tracef(format string, args ...any) { emitf(logrus.TraceLevel, format, args...) }
