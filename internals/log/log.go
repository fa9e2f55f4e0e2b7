// Package log is the process-wide logger. Call sites use it exactly like the
// standard library logger (log.Printf / log.Println) while output goes through logrus.
package log

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

func init() {
	Logger = logrus.New()
	Logger.Formatter = &logrus.TextFormatter{
		DisableLevelTruncation: true,
		PadLevelText:           true,
		TimestampFormat:        "2006/01/02 15:04:05",
		FullTimestamp:          true,
	}
}

// SetLevel menerima "debug", "info", "warn", dst. Nilai tidak dikenal diabaikan.
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		Logger.Warnf("[LOG] level %q tidak dikenal, tetap %s", level, Logger.GetLevel())
		return
	}
	Logger.SetLevel(lvl)
}

func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

func Printf(format string, args ...any) {
	Logger.Printf(format, args...)
}

func Println(args ...any) {
	Logger.Println(args...)
}

func Debugf(format string, args ...any) {
	Logger.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	Logger.Infof(format, args...)
}

func Warnf(format string, args ...any) {
	Logger.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	Logger.Errorf(format, args...)
}

func Fatalf(format string, args ...any) {
	Logger.Fatalf(format, args...)
}

// WithField dipakai saat satu baris log butuh konteks terstruktur (job, request id).
func WithField(key string, value any) *logrus.Entry {
	return Logger.WithField(key, value)
}
