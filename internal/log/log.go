// Package log configures apex/log for the seqdiff CLI: a compact single-line
// handler and a log level taken from the SEQDIFF_LOG environment variable.
package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// Init sets up the handler and log level. The default level is info.
func Init() {
	level := log.InfoLevel
	switch strings.ToLower(os.Getenv("SEQDIFF_LOG")) {
	case "debug":
		level = log.DebugLevel
	case "warn":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	}
	log.SetHandler(&handler{})
	log.SetLevel(level)
}

// handler writes one line per entry to stderr.
type handler struct{}

func (h *handler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("15:04:05")
	level := "I"
	switch e.Level {
	case log.DebugLevel:
		level = "D"
	case log.WarnLevel:
		level = "W"
	case log.ErrorLevel:
		level = "E"
	case log.FatalLevel:
		level = "F"
	}
	_, err := fmt.Fprintf(os.Stderr, "%s %s %s\n", timestamp, level, e.Message)
	return err
}

// Debugf logs at debug level.
func Debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

// Infof logs at info level.
func Infof(format string, args ...any) {
	log.Infof(format, args...)
}

// Warnf logs at warn level.
func Warnf(format string, args ...any) {
	log.Warnf(format, args...)
}

// Errorf logs at error level.
func Errorf(format string, args ...any) {
	log.Errorf(format, args...)
}
