// Package debug holds environment switches for diagnostic logging.
package debug

import (
	"encoding/json"
	"io"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

type debug struct {
	Parse bool
	Path  bool
	Doc   bool
}

var (
	d      *debug
	logger atomic.Pointer[log.Logger]
)

func init() {
	d = &debug{}
	d.Parse = boolEnv("JDOC_DEBUG_PARSE")
	d.Path = boolEnv("JDOC_DEBUG_PATH")
	d.Doc = boolEnv("JDOC_DEBUG_DOC")
	logger.Store(NewLogger(os.Stderr, log.DebugLevel))
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Path() bool {
	return d.Path
}
func Doc() bool {
	return d.Doc
}

// NewLogger returns a timestamped logger writing to w at level.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Logger returns the logger used by Logf and LogAny.
func Logger() *log.Logger {
	return logger.Load()
}

// SetLogger replaces the debug logger.
func SetLogger(l *log.Logger) {
	logger.Store(l)
}

func Logf(format string, args ...any) {
	Logger().Debugf(format, args...)
}

// LogAny logs msg with v rendered as JSON.
func LogAny(msg string, v any) {
	d, err := json.Marshal(v)
	if err != nil {
		Logger().Debug(msg, "value", v)
		return
	}
	Logger().Debug(msg, "value", string(d))
}
