package utils

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// NewLogger returns a logfmt logger filtered at the named level
// (debug, info, warn, error). Unknown names fall back to info.
func NewLogger(w io.Writer, levelName string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, levelOption(levelName))
	// caller is bound outermost so level.X(logger).Log reports the call site.
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func levelOption(name string) level.Option {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return level.AllowDebug()
	case "warn", "warning":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// PrintfLogger adapts a go-kit logger to the Printf style writers expected by gorm.
type PrintfLogger struct {
	Logger log.Logger
}

func (p PrintfLogger) Printf(format string, args ...interface{}) {
	_ = level.Info(p.Logger).Log("msg", strings.TrimSpace(fmt.Sprintf(format, args...)))
}
