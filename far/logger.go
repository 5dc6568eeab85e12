package far

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger, accessed atomically so SetLogger may
// race with logging from any goroutine.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger configures the logger used by far. By default far logs nothing.
// Pass nil to restore the silent default. Safe for concurrent use.
//
// Levels used:
//   - Debug: patch committed (face, patch, new slots)
//   - Info:  stencil table created
//   - Warn:  face rejected in a batch
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
