package ktx

import (
	"log/slog"

	"github.com/goopsie/go-ktx/pkg/ktx/sys"
)

// SetLogger configures logging for the package. By default nothing is
// logged. The main producers are the native stream callbacks, which can
// only report a bare error code across the C boundary; the log record
// carries the underlying host I/O error.
//
// Pass nil to restore the default silent behavior. Safe for concurrent use.
func SetLogger(l *slog.Logger) {
	sys.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return sys.Logger()
}
