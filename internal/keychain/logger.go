package keychain

import (
	"sync/atomic"

	"helmbridge/cli/internal/logging"

	"github.com/pterm/pterm"
)

var pkgLogger atomic.Pointer[pterm.Logger]

// SetLogger sets the logger for keychain debug output. Secret values are
// never logged, only their keys and lengths.
func SetLogger(l *pterm.Logger) { pkgLogger.Store(l) }

func debugLogger() *pterm.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return logging.Discard()
}
