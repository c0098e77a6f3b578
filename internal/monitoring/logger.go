package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

var verbose bool

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetVerbose toggles the Verbosef tier. Array construction emits per-bin
// detail through Verbosef, which is off by default because the bin count
// can be large.
func SetVerbose(on bool) { verbose = on }

// Verbosef logs through Logf only when verbose output is enabled.
func Verbosef(format string, v ...interface{}) {
	if verbose {
		Logf(format, v...)
	}
}
