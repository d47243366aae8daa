// Package logger holds the engine-wide structured logger.
package logger

import (
	"go.uber.org/zap"
)

// Log is the engine-wide logger. It is a no-op logger until Init is called, so packages can
// log unconditionally and tests stay quiet.
var Log = zap.NewNop()

// Init replaces Log with a development logger (debug level, console encoding) when debug is
// true, or a production logger otherwise.
//
// Parameters:
//   - debug: whether to enable debug-level console output
//
// Returns:
//   - error: error if the logger could not be built
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes any buffered log entries. Errors are ignored because stdout/stderr sync
// fails on some platforms for reasons unrelated to the log content.
func Sync() {
	_ = Log.Sync()
}
