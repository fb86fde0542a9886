package cpu

import "log"

// Logger is the diagnostic sink for conditions worth surfacing but not
// worth an error return, such as SED on the Ricoh variant. *log.Logger
// satisfies this directly.
type Logger interface {
	Printf(format string, v ...interface{})
}

// nopLogger discards everything; used whenever a Config omits a Logger.
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

var _ Logger = (*log.Logger)(nil)
