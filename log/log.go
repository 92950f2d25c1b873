package log

import (
	"fmt"
	"os"
)

// DebugOn enables DEBUG output when true
var DebugOn = false

// TraceOn enables TRACE output when true. It does not enable DEBUG output
// by itself; the CLI sets DebugOn alongside it.
var TraceOn = false

// PrintfStdErr is overridable for testing
var PrintfStdErr = func(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// DEBUG prints a debugging message to stderr, if DebugOn
func DEBUG(format string, args ...interface{}) {
	if DebugOn {
		PrintfStdErr("DEBUG> "+format+"\n", args...)
	}
}

// TRACE prints a trace message to stderr, if TraceOn
func TRACE(format string, args ...interface{}) {
	if TraceOn {
		PrintfStdErr("TRACE> "+format+"\n", args...)
	}
}
