// Package telemetry provides the leveled, terse logging used across
// both CLI phases.
package telemetry

import (
	"log"
	"os"
)

var verbose = os.Getenv("TRANSITCAT_DEBUG") == "true"

// Infof logs an informational message; always emitted.
func Infof(format string, args ...interface{}) {
	log.Printf("[info] "+format, args...)
}

// Debugf logs a debug message; only emitted when TRANSITCAT_DEBUG=true.
func Debugf(format string, args ...interface{}) {
	if !verbose {
		return
	}
	log.Printf("[debug] "+format, args...)
}

// Warnf logs a warning; always emitted, never fatal.
func Warnf(format string, args ...interface{}) {
	log.Printf("[warn] "+format, args...)
}

// Fatalf logs an error and terminates the process with a non-zero exit
// code, for structural/settings faults.
func Fatalf(format string, args ...interface{}) {
	log.Fatalf("[fatal] "+format, args...)
}
