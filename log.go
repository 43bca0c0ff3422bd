//go:build !js && !wasm

package main

import (
	"flag"
	"strconv"

	"github.com/golang/glog"
)

// initLogging configures glog through its flags, which is the only way to
// control it.
func initLogging(logToStderr bool, verbose int) {
	if !flag.Parsed() {
		// cobra owns the command line
		_ = flag.CommandLine.Parse(nil)
	}
	if logToStderr {
		_ = flag.Lookup("logtostderr").Value.Set("true")
	}
	_ = flag.Lookup("v").Value.Set(strconv.Itoa(verbose))
	glog.V(1).Infof("logging at verbosity %d", verbose)
}
