package main

import (
	"fmt"
	"log"
)

var debug bool

// setDebug toggles debug output. Debug lines carry the calling file so a
// session can be traced back through the loop.
func setDebug(enable bool) {
	debug = enable
	if enable {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
}

// Debugf will conditionally log a formatted debug message
func Debugf(format string, args ...interface{}) {
	if debug {
		log.Output(2, "DEBUG: "+fmt.Sprintf(format, args...))
	}
}

// Warnf always logs
func Warnf(format string, args ...interface{}) {
	log.Output(2, "WARN: "+fmt.Sprintf(format, args...))
}
