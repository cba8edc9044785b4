package nes

import (
	"log"
	"regexp"
	"runtime"
	"time"
)

var runtimeFunc = regexp.MustCompile(`^.*\.(.*)$`)

// TimeTrack logs how long the calling function has been running. Meant to be
// deferred: defer TimeTrack(logger, time.Now()).
//
// Function time tracking thanks to:
// https://stackoverflow.com/questions/45766572/is-there-an-efficient-way-to-calculate-execution-time-in-golang
func TimeTrack(logger *log.Logger, start time.Time) {
	if logger == nil {
		return
	}

	elapsed := time.Since(start)

	// Skip this function, and fetch the PC and file for its parent.
	pc, _, _, _ := runtime.Caller(1)

	// Regex to extract just the function name (and not the module path).
	name := runtimeFunc.ReplaceAllString(runtime.FuncForPC(pc).Name(), "$1")

	logger.Printf("%s took %s", name, elapsed)
}

// Set a bit in b at the given bit index.
func setBit(b *byte, bitIdx int, newBit byte) {
	if newBit == 0 {
		*b &^= (1 << bitIdx)
	} else {
		*b |= (1 << bitIdx)
	}
}

func boolBit(v bool) byte {
	if v {
		return 1
	}
	return 0
}
