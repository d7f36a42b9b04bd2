// Package color provides terminal color output for the svgmotion CLI.
// It respects the NO_COLOR environment variable (https://no-color.org/).
package color

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

var state struct {
	once       sync.Once
	enabled    atomic.Bool
	overridden atomic.Bool
}

// Init initializes the color system from the environment and the --no-color flag.
// Explicit Enable/Disable calls take precedence.
func Init(noColorFlag bool) {
	state.once.Do(func() {
		if state.overridden.Load() {
			return
		}
		_, noColorEnv := os.LookupEnv("NO_COLOR")
		state.enabled.Store(!noColorEnv && os.Getenv("TERM") != "dumb" && !noColorFlag)
	})
	if noColorFlag {
		Disable()
	}
}

// Enabled returns true if color output is enabled.
func Enabled() bool {
	Init(false)
	return state.enabled.Load()
}

// Disable turns off color output.
func Disable() {
	state.overridden.Store(true)
	state.enabled.Store(false)
}

// Enable turns on color output.
func Enable() {
	state.overridden.Store(true)
	state.enabled.Store(true)
}

const (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"
	red   = "\033[31m"
	green = "\033[32m"
	cyan  = "\033[36m"
)

func wrap(code, s string) string {
	if !Enabled() {
		return s
	}
	return code + s + reset
}

// Success formats a success message in green.
func Success(s string) string { return wrap(green, s) }

// Error formats an error message in red.
func Error(s string) string { return wrap(red, s) }

// Errorf formats an error message with printf-style arguments.
func Errorf(format string, args ...any) string { return Error(fmt.Sprintf(format, args...)) }

// Type formats an animation type name in cyan.
func Type(s string) string { return wrap(cyan, s) }

// Header formats a header in bold.
func Header(s string) string { return wrap(bold, s) }

// Dim formats secondary information.
func Dim(s string) string { return wrap(dim, s) }
