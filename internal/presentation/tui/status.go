package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// Status line helpers for the CLI. Colors degrade gracefully on dumb
// terminals via termenv's profile detection.

var profile = termenv.ColorProfile()

// Success prints a green confirmation line.
func Success(format string, args ...any) {
	line := termenv.String("✔ " + fmt.Sprintf(format, args...)).Foreground(profile.Color("#22c55e"))
	fmt.Println(line)
}

// Info prints a neutral progress line.
func Info(format string, args ...any) {
	line := termenv.String("• " + fmt.Sprintf(format, args...)).Foreground(profile.Color("#60a5fa"))
	fmt.Println(line)
}

// Fail prints a red failure line.
func Fail(format string, args ...any) {
	line := termenv.String("✘ " + fmt.Sprintf(format, args...)).Foreground(profile.Color("#ef4444"))
	fmt.Println(line)
}
