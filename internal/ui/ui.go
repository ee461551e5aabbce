// Package ui prints the terminal output of the devserve commands.
package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

var (
	failure = color.New(color.FgRed)
	warning = color.New(color.FgYellow)
	success = color.New(color.FgGreen)
	notice  = color.New(color.FgCyan)
)

// DisableColor turns off colored output everywhere, for --no-color and
// NO_COLOR environments.
func DisableColor() {
	color.NoColor = true
	pterm.DisableColor()
}

// Error prints an error message.
func Error(format string, a ...any) {
	fmt.Printf("%s %s\n", failure.Sprint("❌"), fmt.Sprintf(format, a...))
}

// Warning prints a warning message.
func Warning(format string, a ...any) {
	fmt.Printf("%s %s\n", warning.Sprint("⚠️ "), fmt.Sprintf(format, a...))
}

// Success prints a success message.
func Success(format string, a ...any) {
	fmt.Printf("%s %s\n", success.Sprint("✅"), fmt.Sprintf(format, a...))
}

// Hint prints a usage hint.
func Hint(format string, a ...any) {
	fmt.Printf("%s %s\n", notice.Sprint("💡"), fmt.Sprintf(format, a...))
}
