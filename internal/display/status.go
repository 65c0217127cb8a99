package display

import (
	"io"

	"github.com/fatih/color"
)

// StatusOutput receives progress and status lines. It is stderr so that
// generated markdown on stdout can be piped.
var StatusOutput io.Writer = color.Error

func DisplayProgress(message string) {
	cyan := color.New(color.FgCyan)
	_, _ = cyan.Fprintf(StatusOutput, "⏳ %s...\n", message)
}

func DisplaySuccess(message string) {
	green := color.New(color.FgGreen)
	_, _ = green.Fprintf(StatusOutput, "✓ %s\n", message)
}

func DisplayWarning(message string) {
	yellow := color.New(color.FgYellow)
	_, _ = yellow.Fprintf(StatusOutput, "⚠ %s\n", message)
}

func DisplayError(message string) {
	red := color.New(color.FgRed, color.Bold)
	_, _ = red.Fprintf(StatusOutput, "✗ %s\n", message)
}
