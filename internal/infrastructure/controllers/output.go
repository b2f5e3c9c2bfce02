package controllers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// printPreview writes a unified diff with added lines in green, removed
// lines in red and hunk headers in cyan.
func printPreview(out io.Writer, preview string) {
	if preview == "" {
		return
	}

	for _, line := range strings.Split(strings.TrimRight(preview, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			_, _ = color.New(color.Bold).Fprintln(out, line)
		case strings.HasPrefix(line, "@@"):
			_, _ = color.New(color.FgCyan).Fprintln(out, line)
		case strings.HasPrefix(line, "+"):
			_, _ = color.New(color.FgGreen).Fprintln(out, line)
		case strings.HasPrefix(line, "-"):
			_, _ = color.New(color.FgRed).Fprintln(out, line)
		default:
			_, _ = fmt.Fprintln(out, line)
		}
	}
}
