package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// MarkdownRenderer renders a generated README for the terminal.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer uses the dark style on a terminal and the notty style
// otherwise. A width of zero means the terminal width, capped at 120.
func NewMarkdownRenderer(plainText bool, width int) (*MarkdownRenderer, error) {
	if width <= 0 {
		width = terminalWidth()
	}

	style := glamour.WithStandardStyle("dark")
	if plainText {
		style = glamour.WithStandardStyle("notty")
	}

	renderer, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return &MarkdownRenderer{renderer: renderer}, nil
}

func (mr *MarkdownRenderer) Render(content string) (string, error) {
	if content == "" {
		return "", nil
	}
	rendered, err := mr.renderer.Render(content)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return rendered, nil
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func terminalWidth() int {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w - 4
		if width > 120 {
			width = 120
		}
	}
	return width
}
