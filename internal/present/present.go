// Package present formats rendered battle narrative for output.
//
// Narrative text is already markdown-flavored: move names are wrapped in `**`
// and lines are separated by single newlines. The plain presenter strips the
// emphasis, the markdown presenter passes text through, and the ansi presenter
// renders it for a terminal with glamour.
package present

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"battletext/internal/config"
)

// Presenter turns narrative text into output text.
type Presenter interface {
	Present(text string) (string, error)
	// Header returns a heading line used to separate perspectives.
	Header(title string) string
}

// Options tunes presenter construction.
type Options struct {
	WordWrap int
	Style    string
}

// New returns the presenter for format.
func New(format string, opts Options) (Presenter, error) {
	switch format {
	case config.FormatPlain, "":
		return plain{}, nil
	case config.FormatMarkdown:
		return markdown{}, nil
	case config.FormatANSI:
		return newANSI(opts)
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
}

type plain struct{}

func (plain) Present(text string) (string, error) {
	return StripEmphasis(text), nil
}

func (plain) Header(title string) string {
	return "=== " + title + " ===\n"
}

type markdown struct{}

func (markdown) Present(text string) (string, error) {
	return text, nil
}

func (markdown) Header(title string) string {
	return "## " + title + "\n\n"
}

type ansi struct {
	renderer *glamour.TermRenderer
}

func newANSI(opts Options) (*ansi, error) {
	style := opts.Style
	if style == "" {
		style = "dark"
	}
	wrap := opts.WordWrap
	if wrap <= 0 {
		wrap = 100
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	return &ansi{renderer: renderer}, nil
}

func (a *ansi) Present(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	out, err := a.renderer.Render(text)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

func (a *ansi) Header(title string) string {
	out, err := a.renderer.Render("# " + title)
	if err != nil {
		return title + "\n"
	}
	return out
}

// StripEmphasis removes markdown bold markers.
func StripEmphasis(text string) string {
	return strings.ReplaceAll(text, "**", "")
}
