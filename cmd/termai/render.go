package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/termai-cli/termai/pkg/providers/gemini"
)

// renderOutcome formats a classified API outcome for the terminal. Exactly
// one variant is rendered; debug mode appends the raw response body for the
// empty and malformed shapes.
func renderOutcome(out gemini.Outcome, debug, markdown bool) string {
	switch out.Kind {
	case gemini.KindBlocked:
		return warningStyle.Render(fmt.Sprintf("[Blocked] Reason: %s", out.BlockReason))
	case gemini.KindText:
		if markdown {
			return renderMarkdown(out.Text)
		}
		return answerStyle.Render(out.Text)
	case gemini.KindEmpty:
		s := warningStyle.Render("[No content returned]")
		if debug {
			s += "\n" + dimStyle.Render(string(out.Raw))
		}
		return s
	default:
		s := errorStyle.Render("[Error] Invalid response format")
		if debug {
			s += "\n" + dimStyle.Render(string(out.Raw))
		}
		return s
	}
}

// renderMarkdown converts markdown text to terminal-formatted output.
// Rendering failures fall back to the plain text.
func renderMarkdown(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return text
	}

	out, err := r.Render(text)
	if err != nil {
		return text
	}

	return strings.TrimRight(out, "\n")
}
