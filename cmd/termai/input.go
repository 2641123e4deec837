package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// stdinIsPiped reports whether standard input carries piped data rather than
// an interactive terminal.
func stdinIsPiped() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// stdoutIsTerminal reports whether standard output is a terminal. Markdown
// rendering is disabled for piped output to keep it machine-readable.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// assembleQuery builds the query text from piped stdin and the non-flag
// arguments. Piped input is read fully and trimmed; any remaining arguments
// are appended after a newline as an additional instruction line. Without a
// pipe, the arguments join with single spaces. An empty result means there
// was no input at all.
func assembleQuery(stdin io.Reader, piped bool, args []string) (string, error) {
	if !piped {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	query := strings.TrimSpace(string(data))
	if len(args) > 0 {
		if query != "" {
			query += "\n"
		}
		query += strings.Join(args, " ")
	}

	return query, nil
}
