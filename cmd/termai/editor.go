package main

import (
	"fmt"
	"os"
	"os/exec"
)

// defaultEditor is used when $EDITOR is unset.
const defaultEditor = "nano"

// openEditor opens the config file in the user's editor, wired to the
// terminal, and waits for it to exit.
func openEditor(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	fmt.Printf("Opening config in %s...\n", editor)

	cmd := exec.Command(editor, path) //nolint:gosec // editor choice is the user's own $EDITOR
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run editor %s: %w", editor, err)
	}

	return nil
}
