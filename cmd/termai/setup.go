package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/termai-cli/termai/pkg/settings"
	"github.com/termai-cli/termai/pkg/termaidir"
)

// errEmptyKey is returned when first-run setup yields no API key.
var errEmptyKey = errors.New("API key cannot be empty")

// promptFunc asks the user for an API key. Split out so tests can stub the
// interactive prompt.
type promptFunc func() (string, error)

// loadSettings runs the config-store flow: ensure the data directory exists,
// return the config file verbatim when it parses, otherwise migrate the
// legacy key file or fall back to the interactive first-run prompt, then
// persist the defaults. Invalid JSON is fatal and never auto-repaired.
func loadSettings(d termaidir.Dir, prompt promptFunc) (settings.Settings, error) {
	if err := termaidir.EnsureStructure(d); err != nil {
		return settings.Settings{}, err
	}

	s, err := settings.Load(d.ConfigPath())
	if err == nil {
		return s, nil
	}

	var perr *settings.ParseError
	if errors.As(err, &perr) {
		return settings.Settings{}, err
	}

	if !errors.Is(err, os.ErrNotExist) {
		return settings.Settings{}, err
	}

	key, migrated, err := termaidir.MigrateLegacyKey(d)
	if err != nil {
		return settings.Settings{}, err
	}

	if migrated {
		fmt.Println("[termai] Migrating legacy key file to new config format...")
	}

	if key == "" {
		fmt.Println("[termai] First run! Enter your Gemini API key. Get one from aistudio.google.com")

		key, err = prompt()
		if err != nil {
			return settings.Settings{}, fmt.Errorf("read API key: %w", err)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return settings.Settings{}, errEmptyKey
		}
	}

	s = settings.Default(key)
	if err := settings.Save(d.ConfigPath(), s); err != nil {
		return settings.Settings{}, err
	}

	fmt.Printf("Configuration saved to %s\n\n", d.ConfigPath())

	return s, nil
}

// promptKey asks for the API key on the terminal, echoing dots.
func promptKey() (string, error) {
	var key string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("API Key").
			EchoMode(huh.EchoModePassword).
			Value(&key),
	))

	if err := form.Run(); err != nil {
		return "", err
	}

	return key, nil
}
