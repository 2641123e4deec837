// Package settings owns the persisted JSON settings file: its schema, the
// built-in defaults, and load/save round-trips.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings is the persisted configuration record.
type Settings struct {
	APIKey            string         `json:"api_key"`
	ModelName         string         `json:"model_name"`
	SystemInstruction string         `json:"system_instruction"`
	GenerationConfig  map[string]any `json:"generation_config"`
}

// DefaultModel is the model used when the settings file names none.
const DefaultModel = "gemini-2.5-flash"

// defaultSystemInstruction steers the model toward terminal-friendly output.
const defaultSystemInstruction = "You are a CLI assistant specific to Termux. " +
	"Do NOT use Markdown. Do NOT use backticks. " +
	"Do NOT use bolding. Just write plain text. " +
	"Keep answers concise."

// Default returns a fresh Settings record with the built-in defaults and the
// given API key. Each call builds a new value; nothing shared is mutated.
func Default(apiKey string) Settings {
	return Settings{
		APIKey:            apiKey,
		ModelName:         DefaultModel,
		SystemInstruction: defaultSystemInstruction,
		GenerationConfig: map[string]any{
			"temperature":     0.7,
			"top_p":           0.9,
			"top_k":           40,
			"maxOutputTokens": 1024,
		},
	}
}

// ParseError reports a settings file that exists but is not valid JSON.
// The file is never auto-repaired; the user must fix or delete it.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("settings: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and parses the settings file at path. The parsed record is
// returned verbatim: missing keys are left zero-valued and defaulting is the
// caller's concern. A missing file surfaces as os.ErrNotExist; malformed JSON
// surfaces as a *ParseError.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the data dir, not user input
	if err != nil {
		return Settings{}, fmt.Errorf("settings: load %s: %w", path, err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, &ParseError{Path: path, Err: err}
	}

	return s, nil
}

// Save writes the settings to path as pretty-printed JSON. The parent
// directory must already exist. Mode 0600 because the file holds a secret.
func Save(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("settings: write %s: %w", path, err)
	}

	return nil
}
