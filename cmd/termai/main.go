// Command termai forwards one query to the Gemini generateContent API and
// prints the textual reply. One request per invocation, then exit.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/termai-cli/termai/pkg/modeladapter"
	"github.com/termai-cli/termai/pkg/providers/gemini"
	"github.com/termai-cli/termai/pkg/settings"
	"github.com/termai-cli/termai/pkg/termaidir"
)

// Seams for tests: the API endpoint and the data directory resolver.
var (
	apiBaseURL     = gemini.DefaultBaseURL
	resolveDataDir = termaidir.Default
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, rest := parseArgs(args)

	// Help pre-empts everything else, including config loading.
	if opts.help {
		fmt.Println(helpText())
		return 0
	}

	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	dir, err := resolveDataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if opts.config {
		// Run the config store first so a fresh install gets a file to edit.
		if _, err := loadSettings(dir, promptKey); err != nil {
			printSetupError(err)
			return 1
		}

		if err := openEditor(dir.ConfigPath()); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}

		return 0
	}

	query, err := assembleQuery(os.Stdin, stdinIsPiped(), rest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if query == "" {
		fmt.Println(helpText())
		return 0
	}

	cfg, err := loadSettings(dir, promptKey)
	if err != nil {
		printSetupError(err)
		return 1
	}

	apiKey := cfg.APIKey
	if env := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); env != "" {
		apiKey = env
	}

	if apiKey == "" {
		fmt.Fprintln(os.Stderr, errorStyle.Render("[Error] API key is empty. Run termai --config to set it."))
		return 1
	}

	model := cfg.ModelName
	if model == "" {
		model = settings.DefaultModel
	}

	if opts.debug {
		fmt.Fprintf(os.Stderr, "[Debug] Model: %s | Temp: %v\n", model, cfg.GenerationConfig["temperature"])
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := gemini.New(apiBaseURL, apiKey, model)

	out, err := client.Generate(ctx, query, cfg.SystemInstruction, cfg.GenerationConfig)
	if err != nil {
		var serr *modeladapter.StatusError
		if errors.As(err, &serr) {
			if opts.debug {
				fmt.Fprintf(os.Stderr, "[Debug] Status: %d\n", serr.Code)
			}

			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[Error %d]", serr.Code)))
			fmt.Fprintln(os.Stderr, serr.Body)

			return 1
		}

		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[Connection Error] %v", err)))

		return 1
	}

	if opts.debug {
		fmt.Fprintf(os.Stderr, "[Debug] Status: %d\n", out.Status)
	}

	fmt.Println(renderOutcome(out, opts.debug, opts.markdown && stdoutIsTerminal()))

	return 0
}

// printSetupError prints config-store failures, with the fix-or-delete
// guidance for unparseable config files.
func printSetupError(err error) {
	var perr *settings.ParseError
	if errors.As(err, &perr) {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[Error] Your config file (%s) is invalid JSON.", perr.Path)))
		fmt.Fprintln(os.Stderr, "Please fix it or delete it to reset defaults.")

		return
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return err
}
