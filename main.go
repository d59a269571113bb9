package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/polytyper/polytyper/internal/config"
	"github.com/polytyper/polytyper/internal/emitter"
	"github.com/polytyper/polytyper/internal/errors"
	"github.com/polytyper/polytyper/internal/models"
	"github.com/polytyper/polytyper/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	Input         string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output        string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Lang          string `help:"Target language for generated types (default typescript)." short:"l"`
	RootName      string `help:"Name for the root type (default Root)." short:"r"`
	Config        string `help:"Path to config file. Defaults to the nearest .polytyper.yml." short:"c" type:"path"`
	Optional      bool   `help:"Emit every field with the language's optional wrapper."`
	ListLanguages bool   `help:"List supported target languages and exit."`
	Debug         bool   `help:"Enable debug logging." short:"d"`
	Version       bool   `help:"Show version information." short:"v"`
	Interactive   bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug bool
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("polytyper"),
		kong.Description("A tool to convert JSON into type definitions for ten languages"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("polytyper version %s\n", Version)
		return
	}

	if CLI.ListLanguages {
		for _, lang := range emitter.Languages() {
			fmt.Println(lang)
		}
		return
	}

	err = run(&Context{Debug: CLI.Debug})
	if err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		fmt.Fprintf(os.Stderr, "\nFor help, run: polytyper --help\n")

		os.Exit(1)
	}
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Parse JSON input
	value, err := parseInput()
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}

	// 2. Resolve the target language and its options
	opts, err := resolveOptions()
	if err != nil {
		return err
	}

	// 3. Generate type definitions
	code, err := emitter.Generate(value, opts)
	if err != nil {
		return errors.NewGenerateError("failed to generate type definitions", err)
	}

	// 4. Output the result
	return writeOutput(code)
}

// resolveOptions merges the config file (if any) with CLI overrides and
// resolves the target language. A flag left empty was not given, so
// precedence is flags, then the config file, then built-in defaults.
func resolveOptions() (emitter.Options, error) {
	cfg := config.NewConfig()

	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if CLI.Lang != "" {
		cfg.Language = CLI.Lang
	}
	lang, err := emitter.ParseLanguage(cfg.Language)
	if err != nil {
		return nil, err
	}

	if CLI.RootName != "" {
		cfg.RootName = CLI.RootName
	}
	if cfg.RootName == "" {
		cfg.RootName = emitter.DefaultRootName
	}
	if CLI.Optional {
		cfg.Optional = true
	}

	return cfg.Options(lang)
}

// parseInput reads JSON from file or stdin
func parseInput() (models.Value, error) {
	if CLI.Input != "" {
		// Parse from file
		return parser.ParseFile(CLI.Input)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		// No data provided on stdin and not in interactive mode
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(jsonData))
}

// writeOutput writes code to file or stdout
func writeOutput(code string) error {
	if CLI.Output != "" {
		// Write to file
		err := os.WriteFile(CLI.Output, []byte(code), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Generated code written to %s\n", CLI.Output)
		return nil
	}

	// Write to stdout
	_, err := fmt.Println(strings.TrimSpace(code))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (models.Value, error) {
	fmt.Fprintln(os.Stderr, "Polytyper Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData)
}
