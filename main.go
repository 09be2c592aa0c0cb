package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/binaryArrow/cats/internal/config"
	"github.com/binaryArrow/cats/internal/document"
	"github.com/binaryArrow/cats/internal/errors"
	"github.com/binaryArrow/cats/internal/fuzzer"
	"github.com/binaryArrow/cats/internal/match"
	"github.com/binaryArrow/cats/internal/models"
)

// Version information
const Version = "0.1.0"

// CLI defines the command-line interface
var CLI struct {
	Mutate  MutateCmd        `cmd:"" help:"Apply a payload mutation to a JSON document."`
	Match   MatchCmd         `cmd:"" help:"Evaluate a stored HTTP response against match filters."`
	List    ListCmd          `cmd:"" help:"List the registered mutation strategies."`
	Version kong.VersionFlag `help:"Show version information." short:"v"`
}

// MutateCmd applies either a registered strategy or a direct
// oneOf/anyOf union resolution to a payload.
type MutateCmd struct {
	Input       string   `help:"Path to the payload file. If not specified, reads from stdin." short:"i" type:"path"`
	Fuzzer      string   `help:"Name of the mutation strategy to apply." short:"f"`
	Field       string   `help:"Field path the strategy targets."`
	Target      string   `help:"Target path for a direct oneOf/anyOf resolution."`
	Value       string   `help:"Replacement value, a pre-serialized JSON literal or scalar."`
	Alternative string   `help:"Alternative key to rename when the target path is missing."`
	Eliminate   []string `help:"Sibling keys to remove after the rename."`
}

// Run executes the mutate command.
func (m *MutateCmd) Run() error {
	payload, err := readInput(m.Input)
	if err != nil {
		return err
	}

	if m.Fuzzer != "" {
		registry := fuzzer.NewRegistry()
		strategy, ok := registry.Get(m.Fuzzer)
		if !ok {
			return errors.NewInputError(
				fmt.Sprintf("unknown fuzzer '%s', available: %s", m.Fuzzer, strings.Join(registry.Names(), ", ")), nil)
		}
		mutated, err := strategy.Apply(payload, m.Field)
		if err != nil {
			return err
		}
		fmt.Println(mutated)
		return nil
	}

	if m.Target == "" {
		return errors.NewInputError("either --fuzzer or --target must be supplied", errors.ErrNoInput)
	}
	fmt.Println(document.ResolveUnion(payload, m.Target, m.Alternative, m.Value, m.Eliminate))
	return nil
}

// MatchCmd builds a response descriptor from a stored body and decides
// whether the configured filters would suppress it.
type MatchCmd struct {
	Body           string   `help:"Path to the response body file. If not specified, reads from stdin." short:"b" type:"path"`
	Code           int      `help:"HTTP response code of the stored response." default:"200"`
	Config         string   `help:"Path to a YAML file with match filters; overrides the filter flags." type:"path"`
	Codes          []string `help:"Response code filters, exact (200) or class patterns (4XX)."`
	Lines          []int64  `help:"Line count filters."`
	Words          []int64  `help:"Word count filters."`
	Sizes          []int64  `help:"Byte size filters."`
	Regex          string   `help:"Full-string regex the body must match."`
	MatchInput     bool     `help:"Also report when the sent value is reflected in the body."`
	ReflectedValue string   `help:"Sent value to test for reflection in the body."`
}

// Run executes the match command.
func (m *MatchCmd) Run() error {
	body, err := readInput(m.Body)
	if err != nil {
		return err
	}

	criteria, err := m.criteria()
	if err != nil {
		return err
	}

	response := models.NewResponse(m.Code, body)
	if criteria.Evaluate(response) {
		fmt.Printf("matched:%s\n", criteria.Describe())
	} else {
		fmt.Println("not matched")
	}
	if m.ReflectedValue != "" && criteria.IsInputReflected(response, m.ReflectedValue) {
		fmt.Printf("input reflected: %s\n", m.ReflectedValue)
	}
	return nil
}

func (m *MatchCmd) criteria() (match.Criteria, error) {
	if m.Config != "" {
		cfg, err := config.LoadFromFile(m.Config)
		if err != nil {
			return match.Criteria{}, err
		}
		return cfg.Criteria(), nil
	}

	cfg := config.Config{
		MatchResponseCodes: m.Codes,
		MatchResponseLines: m.Lines,
		MatchResponseWords: m.Words,
		MatchResponseSizes: m.Sizes,
		MatchResponseRegex: m.Regex,
		MatchInput:         m.MatchInput,
	}
	if err := cfg.Validate(); err != nil {
		return match.Criteria{}, err
	}
	return cfg.Criteria(), nil
}

// ListCmd prints the registered strategies.
type ListCmd struct{}

// Run executes the list command.
func (l *ListCmd) Run() error {
	registry := fuzzer.NewRegistry()
	for _, name := range registry.Names() {
		strategy, _ := registry.Get(name)
		fmt.Printf("%s: %s\n", name, strategy.Description())
	}
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("cats"),
		kong.Description("Schema-aware JSON payload mutation and HTTP response matching for API fuzzing."),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// readInput reads a payload or body from a file, or from stdin when no
// path was given.
func readInput(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.NewInputError(fmt.Sprintf("file '%s' not found", path), err)
			}
			return "", errors.NewInputError(fmt.Sprintf("failed to read file '%s'", path), err)
		}
		return string(data), nil
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	if len(data) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return string(data), nil
}
