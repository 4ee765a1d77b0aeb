package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-surfstar"
)

// debugConfig holds parsed debug command configuration
type debugConfig struct {
	templatePath string
	format       string
	tokens       bool
	verbose      bool
}

// debugOutput represents JSON output for debug
type debugOutput struct {
	Template    string       `json:"template"`
	Variables   []string     `json:"variables"`
	EachTargets []string     `json:"each_targets"`
	Tree        string       `json:"tree"`
	Tokens      []debugToken `json:"tokens,omitempty"`
}

type debugToken struct {
	Kind   string `json:"kind"`
	Value  string `json:"value,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func runDebug(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseDebugFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidArguments, err)
		return ExitCodeUsageError
	}

	// Read template
	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	logger := newLogger(cfg.verbose, stderr)
	defer func() { _ = logger.Sync() }()

	engine := surfstar.MustNew(surfstar.WithLogger(logger))
	tmpl, err := engine.Parse(string(templateSource))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgParseTemplateFailed, err)
		return ExitCodeInputError
	}

	output := debugOutput{
		Template:    cfg.templatePath,
		Variables:   tmpl.Variables(),
		EachTargets: tmpl.EachTargets(),
		Tree:        tmpl.String(),
	}

	var tokenLines []string
	if cfg.tokens {
		// Parse succeeded, so tokenizing the same source cannot fail
		tokens, _ := engine.Tokenize(string(templateSource))
		output.Tokens = make([]debugToken, 0, len(tokens))
		tokenLines = make([]string, 0, len(tokens))
		for _, tok := range tokens {
			output.Tokens = append(output.Tokens, debugToken{
				Kind:   string(tok.Kind),
				Value:  tok.Value,
				Line:   tok.Position.Line,
				Column: tok.Position.Column,
			})
			tokenLines = append(tokenLines, tok.String())
		}
	}

	if cfg.format == OutputFormatJSON {
		return outputDebugJSON(output, stdout)
	}
	return outputDebugText(output, tokenLines, stdout)
}

func parseDebugFlags(args []string) (*debugConfig, error) {
	fs := flag.NewFlagSet(CmdNameDebug, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &debugConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")
	fs.BoolVar(&cfg.tokens, FlagTokens, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

func outputDebugText(output debugOutput, tokens []string, stdout io.Writer) int {
	fmt.Fprintf(stdout, DebugTextTemplate+FmtNewline, output.Template)

	writeList(stdout, DebugTextVariables, output.Variables)
	writeList(stdout, DebugTextEachTargets, output.EachTargets)

	fmt.Fprintln(stdout, DebugTextTree)
	fmt.Fprintln(stdout, output.Tree)

	if tokens != nil {
		writeList(stdout, DebugTextTokens, tokens)
	}
	return ExitCodeSuccess
}

func writeList(stdout io.Writer, header string, items []string) {
	fmt.Fprintf(stdout, header+FmtNewline, len(items))
	if len(items) == 0 {
		fmt.Fprintln(stdout, DebugTextNone)
		return
	}
	for _, item := range items {
		fmt.Fprintf(stdout, DebugTextItemFormat+FmtNewline, item)
	}
}

func outputDebugJSON(output debugOutput, stdout io.Writer) int {
	jsonBytes, _ := json.MarshalIndent(output, "", JSONIndent)
	fmt.Fprintln(stdout, string(jsonBytes))
	return ExitCodeSuccess
}
