package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameDebug    = "debug"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagTemplate   = "template"
	FlagData       = "data"
	FlagDataFile   = "data-file"
	FlagOutput     = "output"
	FlagFormat     = "format"
	FlagStrictMode = "strict"
	FlagTokens     = "tokens"
	FlagVerbose    = "verbose"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagOutputShort   = "o"
	FlagFormatShort   = "F"
	FlagVerboseShort  = "v"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand      = "unknown command"
	ErrMsgMissingTemplate     = "template source required"
	ErrMsgInvalidArguments    = "invalid arguments"
	ErrMsgInvalidData         = "invalid data"
	ErrMsgReadFileFailed      = "failed to read file"
	ErrMsgWriteOutputFailed   = "failed to write output"
	ErrMsgParseTemplateFailed = "template parsing failed"
	ErrMsgExecuteFailed       = "template execution failed"
	ErrMsgInvalidFormat       = "invalid output format"
	ErrMsgConflictingData     = "use either --data or --data-file, not both"
	ErrMsgLoggerFailed        = "failed to create logger"
)

// Help text templates
const (
	HelpMainUsage = `go-surfstar - {{var}} and {{#each}} template compiler CLI

Usage:
    surfstar <command> [options]

Commands:
    render      Render a template with data
    validate    Validate a template without executing
    debug       Show the syntax tree, variables and tokens of a template
    version     Show version information
    help        Show help for a command

Use "surfstar help <command>" for more information about a command.`

	HelpRenderUsage = `Render a template with data

Usage:
    surfstar render [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -d, --data <json>       JSON data string
    -f, --data-file <file>  Data file, JSON or YAML (by extension)
    -o, --output <file>     Output file (default: stdout)
    -v, --verbose           Log pipeline stages to stderr

Examples:
    surfstar render -t template.txt -d '{"name": "Alice"}'
    surfstar render -t template.txt -f data.yaml
    cat template.txt | surfstar render -t - -d '{"name": "Bob"}'
    surfstar render -t template.txt -f data.json -o output.txt`

	HelpValidateUsage = `Validate a template without executing

Usage:
    surfstar validate [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -F, --format <format>   Output format: text, json (default: text)
    --strict                Treat warnings as errors

Examples:
    surfstar validate -t template.txt
    surfstar validate -t template.txt --strict
    cat template.txt | surfstar validate -t -`

	HelpDebugUsage = `Show the syntax tree, variables and tokens of a template

Usage:
    surfstar debug [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -F, --format <format>   Output format: text, json (default: text)
    --tokens                Include the token stream
    -v, --verbose           Log pipeline stages to stderr

Examples:
    surfstar debug -t template.txt
    surfstar debug -t template.txt --tokens -F json`

	HelpVersionUsage = `Show version information

Usage:
    surfstar version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    surfstar help [command]

Commands:
    render      Show help for render command
    validate    Show help for validate command
    debug       Show help for debug command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-surfstar version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
	VersionsFileName    = "versions.yaml"
)

// Validation output format templates
const (
	ValidationTextSuccess      = "Template is valid"
	ValidationTextIssueHeader  = "Validation issues:"
	ValidationTextIssueFormat  = "  [%s] %s at line %d, column %d"
	ValidationTextErrorSummary = "%d error(s), %d warning(s)"
)

// Debug output format templates
const (
	DebugTextTemplate    = "Template: %s"
	DebugTextVariables   = "Variables (%d):"
	DebugTextEachTargets = "Each targets (%d):"
	DebugTextTokens      = "Tokens (%d):"
	DebugTextTree        = "Syntax tree:"
	DebugTextItemFormat  = "  %s"
	DebugTextNone        = "  (none)"
)

// Severity names for output
const (
	SeverityNameError   = "ERROR"
	SeverityNameWarning = "WARNING"
	SeverityNameInfo    = "INFO"
)

// CLI metadata
const (
	CLIName        = "surfstar"
	CLIDescription = "{{var}} and {{#each}} template compiler CLI"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
	JSONIndent         = "  "
)
