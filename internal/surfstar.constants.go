package internal

// TokenType represents the type of a lexical token
type TokenType string

// Token type constants
const (
	TokenTypeText       TokenType = "TEXT"
	TokenTypeVariable   TokenType = "VARIABLE"
	TokenTypeOpenBrace  TokenType = "OPEN_BRACE"
	TokenTypeCloseBrace TokenType = "CLOSE_BRACE"
	TokenTypeEachStart  TokenType = "EACH_START"
	TokenTypeEachEnd    TokenType = "EACH_END"
)

// NodeType identifies AST node types
type NodeType int

// Node type constants
const (
	NodeTypeTemplate NodeType = iota
	NodeTypeText
	NodeTypeVariable
	NodeTypeEach
)

// Node type string names for debugging
const (
	NodeTypeNameTemplate = "TEMPLATE"
	NodeTypeNameText     = "TEXT"
	NodeTypeNameVariable = "VARIABLE"
	NodeTypeNameEach     = "EACH"
	NodeTypeNameUnknown  = "UNKNOWN"
)

// String returns the string representation of the node type
func (n NodeType) String() string {
	switch n {
	case NodeTypeTemplate:
		return NodeTypeNameTemplate
	case NodeTypeText:
		return NodeTypeNameText
	case NodeTypeVariable:
		return NodeTypeNameVariable
	case NodeTypeEach:
		return NodeTypeNameEach
	default:
		return NodeTypeNameUnknown
	}
}

// Character constants
const (
	CharOpenBrace   = '{'
	CharCloseBrace  = '}'
	CharNewline     = '\n'
	CharSpace       = ' '
	CharTab         = '\t'
	CharCarriageRet = '\r'
)

// String constants for delimiter matching
const (
	StrOpenDelim  = "{{"
	StrCloseDelim = "}}"
	StrEachStart  = "{{#each"
	StrEachEnd    = "{{/each"
	StrNewline    = "\n"
	StrWhitespace = " \t\r\n"
)

// Identifiers bound inside an each-body
const (
	IdentThis  = "this"
	IdentIndex = "@index"
)

// PathSeparator splits dotted variable paths
const PathSeparator = "."

// Log message constants
const (
	LogMsgLexerCreated    = "lexer created"
	LogMsgTokenizerStart  = "starting tokenization"
	LogMsgTokenizerEnd    = "tokenization complete"
	LogMsgParserCreated   = "parser created"
	LogMsgParserStart     = "starting parse"
	LogMsgParserEnd       = "parse complete"
	LogMsgRendererCreated = "renderer created"
	LogMsgRenderStart     = "starting render"
	LogMsgRenderEnd       = "render complete"
	LogMsgEachSkipped     = "each target is not a list, rendering nothing"
	LogMsgEachIterate     = "iterating each block"
)

// Log field names
const (
	LogFieldSource = "source_length"
	LogFieldTokens = "token_count"
	LogFieldNodes  = "node_count"
	LogFieldOutput = "output_length"
	LogFieldArray  = "array"
	LogFieldItems  = "items"
	LogFieldLine   = "line"
	LogFieldColumn = "column"
)

// Error message constants for the lexer
const (
	ErrMsgEmptyVariable    = "empty variable name"
	ErrMsgMissingEachName  = "missing array name in each tag"
	ErrMsgUnclosedEachTag  = "unclosed each tag"
	ErrMsgUnclosedEachEnd  = "unclosed each end tag"
	ErrMsgUnmatchedClose   = "unmatched closing braces"
	ErrMsgUnclosedOpen     = "unclosed opening braces"
	ErrMsgUnmatchedEachEnd = "each end without matching each start"
	ErrMsgUnclosedEach     = "unclosed each block"
)

// Error message constants for the parser
const (
	ErrMsgUnexpectedEachEnd = "unexpected each end"
	ErrMsgUnexpectedToken   = "unexpected token"
)

// Error message constants for the renderer
const (
	ErrMsgExpectedTemplate = "expected template node"
	ErrMsgUnknownNodeType  = "unknown node type"
	ErrMsgRenderPanic      = "unexpected failure while rendering"
)

// Error format string constants (for Error() methods)
const (
	ErrFmtWithPosition = "%s at %s"
	ErrFmtWithCause    = "%s: %v"
	ErrFmtWithNodeType = "%s: %s"
)

// String format constants for AST String() methods
const (
	FmtIndent              = "  "
	MaxStringDisplayLength = 40
	TruncatedStringLength  = 37
	TruncationSuffix       = "..."
)

// Value rendering constants
const (
	ListSeparator = ","
	BoolTrue      = "true"
	BoolFalse     = "false"
)

// StringValueEmpty is the empty string
const StringValueEmpty = ""
