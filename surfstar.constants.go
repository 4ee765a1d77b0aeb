package surfstar

import "time"

// Error code constants for categorization
const (
	ErrCodeLexer       = "SURFSTAR_LEXER"
	ErrCodeParser      = "SURFSTAR_PARSER"
	ErrCodeRenderer    = "SURFSTAR_RENDERER"
	ErrCodeFile        = "SURFSTAR_FILE"
	ErrCodeCompilation = "SURFSTAR_COMPILATION"
	ErrCodeData        = "SURFSTAR_DATA"
	ErrCodeStorage     = "SURFSTAR_STORAGE"
)

// ErrorKind names a class of the compile-time error taxonomy
type ErrorKind string

// Error kinds
const (
	ErrorKindLexer       ErrorKind = "LEXER_ERROR"
	ErrorKindParser      ErrorKind = "PARSER_ERROR"
	ErrorKindRenderer    ErrorKind = "RENDERER_ERROR"
	ErrorKindFile        ErrorKind = "FILE_ERROR"
	ErrorKindCompilation ErrorKind = "COMPILATION_ERROR"
)

// Metadata keys attached to taxonomy errors
const (
	MetaKeyKind     = "kind"
	MetaKeyFile     = "file"
	MetaKeyLine     = "line"
	MetaKeyColumn   = "column"
	MetaKeyOffset   = "offset"
	MetaKeyNodeType = "node_type"
	MetaKeyFormat   = "format"
	MetaKeyTemplate = "template"
)

// Error messages - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	ErrMsgCompilationFailed = "template compilation failed"
	ErrMsgTemplateNotFound  = "template not found"
	ErrMsgLoadFailed        = "failed to load template"
	ErrMsgNoLoader          = "no source loader configured"
	ErrMsgEmptyPath         = "template path is empty"
	ErrMsgLoaderClosed      = "source loader is closed"
	ErrMsgInvalidUTF8       = "template source is not valid UTF-8"

	ErrMsgDataDecodeFailed  = "failed to decode data document"
	ErrMsgDataNotMapping    = "data document must be a mapping"
	ErrMsgDataReadFailed    = "failed to read data document"
	ErrMsgUnknownDataFormat = "unknown data format"

	ErrMsgThisOutsideEach  = "this is only bound inside an each block"
	ErrMsgIndexOutsideEach = "@index is only bound inside an each block"
	ErrMsgEmptyEachBody    = "each block has an empty body"
)

// Error message formats
const (
	ErrFmtInFileAt = "%s in %s:%d:%d"
	ErrFmtInFile   = "%s in %s"
	ErrFmtAt       = "%s at line %d, column %d"
)

// PostgreSQL loader messages
const (
	ErrMsgPostgresConnectionFailed = "failed to connect to PostgreSQL"
	ErrMsgPostgresQueryFailed      = "PostgreSQL query failed"
	ErrMsgPostgresMigrationFailed  = "PostgreSQL migration failed"
	ErrMsgPostgresEmptyConnString  = "PostgreSQL connection string is empty"
	ErrMsgPostgresAlreadyClosed    = "PostgreSQL loader is already closed"
)

// PostgreSQL loader defaults
const (
	PostgresDriverName             = "postgres"
	PostgresTablePrefix            = "surfstar_"
	PostgresDefaultMaxOpenConns    = 25
	PostgresDefaultMaxIdleConns    = 5
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultConnMaxIdleTime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 30 * time.Second
)

// Cache defaults
const (
	CacheDefaultTTL              = 5 * time.Minute
	CacheDefaultMaxEntries       = 1000
	CacheDefaultNegativeCacheTTL = 30 * time.Second
)

// Data document formats
const (
	DataFormatJSON DataFormat = "json"
	DataFormatYAML DataFormat = "yaml"
)

// Data document extensions
const (
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
	ExtJSON = ".json"
)

// Log messages
const (
	LogMsgEngineCreated  = "engine created"
	LogMsgLoadFailed     = "template load failed"
	LogMsgTemplateLoaded = "template loaded"
	LogMsgCacheHit       = "loader cache hit"
	LogMsgCacheMiss      = "loader cache miss"
)

// Log field names
const (
	LogFieldPath   = "path"
	LogFieldLength = "source_length"
	LogFieldError  = "error"
)

// ValidationSeverity indicates the severity of a validation issue.
type ValidationSeverity int

const (
	// SeverityError indicates a template that cannot compile
	SeverityError ValidationSeverity = iota
	// SeverityWarning indicates a construct that renders nothing
	SeverityWarning
	// SeverityInfo indicates informational feedback
	SeverityInfo
)

// Validation severity string names
const (
	SeverityNameError   = "error"
	SeverityNameWarning = "warning"
	SeverityNameInfo    = "info"
	SeverityNameUnknown = "unknown"
)

// String returns the string representation of the validation severity
func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return SeverityNameError
	case SeverityWarning:
		return SeverityNameWarning
	case SeverityInfo:
		return SeverityNameInfo
	default:
		return SeverityNameUnknown
	}
}
