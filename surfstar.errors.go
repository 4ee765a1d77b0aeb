package surfstar

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-surfstar/internal"
)

// ErrTemplateNotFound is wrapped by every loader's not-found error.
var ErrTemplateNotFound = errors.New(ErrMsgTemplateNotFound)

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// IsZero reports whether no position is known
func (p Position) IsZero() bool {
	return p.Line == 0
}

// Location is where an error occurred: a file path, a position, or both.
type Location struct {
	File string
	Position
}

// String returns "file:line:column", "file", or "line L, column C"
func (l Location) String() string {
	switch {
	case l.File != "" && !l.IsZero():
		return l.File + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
	case l.File != "":
		return l.File
	case !l.IsZero():
		return l.Position.String()
	default:
		return ""
	}
}

// locate appends the location to msg
func locate(msg string, loc Location) string {
	switch {
	case loc.File != "" && !loc.IsZero():
		return fmt.Sprintf(ErrFmtInFileAt, msg, loc.File, loc.Line, loc.Column)
	case loc.File != "":
		return fmt.Sprintf(ErrFmtInFile, msg, loc.File)
	case !loc.IsZero():
		return fmt.Sprintf(ErrFmtAt, msg, loc.Line, loc.Column)
	default:
		return msg
	}
}

// newTaxonomyError builds a located error of the given kind
func newTaxonomyError(kind ErrorKind, code, msg string, loc Location, cause error) *cuserr.CustomError {
	text := locate(msg, loc)

	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, code, text)
	} else {
		err = cuserr.NewValidationError(code, text)
	}

	err = err.WithMetadata(MetaKeyKind, string(kind))
	if loc.File != "" {
		err = err.WithMetadata(MetaKeyFile, loc.File)
	}
	if !loc.IsZero() {
		err = err.
			WithMetadata(MetaKeyLine, strconv.Itoa(loc.Line)).
			WithMetadata(MetaKeyColumn, strconv.Itoa(loc.Column)).
			WithMetadata(MetaKeyOffset, strconv.Itoa(loc.Offset))
	}
	return err
}

// NewLexerError creates an error for malformed template markup
func NewLexerError(msg string, loc Location, cause error) error {
	return newTaxonomyError(ErrorKindLexer, ErrCodeLexer, msg, loc, cause)
}

// NewParserError creates an error for a structurally invalid token sequence
func NewParserError(msg string, loc Location, cause error) error {
	return newTaxonomyError(ErrorKindParser, ErrCodeParser, msg, loc, cause)
}

// NewRendererError creates an error for an invalid tree met while rendering
func NewRendererError(msg string, loc Location, cause error) error {
	return newTaxonomyError(ErrorKindRenderer, ErrCodeRenderer, msg, loc, cause)
}

// NewFileError creates an error for a template source that could not be loaded
func NewFileError(msg, path string, cause error) error {
	return newTaxonomyError(ErrorKindFile, ErrCodeFile, msg, Location{File: path}, cause)
}

// NewCompilationError wraps an unexpected failure with the available context
func NewCompilationError(msg string, loc Location, cause error) error {
	return newTaxonomyError(ErrorKindCompilation, ErrCodeCompilation, msg, loc, cause)
}

// NewTemplateNotFoundError creates a file error for a path no loader knows
func NewTemplateNotFoundError(path string) error {
	return NewFileError(ErrMsgTemplateNotFound, path, ErrTemplateNotFound)
}

// NewLoaderClosedError creates an error for operations on a closed loader
func NewLoaderClosedError() error {
	return cuserr.NewValidationError(ErrCodeStorage, ErrMsgLoaderClosed)
}

// KindOf reports the taxonomy kind of err, if it carries one
func KindOf(err error) (ErrorKind, bool) {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return "", false
	}
	kind, ok := customErr.GetMetadata(MetaKeyKind)
	if !ok {
		return "", false
	}
	return ErrorKind(kind), true
}

// IsLexerError reports whether err is a LEXER_ERROR
func IsLexerError(err error) bool { return isKind(err, ErrorKindLexer) }

// IsParserError reports whether err is a PARSER_ERROR
func IsParserError(err error) bool { return isKind(err, ErrorKindParser) }

// IsRendererError reports whether err is a RENDERER_ERROR
func IsRendererError(err error) bool { return isKind(err, ErrorKindRenderer) }

// IsFileError reports whether err is a FILE_ERROR
func IsFileError(err error) bool { return isKind(err, ErrorKindFile) }

// IsCompilationError reports whether err is a COMPILATION_ERROR
func IsCompilationError(err error) bool { return isKind(err, ErrorKindCompilation) }

func isKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// ErrorLocation extracts the file and position attached to a taxonomy error
func ErrorLocation(err error) (Location, bool) {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return Location{}, false
	}

	var loc Location
	found := false
	if file, ok := customErr.GetMetadata(MetaKeyFile); ok {
		loc.File = file
		found = true
	}
	if line, ok := metaInt(customErr, MetaKeyLine); ok {
		loc.Line = line
		loc.Column, _ = metaInt(customErr, MetaKeyColumn)
		loc.Offset, _ = metaInt(customErr, MetaKeyOffset)
		found = true
	}
	return loc, found
}

func metaInt(err *cuserr.CustomError, key string) (int, bool) {
	raw, ok := err.GetMetadata(key)
	if !ok {
		return 0, false
	}
	n, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return 0, false
	}
	return n, true
}

// translateError applies the propagation policy: taxonomy errors pass
// through unchanged, internal stage errors become their public kind, and
// anything else is wrapped as a compilation error. A stage error's text is
// carried once, so only its own cause is wrapped.
func translateError(err error, file string) error {
	if err == nil {
		return nil
	}
	if _, ok := KindOf(err); ok {
		return err
	}

	var lexErr *internal.LexerError
	if errors.As(err, &lexErr) {
		return NewLexerError(lexErr.Message, locationOf(file, lexErr.Position), nil)
	}

	var parseErr *internal.ParserError
	if errors.As(err, &parseErr) {
		return NewParserError(parseErr.Message, locationOf(file, parseErr.Position), parseErr.Cause)
	}

	var renderErr *internal.RendererError
	if errors.As(err, &renderErr) {
		ce := newTaxonomyError(ErrorKindRenderer, ErrCodeRenderer, renderErr.Message,
			locationOf(file, renderErr.Position), renderErr.Cause)
		if renderErr.NodeType != "" {
			ce = ce.WithMetadata(MetaKeyNodeType, renderErr.NodeType)
		}
		return ce
	}

	return NewCompilationError(ErrMsgCompilationFailed, Location{File: file}, err)
}

func locationOf(file string, pos internal.Position) Location {
	return Location{File: file, Position: internalPosToPublic(pos)}
}

// internalPosToPublic converts internal Position to public Position.
func internalPosToPublic(pos internal.Position) Position {
	return Position{
		Offset: pos.Offset,
		Line:   pos.Line,
		Column: pos.Column,
	}
}
