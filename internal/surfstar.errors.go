package internal

import "fmt"

// LexerError represents a tokenization failure with position
type LexerError struct {
	Message  string
	Position Position
}

func (e *LexerError) Error() string {
	return fmt.Sprintf(ErrFmtWithPosition, e.Message, e.Position.String())
}

// ParserError represents a structurally invalid token sequence
type ParserError struct {
	Message  string
	Position Position
	Token    Token
	Cause    error
}

func (e *ParserError) Error() string {
	msg := fmt.Sprintf(ErrFmtWithPosition, e.Message, e.Position.String())
	if e.Cause != nil {
		msg = fmt.Sprintf(ErrFmtWithCause, msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error.
func (e *ParserError) Unwrap() error {
	return e.Cause
}

// RendererError represents an invalid AST shape met at render time.
type RendererError struct {
	Message  string
	NodeType string
	Position Position
	Cause    error
}

func (e *RendererError) Error() string {
	msg := e.Message
	if e.NodeType != StringValueEmpty {
		msg = fmt.Sprintf(ErrFmtWithNodeType, msg, e.NodeType)
	}
	msg = fmt.Sprintf(ErrFmtWithPosition, msg, e.Position.String())
	if e.Cause != nil {
		msg = fmt.Sprintf(ErrFmtWithCause, msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error.
func (e *RendererError) Unwrap() error {
	return e.Cause
}
