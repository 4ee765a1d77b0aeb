package internal

import "fmt"

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

// Token represents a lexical token produced by the lexer.
// Tokens are never mutated after creation.
type Token struct {
	Type     TokenType // The type of token
	Value    string    // Literal text, trimmed variable path, or each array path
	Position Position  // Source position
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	if t.Value == "" {
		return fmt.Sprintf("Token{%s @ %s}", t.Type, t.Position)
	}
	return fmt.Sprintf("Token{%s: %q @ %s}", t.Type, t.Value, t.Position)
}

// IsText returns true if this is a text token
func (t Token) IsText() bool {
	return t.Type == TokenTypeText
}

// IsVariable returns true if this is a variable token
func (t Token) IsVariable() bool {
	return t.Type == TokenTypeVariable
}

// IsEachStart returns true if this token opens an each block
func (t Token) IsEachStart() bool {
	return t.Type == TokenTypeEachStart
}

// IsEachEnd returns true if this token closes an each block
func (t Token) IsEachEnd() bool {
	return t.Type == TokenTypeEachEnd
}

// NewTextToken creates a text token with the given content
func NewTextToken(content string, pos Position) Token {
	return Token{
		Type:     TokenTypeText,
		Value:    content,
		Position: pos,
	}
}

// NewVariableToken creates a variable token carrying the trimmed path
func NewVariableToken(path string, pos Position) Token {
	return Token{
		Type:     TokenTypeVariable,
		Value:    path,
		Position: pos,
	}
}

// NewOpenBraceToken creates an open brace token
func NewOpenBraceToken(pos Position) Token {
	return Token{
		Type:     TokenTypeOpenBrace,
		Value:    StrOpenDelim,
		Position: pos,
	}
}

// NewCloseBraceToken creates a close brace token
func NewCloseBraceToken(pos Position) Token {
	return Token{
		Type:     TokenTypeCloseBrace,
		Value:    StrCloseDelim,
		Position: pos,
	}
}

// NewEachStartToken creates an each start token carrying the array path
func NewEachStartToken(arrayName string, pos Position) Token {
	return Token{
		Type:     TokenTypeEachStart,
		Value:    arrayName,
		Position: pos,
	}
}

// NewEachEndToken creates an each end token
func NewEachEndToken(pos Position) Token {
	return Token{
		Type:     TokenTypeEachEnd,
		Position: pos,
	}
}
