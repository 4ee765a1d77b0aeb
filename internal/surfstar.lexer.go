package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Lexer tokenizes template source into a token stream
type Lexer struct {
	source string
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
	logger *zap.Logger

	buf      strings.Builder // Pending literal run
	bufStart Position        // Where the pending run began
}

// NewLexer creates a new lexer for the given source
func NewLexer(source string, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgLexerCreated, zap.Int(LogFieldSource, len(source)))
	return &Lexer{
		source: source,
		pos:    0,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Tokenize processes the source and returns a balanced token stream
func (l *Lexer) Tokenize() ([]Token, error) {
	l.logger.Debug(LogMsgTokenizerStart)
	var tokens []Token

	for !l.isAtEnd() {
		switch {
		case l.matchStr(StrEachStart):
			tokens = l.flushText(tokens)
			tok, err := l.scanEachStart()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case l.matchStr(StrEachEnd):
			tokens = l.flushText(tokens)
			tok, err := l.scanEachEnd()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case l.matchStr(StrOpenDelim):
			tokens = l.flushText(tokens)
			pos := l.currentPosition()
			l.advanceN(len(StrOpenDelim))
			tokens = append(tokens, NewOpenBraceToken(pos))

		case l.matchStr(StrCloseDelim):
			tok, err := l.flushVariable()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			pos := l.currentPosition()
			l.advanceN(len(StrCloseDelim))
			tokens = append(tokens, NewCloseBraceToken(pos))

		default:
			l.bufferChar()
		}
	}

	tokens = l.flushText(tokens)

	if err := validateBalance(tokens); err != nil {
		return nil, err
	}

	l.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldTokens, len(tokens)))
	return tokens, nil
}

// scanEachStart consumes {{#each <path>}} and returns the EACH_START token
func (l *Lexer) scanEachStart() (Token, error) {
	pos := l.currentPosition()
	nameStart := l.pos + len(StrEachStart)

	end := strings.Index(l.source[nameStart:], StrCloseDelim)
	if end < 0 {
		return Token{}, &LexerError{Message: ErrMsgUnclosedEachTag, Position: pos}
	}

	name := strings.TrimSpace(l.source[nameStart : nameStart+end])
	if name == StringValueEmpty {
		return Token{}, &LexerError{Message: ErrMsgMissingEachName, Position: pos}
	}

	l.advanceN(len(StrEachStart) + end + len(StrCloseDelim))
	return NewEachStartToken(name, pos), nil
}

// scanEachEnd consumes {{/each}} and returns the EACH_END token
func (l *Lexer) scanEachEnd() (Token, error) {
	pos := l.currentPosition()
	rest := l.pos + len(StrEachEnd)

	end := strings.Index(l.source[rest:], StrCloseDelim)
	if end < 0 {
		return Token{}, &LexerError{Message: ErrMsgUnclosedEachEnd, Position: pos}
	}

	l.advanceN(len(StrEachEnd) + end + len(StrCloseDelim))
	return NewEachEndToken(pos), nil
}

// flushText emits the pending run as a TEXT token, if there is one
func (l *Lexer) flushText(tokens []Token) []Token {
	if l.buf.Len() == 0 {
		return tokens
	}
	tokens = append(tokens, NewTextToken(l.buf.String(), l.bufStart))
	l.buf.Reset()
	return tokens
}

// flushVariable emits the pending run, trimmed, as a VARIABLE token
func (l *Lexer) flushVariable() (Token, error) {
	pos := l.bufStart
	if l.buf.Len() == 0 {
		pos = l.currentPosition()
	}

	name := strings.TrimSpace(l.buf.String())
	l.buf.Reset()
	if name == StringValueEmpty {
		return Token{}, &LexerError{Message: ErrMsgEmptyVariable, Position: pos}
	}
	return NewVariableToken(name, pos), nil
}

// bufferChar moves the current character into the pending run
func (l *Lexer) bufferChar() {
	if l.buf.Len() == 0 {
		l.bufStart = l.currentPosition()
	}
	l.buf.WriteByte(l.advance())
}

// validateBalance checks brace pairing and each-block pairing in one pass
func validateBalance(tokens []Token) error {
	openCount := 0
	var lastOpen Position
	var eachStack []Position

	for _, tok := range tokens {
		switch tok.Type {
		case TokenTypeOpenBrace:
			openCount++
			lastOpen = tok.Position
		case TokenTypeCloseBrace:
			if openCount == 0 {
				return &LexerError{Message: ErrMsgUnmatchedClose, Position: tok.Position}
			}
			openCount--
		case TokenTypeEachStart:
			eachStack = append(eachStack, tok.Position)
		case TokenTypeEachEnd:
			if len(eachStack) == 0 {
				return &LexerError{Message: ErrMsgUnmatchedEachEnd, Position: tok.Position}
			}
			eachStack = eachStack[:len(eachStack)-1]
		}
	}

	if openCount > 0 {
		return &LexerError{Message: ErrMsgUnclosedOpen, Position: lastOpen}
	}
	if len(eachStack) > 0 {
		return &LexerError{Message: ErrMsgUnclosedEach, Position: eachStack[len(eachStack)-1]}
	}
	return nil
}

// Helper methods

// currentPosition returns the current position
func (l *Lexer) currentPosition() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

// isAtEnd returns true if we've reached the end of source
func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

// advance consumes and returns the current character
func (l *Lexer) advance() byte {
	if l.isAtEnd() {
		return 0
	}
	ch := l.source[l.pos]
	l.pos++
	if ch == CharNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// advanceN advances by n characters
func (l *Lexer) advanceN(n int) {
	for i := 0; i < n && !l.isAtEnd(); i++ {
		l.advance()
	}
}

// matchStr returns true if the remaining source starts with s
func (l *Lexer) matchStr(s string) bool {
	return strings.HasPrefix(l.source[l.pos:], s)
}
