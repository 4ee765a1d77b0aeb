package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Parser produces an AST from a token stream
type Parser struct {
	tokens []Token
	pos    int
	logger *zap.Logger
}

// NewParser creates a new parser for the given token stream
func NewParser(tokens []Token, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgParserCreated, zap.Int(LogFieldTokens, len(tokens)))
	return &Parser{
		tokens: tokens,
		pos:    0,
		logger: logger,
	}
}

// Parse produces the template root node from the token stream
func (p *Parser) Parse() (*TemplateNode, error) {
	p.logger.Debug(LogMsgParserStart)

	nodes, err := p.parseContent(nil)
	if err != nil {
		return nil, err
	}

	root := NewTemplateNode(nodes)
	p.logger.Debug(LogMsgParserEnd, zap.Int(LogFieldNodes, len(nodes)))
	return root, nil
}

// parseContent consumes tokens into a node sequence. With a nil open token it
// runs to end of input; otherwise it stops at the EACH_END matching open.
func (p *Parser) parseContent(open *Token) ([]Node, error) {
	body := &contentBuilder{inEach: open != nil}

	for !p.isAtEnd() {
		tok := p.advance()

		switch tok.Type {
		case TokenTypeText:
			body.addText(tok)

		case TokenTypeVariable:
			body.flush()
			body.add(NewVariableNode(tok.Value, tok.Position))

		case TokenTypeEachStart:
			body.flush()
			each, err := p.parseEach(tok)
			if err != nil {
				return nil, err
			}
			body.add(each)

		case TokenTypeEachEnd:
			if open == nil {
				return nil, p.newUnexpectedEachEndError(tok)
			}
			body.flushClosing()
			return body.nodes, nil

		case TokenTypeOpenBrace, TokenTypeCloseBrace:
			// Structural markers; the variable between them is its own token.

		default:
			return nil, p.newUnexpectedTokenError(tok)
		}
	}

	if open != nil {
		return nil, p.newUnclosedEachError(*open)
	}

	body.flush()
	return body.nodes, nil
}

// parseEach parses an each-body after its EACH_START token has been consumed
func (p *Parser) parseEach(open Token) (*EachNode, error) {
	content, err := p.parseContent(&open)
	if err != nil {
		return nil, err
	}
	return NewEachNode(open.Value, content, open.Position), nil
}

// contentBuilder accumulates child nodes, coalescing adjacent text
type contentBuilder struct {
	nodes    []Node
	text     strings.Builder
	textPos  Position
	inEach   bool
	seenText bool
}

// addText appends a text token to the pending run. The first text segment of
// a fresh each-body loses its leading whitespace, wherever it appears.
func (b *contentBuilder) addText(tok Token) {
	value := tok.Value
	if b.inEach && !b.seenText {
		value = strings.TrimLeft(value, StrWhitespace)
	}
	b.seenText = true

	if b.text.Len() == 0 {
		b.textPos = tok.Position
	}
	b.text.WriteString(value)
}

// add appends a non-text node
func (b *contentBuilder) add(n Node) {
	b.nodes = append(b.nodes, n)
}

// flush emits pending text as a single TextNode
func (b *contentBuilder) flush() {
	if b.text.Len() == 0 {
		return
	}
	b.nodes = append(b.nodes, NewTextNode(b.text.String(), b.textPos))
	b.text.Reset()
}

// flushClosing flushes the text preceding {{/each}}. Trailing text without a
// newline gets one prepended.
func (b *contentBuilder) flushClosing() {
	if b.text.Len() == 0 {
		return
	}
	trailing := b.text.String()
	if !strings.Contains(trailing, StrNewline) {
		b.text.Reset()
		b.text.WriteString(StrNewline + trailing)
	}
	b.flush()
}

// Helper methods

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token
func (p *Parser) advance() Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// isAtEnd returns true once every token is consumed
func (p *Parser) isAtEnd() bool {
	return p.pos >= len(p.tokens)
}

// Error helpers

func (p *Parser) newUnclosedEachError(open Token) error {
	return &ParserError{
		Message:  ErrMsgUnclosedEach,
		Position: open.Position,
		Token:    open,
	}
}

func (p *Parser) newUnexpectedEachEndError(tok Token) error {
	return &ParserError{
		Message:  ErrMsgUnexpectedEachEnd,
		Position: tok.Position,
		Token:    tok,
	}
}

func (p *Parser) newUnexpectedTokenError(tok Token) error {
	return &ParserError{
		Message:  ErrMsgUnexpectedToken,
		Position: tok.Position,
		Token:    tok,
	}
}
