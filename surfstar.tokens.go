package surfstar

import (
	"fmt"

	"github.com/itsatony/go-surfstar/internal"
)

// TokenKind is the lexical class of a Token
type TokenKind string

// Token kinds
const (
	TokenKindText       TokenKind = TokenKind(internal.TokenTypeText)
	TokenKindVariable   TokenKind = TokenKind(internal.TokenTypeVariable)
	TokenKindOpenBrace  TokenKind = TokenKind(internal.TokenTypeOpenBrace)
	TokenKindCloseBrace TokenKind = TokenKind(internal.TokenTypeCloseBrace)
	TokenKindEachStart  TokenKind = TokenKind(internal.TokenTypeEachStart)
	TokenKindEachEnd    TokenKind = TokenKind(internal.TokenTypeEachEnd)
)

// Token is one lexical unit of a template source. For EACH_START the
// value is the array path; for delimiters it is the delimiter text.
type Token struct {
	Kind     TokenKind `json:"kind"`
	Value    string    `json:"value,omitempty"`
	Position Position  `json:"position"`
}

// String returns a compact single-line form
func (t Token) String() string {
	if t.Value == "" {
		return fmt.Sprintf("%s @ %s", t.Kind, t.Position)
	}
	return fmt.Sprintf("%s %q @ %s", t.Kind, t.Value, t.Position)
}

func publicTokens(tokens []internal.Token) []Token {
	out := make([]Token, len(tokens))
	for i, tok := range tokens {
		out[i] = Token{
			Kind:     TokenKind(tok.Type),
			Value:    tok.Value,
			Position: internalPosToPublic(tok.Position),
		}
	}
	return out
}
