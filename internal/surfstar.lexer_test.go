package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLexer_Tokenize_PlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:  "simple text",
			input: "Hello, world!",
			expected: []Token{
				{Type: TokenTypeText, Value: "Hello, world!", Position: Position{Offset: 0, Line: 1, Column: 1}},
			},
		},
		{
			name:  "multiline text",
			input: "Line 1\nLine 2",
			expected: []Token{
				{Type: TokenTypeText, Value: "Line 1\nLine 2", Position: Position{Offset: 0, Line: 1, Column: 1}},
			},
		},
		{
			name:  "single braces are literal",
			input: "a { b } c",
			expected: []Token{
				{Type: TokenTypeText, Value: "a { b } c", Position: Position{Offset: 0, Line: 1, Column: 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer(tt.input, zap.NewNop())
			tokens, err := lexer.Tokenize()
			require.NoError(t, err)
			assertTokensMatch(t, tt.expected, tokens)
		})
	}
}

func TestLexer_Tokenize_Variables(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "variable with surrounding text",
			input: "Hello, {{name}}!",
			expected: []Token{
				{Type: TokenTypeText, Value: "Hello, ", Position: Position{Offset: 0, Line: 1, Column: 1}},
				{Type: TokenTypeOpenBrace, Value: StrOpenDelim, Position: Position{Offset: 7, Line: 1, Column: 8}},
				{Type: TokenTypeVariable, Value: "name", Position: Position{Offset: 9, Line: 1, Column: 10}},
				{Type: TokenTypeCloseBrace, Value: StrCloseDelim, Position: Position{Offset: 13, Line: 1, Column: 14}},
				{Type: TokenTypeText, Value: "!", Position: Position{Offset: 15, Line: 1, Column: 16}},
			},
		},
		{
			name:  "dotted path is trimmed",
			input: "{{ person.name }}",
			expected: []Token{
				{Type: TokenTypeOpenBrace, Value: StrOpenDelim, Position: Position{Offset: 0, Line: 1, Column: 1}},
				{Type: TokenTypeVariable, Value: "person.name", Position: Position{Offset: 2, Line: 1, Column: 3}},
				{Type: TokenTypeCloseBrace, Value: StrCloseDelim, Position: Position{Offset: 15, Line: 1, Column: 16}},
			},
		},
		{
			name:  "variable on second line",
			input: "a\n{{x}}",
			expected: []Token{
				{Type: TokenTypeText, Value: "a\n", Position: Position{Offset: 0, Line: 1, Column: 1}},
				{Type: TokenTypeOpenBrace, Value: StrOpenDelim, Position: Position{Offset: 2, Line: 2, Column: 1}},
				{Type: TokenTypeVariable, Value: "x", Position: Position{Offset: 4, Line: 2, Column: 3}},
				{Type: TokenTypeCloseBrace, Value: StrCloseDelim, Position: Position{Offset: 5, Line: 2, Column: 4}},
			},
		},
		{
			name:  "adjacent variables",
			input: "{{a}}{{b}}",
			expected: []Token{
				{Type: TokenTypeOpenBrace, Value: StrOpenDelim, Position: Position{Offset: 0, Line: 1, Column: 1}},
				{Type: TokenTypeVariable, Value: "a", Position: Position{Offset: 2, Line: 1, Column: 3}},
				{Type: TokenTypeCloseBrace, Value: StrCloseDelim, Position: Position{Offset: 3, Line: 1, Column: 4}},
				{Type: TokenTypeOpenBrace, Value: StrOpenDelim, Position: Position{Offset: 5, Line: 1, Column: 6}},
				{Type: TokenTypeVariable, Value: "b", Position: Position{Offset: 7, Line: 1, Column: 8}},
				{Type: TokenTypeCloseBrace, Value: StrCloseDelim, Position: Position{Offset: 8, Line: 1, Column: 9}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewLexer(tt.input, nil).Tokenize()
			require.NoError(t, err)
			assertTokensMatch(t, tt.expected, tokens)
		})
	}
}

func TestLexer_Tokenize_EachBlocks(t *testing.T) {
	t.Run("each with body", func(t *testing.T) {
		tokens, err := NewLexer("{{#each items}}{{this}}{{/each}}", nil).Tokenize()
		require.NoError(t, err)
		assertTokensMatch(t, []Token{
			{Type: TokenTypeEachStart, Value: "items", Position: Position{Offset: 0, Line: 1, Column: 1}},
			{Type: TokenTypeOpenBrace, Value: StrOpenDelim, Position: Position{Offset: 15, Line: 1, Column: 16}},
			{Type: TokenTypeVariable, Value: "this", Position: Position{Offset: 17, Line: 1, Column: 18}},
			{Type: TokenTypeCloseBrace, Value: StrCloseDelim, Position: Position{Offset: 21, Line: 1, Column: 22}},
			{Type: TokenTypeEachEnd, Position: Position{Offset: 23, Line: 1, Column: 24}},
		}, tokens)
	})

	t.Run("array name is trimmed", func(t *testing.T) {
		tokens, err := NewLexer("{{#each   user.items  }}{{/each}}", nil).Tokenize()
		require.NoError(t, err)
		require.Len(t, tokens, 2)
		assert.Equal(t, TokenTypeEachStart, tokens[0].Type)
		assert.Equal(t, "user.items", tokens[0].Value)
		assert.True(t, tokens[1].IsEachEnd())
	})

	t.Run("text around each is flushed", func(t *testing.T) {
		tokens, err := NewLexer("before{{#each xs}}mid{{/each}}after", nil).Tokenize()
		require.NoError(t, err)
		types := make([]TokenType, len(tokens))
		for i, tok := range tokens {
			types[i] = tok.Type
		}
		assert.Equal(t, []TokenType{
			TokenTypeText, TokenTypeEachStart, TokenTypeText, TokenTypeEachEnd, TokenTypeText,
		}, types)
		assert.Equal(t, "before", tokens[0].Value)
		assert.Equal(t, "mid", tokens[2].Value)
		assert.Equal(t, "after", tokens[4].Value)
	})

	t.Run("nested each blocks", func(t *testing.T) {
		tokens, err := NewLexer("{{#each a}}{{#each b}}{{/each}}{{/each}}", nil).Tokenize()
		require.NoError(t, err)
		require.Len(t, tokens, 4)
		assert.Equal(t, "a", tokens[0].Value)
		assert.Equal(t, "b", tokens[1].Value)
		assert.Equal(t, Position{Offset: 11, Line: 1, Column: 12}, tokens[1].Position)
	})
}

func TestLexer_Tokenize_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		message  string
		position Position
	}{
		{
			name:     "close braces alone",
			input:    "}}",
			message:  ErrMsgEmptyVariable,
			position: Position{Offset: 0, Line: 1, Column: 1},
		},
		{
			name:     "unmatched close after text",
			input:    "hello }}",
			message:  ErrMsgUnmatchedClose,
			position: Position{Offset: 6, Line: 1, Column: 7},
		},
		{
			name:     "unclosed open braces",
			input:    "{{name",
			message:  ErrMsgUnclosedOpen,
			position: Position{Offset: 0, Line: 1, Column: 1},
		},
		{
			name:     "empty variable",
			input:    "{{   }}",
			message:  ErrMsgEmptyVariable,
			position: Position{Offset: 2, Line: 1, Column: 3},
		},
		{
			name:     "each without array name",
			input:    "{{#each}}{{/each}}",
			message:  ErrMsgMissingEachName,
			position: Position{Offset: 0, Line: 1, Column: 1},
		},
		{
			name:     "each tag never closed",
			input:    "x {{#each items",
			message:  ErrMsgUnclosedEachTag,
			position: Position{Offset: 2, Line: 1, Column: 3},
		},
		{
			name:     "each end tag never closed",
			input:    "{{#each items}}{{/each",
			message:  ErrMsgUnclosedEachEnd,
			position: Position{Offset: 15, Line: 1, Column: 16},
		},
		{
			name:     "each end without start",
			input:    "{{/each}}",
			message:  ErrMsgUnmatchedEachEnd,
			position: Position{Offset: 0, Line: 1, Column: 1},
		},
		{
			name:     "each block never ended",
			input:    "line1\n  {{#each items}}{{this}}",
			message:  ErrMsgUnclosedEach,
			position: Position{Offset: 8, Line: 2, Column: 3},
		},
		{
			name:     "outer each never ended",
			input:    "{{#each a}}{{#each b}}{{/each}}",
			message:  ErrMsgUnclosedEach,
			position: Position{Offset: 0, Line: 1, Column: 1},
		},
		{
			name:     "nested open braces",
			input:    "{{a {{b}}",
			message:  ErrMsgUnclosedOpen,
			position: Position{Offset: 4, Line: 1, Column: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewLexer(tt.input, nil).Tokenize()
			require.Error(t, err)
			assert.Nil(t, tokens)

			var lexErr *LexerError
			require.True(t, errors.As(err, &lexErr))
			assert.Equal(t, tt.message, lexErr.Message)
			assert.Equal(t, tt.position, lexErr.Position)
			assert.Contains(t, err.Error(), tt.position.String())
		})
	}
}

func TestToken_String(t *testing.T) {
	tok := NewVariableToken("name", Position{Line: 2, Column: 5})
	assert.Equal(t, `Token{VARIABLE: "name" @ line 2, column 5}`, tok.String())
	assert.True(t, tok.IsVariable())
	assert.False(t, tok.IsText())

	end := NewEachEndToken(Position{Line: 1, Column: 1})
	assert.Equal(t, "Token{EACH_END @ line 1, column 1}", end.String())
}

// assertTokensMatch compares token slices with readable failure output
func assertTokensMatch(t *testing.T, expected, actual []Token) {
	t.Helper()
	require.Len(t, actual, len(expected), "token count mismatch: %v", actual)
	for i := range expected {
		assert.Equal(t, expected[i].Type, actual[i].Type, "token %d type", i)
		assert.Equal(t, expected[i].Value, actual[i].Value, "token %d value", i)
		assert.Equal(t, expected[i].Position, actual[i].Position, "token %d position", i)
	}
}
