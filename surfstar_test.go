package surfstar

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		data     map[string]any
		expected string
	}{
		{"variable", "{{name}}", map[string]any{"name": "John"}, "John"},
		{"missing variable", "{{name}}", map[string]any{}, ""},
		{"nested path", "{{person.name}}", map[string]any{"person": map[string]any{"name": "John"}}, "John"},
		{"each", "{{#each items}}{{this}}{{/each}}", map[string]any{"items": []any{"a", "b", "c"}}, "abc"},
		{"each over string", "{{#each items}}{{this}}{{/each}}", map[string]any{"items": "not an array"}, ""},
		{"each over nothing", "{{#each items}}{{this}}{{/each}}", map[string]any{}, ""},
		{"index", "{{#each items}}{{@index}}{{/each}}", map[string]any{"items": []any{"a", "b", "c"}}, "012"},
		{
			name:   "nested each",
			source: "{{#each categories}}{{#each items}}{{this}}{{/each}}{{/each}}",
			data: map[string]any{"categories": []any{
				map[string]any{"items": []any{"x"}},
				map[string]any{"items": []any{"y", "z"}},
			}},
			expected: "xyz",
		},
		{"plain text", "just text", nil, "just text"},
		{"empty source", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Compile(tt.source, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		message string
		line    int
		column  int
	}{
		{"empty variable", "Hi {{ }}", "empty variable name", 1, 6},
		{"unclosed open", "Hi {{name", "unclosed opening braces", 1, 4},
		{"unclosed each", "a\n{{#each items}}{{this}}", "unclosed each block", 2, 1},
		{"stray each end", "{{/each}}", "each end without matching each start", 1, 1},
		{"each without name", "{{#each }}{{/each}}", "missing array name in each tag", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Compile(tt.source, nil)
			require.Error(t, err)
			assert.Empty(t, out)

			assert.True(t, IsLexerError(err))
			assert.Equal(t, fmt.Sprintf("%s at line %d, column %d", tt.message, tt.line, tt.column), err.Error())

			loc, ok := ErrorLocation(err)
			require.True(t, ok)
			assert.Empty(t, loc.File)
			assert.Equal(t, tt.line, loc.Line)
			assert.Equal(t, tt.column, loc.Column)
		})
	}
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.tpl")
	require.NoError(t, os.WriteFile(path, []byte("Hello, {{name}}!\n"), 0o644))

	out, err := CompileFile(context.Background(), path, map[string]any{"name": "World"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!\n", out)

	t.Run("missing file", func(t *testing.T) {
		_, err := CompileFile(context.Background(), filepath.Join(dir, "nope.tpl"), nil)
		require.Error(t, err)
		assert.True(t, IsFileError(err))
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	})

	t.Run("malformed file carries path", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.tpl")
		require.NoError(t, os.WriteFile(bad, []byte("ok\n  {{#each xs}}"), 0o644))

		_, err := CompileFile(context.Background(), bad, nil)
		require.Error(t, err)
		assert.True(t, IsLexerError(err))
		assert.Contains(t, err.Error(), "unclosed each block in "+bad+":2:3")
	})
}
