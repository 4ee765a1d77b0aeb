package surfstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Validate_Valid(t *testing.T) {
	result := MustNew().Validate("Hello {{name}}{{#each items}}{{@index}}: {{this}}\n{{/each}}")

	assert.True(t, result.IsValid())
	assert.False(t, result.HasErrors())
	assert.False(t, result.HasWarnings())
	assert.Empty(t, result.Issues())
}

func TestEngine_Validate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		message  string
		position Position
	}{
		{"unclosed each", "x\n{{#each items}}", "unclosed each block", Position{Offset: 2, Line: 2, Column: 1}},
		{"empty variable", "{{}}", "empty variable name", Position{Offset: 2, Line: 1, Column: 3}},
		{"stray close", "a }}", "unmatched closing braces", Position{Offset: 2, Line: 1, Column: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustNew().Validate(tt.source)

			assert.False(t, result.IsValid())
			require.Len(t, result.Errors(), 1)
			issue := result.Errors()[0]
			assert.Equal(t, SeverityError, issue.Severity)
			assert.Equal(t, tt.message, issue.Message)
			assert.Equal(t, tt.position, issue.Position)
		})
	}
}

func TestEngine_Validate_Warnings(t *testing.T) {
	result := MustNew().Validate("{{this}} {{@index}} {{this.name}} {{#each this.items}}{{this}}\n{{/each}}")

	assert.True(t, result.IsValid())
	assert.True(t, result.HasWarnings())

	warnings := result.Warnings()
	require.Len(t, warnings, 4)
	assert.Equal(t, ErrMsgThisOutsideEach, warnings[0].Message)
	assert.Equal(t, "this", warnings[0].Name)
	assert.Equal(t, ErrMsgIndexOutsideEach, warnings[1].Message)
	assert.Equal(t, "this.name", warnings[2].Name)
	assert.Equal(t, "this.items", warnings[3].Name)
	assert.Equal(t, Position{Offset: 34, Line: 1, Column: 35}, warnings[3].Position)
}

func TestEngine_Validate_Info(t *testing.T) {
	result := MustNew().Validate("{{#each items}}{{/each}}{{#each more}}   {{/each}}")

	assert.True(t, result.IsValid())
	assert.False(t, result.HasWarnings())
	require.Len(t, result.Issues(), 2)
	for _, issue := range result.Issues() {
		assert.Equal(t, SeverityInfo, issue.Severity)
		assert.Equal(t, ErrMsgEmptyEachBody, issue.Message)
	}
	assert.Equal(t, "more", result.Issues()[1].Name)
}

func TestValidationSeverity_String(t *testing.T) {
	assert.Equal(t, SeverityNameError, SeverityError.String())
	assert.Equal(t, SeverityNameWarning, SeverityWarning.String())
	assert.Equal(t, SeverityNameInfo, SeverityInfo.String())
	assert.Equal(t, SeverityNameUnknown, ValidationSeverity(42).String())
}
