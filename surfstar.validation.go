package surfstar

import (
	"errors"
	"strings"

	"github.com/itsatony/go-surfstar/internal"
)

// ValidationResult contains the results of template validation.
type ValidationResult struct {
	issues []ValidationIssue
}

// ValidationIssue represents a single validation finding.
type ValidationIssue struct {
	Severity ValidationSeverity
	Message  string
	Position Position
	Name     string // variable or array path the issue refers to
}

// Issues returns all validation issues found.
func (r *ValidationResult) Issues() []ValidationIssue {
	return r.issues
}

// Errors returns only issues with error severity.
func (r *ValidationResult) Errors() []ValidationIssue {
	return r.filter(SeverityError)
}

// Warnings returns only issues with warning severity.
func (r *ValidationResult) Warnings() []ValidationIssue {
	return r.filter(SeverityWarning)
}

// HasErrors returns true if there are any error-severity issues.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors()) > 0
}

// HasWarnings returns true if there are any warning-severity issues.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings()) > 0
}

// IsValid returns true if there are no error-severity issues.
func (r *ValidationResult) IsValid() bool {
	return !r.HasErrors()
}

func (r *ValidationResult) filter(severity ValidationSeverity) []ValidationIssue {
	var out []ValidationIssue
	for _, issue := range r.issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

func (r *ValidationResult) add(severity ValidationSeverity, msg string, pos internal.Position, name string) {
	r.issues = append(r.issues, ValidationIssue{
		Severity: severity,
		Message:  msg,
		Position: internalPosToPublic(pos),
		Name:     name,
	})
}

// Validate tokenizes and parses a template without rendering it.
// A template that cannot compile yields a single error issue located where
// the lexer or parser stopped. A compilable template is checked for
// constructs that are legal but always render nothing.
func (e *Engine) Validate(source string) *ValidationResult {
	result := &ValidationResult{
		issues: make([]ValidationIssue, 0),
	}

	tokens, err := internal.NewLexer(source, e.logger).Tokenize()
	if err != nil {
		addStageError(result, err)
		return result
	}

	root, err := internal.NewParser(tokens, e.logger).Parse()
	if err != nil {
		addStageError(result, err)
		return result
	}

	internal.Walk(root, func(n internal.Node, depth int) bool {
		switch node := n.(type) {
		case *internal.VariableNode:
			if depth == 0 {
				validateTopLevelName(result, node.Name, node.Pos())
			}
		case *internal.EachNode:
			if depth == 0 {
				validateTopLevelName(result, node.ArrayName, node.Pos())
			}
			if len(node.Content) == 0 {
				result.add(SeverityInfo, ErrMsgEmptyEachBody, node.Pos(), node.ArrayName)
			}
		}
		return true
	})

	return result
}

// validateTopLevelName flags this and @index outside any each block
func validateTopLevelName(result *ValidationResult, path string, pos internal.Position) {
	head, _, _ := strings.Cut(path, internal.PathSeparator)
	switch head {
	case internal.IdentThis:
		result.add(SeverityWarning, ErrMsgThisOutsideEach, pos, path)
	case internal.IdentIndex:
		result.add(SeverityWarning, ErrMsgIndexOutsideEach, pos, path)
	}
}

func addStageError(result *ValidationResult, err error) {
	var lexErr *internal.LexerError
	if errors.As(err, &lexErr) {
		result.add(SeverityError, lexErr.Message, lexErr.Position, "")
		return
	}
	var parseErr *internal.ParserError
	if errors.As(err, &parseErr) {
		result.add(SeverityError, parseErr.Message, parseErr.Position, "")
		return
	}
	result.add(SeverityError, err.Error(), internal.Position{}, "")
}
