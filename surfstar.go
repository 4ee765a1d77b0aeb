// Package surfstar compiles a small mustache-style template language.
//
// A template mixes literal text with two constructs:
//
//	Hello, {{user.name}}!
//	{{#each items}}
//	  - {{@index}}: {{this}}
//	{{/each}}
//
// Variables are dotted paths into the data context. Each blocks iterate a
// list and bind this (the element) and @index (its 0-based position) for
// their body; keys of a mapping element are also visible by bare name.
//
// # Basic Usage
//
// Compile a source string in one call:
//
//	out, err := surfstar.Compile("Hello, {{name}}!", map[string]any{"name": "Alice"})
//	// out: "Hello, Alice!"
//
// Or parse once and render many times:
//
//	engine := surfstar.MustNew()
//	tmpl, err := engine.Parse(source)
//	out, err := tmpl.Render(data)
//
// # Missing Data
//
// Absent data is not an error. A missing variable renders as empty text and
// an each block over a missing or non-list value renders nothing.
//
// # Errors
//
// Malformed markup fails the whole compilation. Every error is a
// *cuserr.CustomError classified by ErrorKind; use KindOf, IsLexerError and
// friends to inspect it, and ErrorLocation for its file and position:
//
//	_, err := engine.ExecuteFile(ctx, "page.tpl", data)
//	if surfstar.IsParserError(err) {
//	    loc, _ := surfstar.ErrorLocation(err)
//	    // loc.File, loc.Line, loc.Column
//	}
//
// # Loading Templates
//
// ParseFile and ExecuteFile resolve paths through a SourceLoader. The
// default reads files from disk; MemoryLoader, PostgresLoader and any
// LoaderFunc can be installed, optionally behind a cache:
//
//	engine, _ := surfstar.New(
//	    surfstar.WithLoader(surfstar.NewFileLoader("templates")),
//	    surfstar.WithCache(surfstar.DefaultCacheConfig()),
//	    surfstar.WithLogger(logger),
//	)
package surfstar

import "context"

var defaultEngine = MustNew()

// Compile tokenizes, parses and renders source against data using a
// default engine.
func Compile(source string, data map[string]any) (string, error) {
	return defaultEngine.Execute(source, data)
}

// CompileFile reads the template file at path and compiles it against data.
func CompileFile(ctx context.Context, path string, data map[string]any) (string, error) {
	return defaultEngine.ExecuteFile(ctx, path, data)
}
