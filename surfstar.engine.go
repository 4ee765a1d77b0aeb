package surfstar

import (
	"context"

	"github.com/itsatony/go-surfstar/internal"
	"go.uber.org/zap"
)

// Engine is the main entry point for the surfstar templating system.
// It compiles template sources and loads them through its SourceLoader.
// An Engine is safe for concurrent use.
type Engine struct {
	config   *engineConfig
	loader   SourceLoader
	renderer *internal.Renderer
	logger   *zap.Logger
}

// New creates a new surfstar Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	loader := config.loader
	if loader != nil && config.cache != nil {
		loader = NewCachedLoader(loader, *config.cache)
	}

	logger.Debug(LogMsgEngineCreated)

	return &Engine{
		config:   config,
		loader:   loader,
		renderer: internal.NewRenderer(logger),
		logger:   logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Loader returns the engine's source loader, cache included
func (e *Engine) Loader() SourceLoader {
	return e.loader
}

// Parse tokenizes and parses a template source string.
// The returned Template can be rendered multiple times with different data.
func (e *Engine) Parse(source string) (*Template, error) {
	return e.parse(source, "")
}

// ParseFile loads path through the engine's loader and parses it.
// Errors carry path as their file context.
func (e *Engine) ParseFile(ctx context.Context, path string) (*Template, error) {
	source, err := e.load(ctx, path)
	if err != nil {
		return nil, err
	}
	return e.parse(source, path)
}

// Execute compiles source and renders it against data in one step.
// For templates that will be rendered multiple times, use Parse() instead.
func (e *Engine) Execute(source string, data map[string]any) (string, error) {
	tmpl, err := e.Parse(source)
	if err != nil {
		return "", err
	}
	return tmpl.Render(data)
}

// ExecuteFile loads, compiles and renders the template at path.
func (e *Engine) ExecuteFile(ctx context.Context, path string, data map[string]any) (string, error) {
	tmpl, err := e.ParseFile(ctx, path)
	if err != nil {
		return "", err
	}
	return tmpl.Render(data)
}

// Tokenize returns the token stream of source, for debugging tooling
func (e *Engine) Tokenize(source string) ([]Token, error) {
	tokens, err := internal.NewLexer(source, e.logger).Tokenize()
	if err != nil {
		return nil, translateError(err, "")
	}
	return publicTokens(tokens), nil
}

func (e *Engine) parse(source, path string) (*Template, error) {
	tokens, err := internal.NewLexer(source, e.logger).Tokenize()
	if err != nil {
		return nil, translateError(err, path)
	}

	root, err := internal.NewParser(tokens, e.logger).Parse()
	if err != nil {
		return nil, translateError(err, path)
	}

	return newTemplate(source, path, root, e.renderer), nil
}

// load resolves path through the loader. Loader failures that are not
// already taxonomy errors become file errors.
func (e *Engine) load(ctx context.Context, path string) (string, error) {
	if e.loader == nil {
		return "", NewFileError(ErrMsgNoLoader, path, nil)
	}
	if path == "" {
		return "", NewFileError(ErrMsgEmptyPath, path, nil)
	}

	source, err := e.loader.Load(ctx, path)
	if err != nil {
		e.logger.Warn(LogMsgLoadFailed, zap.String(LogFieldPath, path), zap.Error(err))
		if _, ok := KindOf(err); ok {
			return "", err
		}
		return "", NewFileError(ErrMsgLoadFailed, path, err)
	}

	e.logger.Debug(LogMsgTemplateLoaded, zap.String(LogFieldPath, path), zap.Int(LogFieldLength, len(source)))
	return source, nil
}
