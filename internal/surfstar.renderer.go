package internal

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Renderer walks a template AST against a data context.
// It holds no per-render state, so one Renderer may serve concurrent renders.
type Renderer struct {
	logger *zap.Logger
}

// NewRenderer creates a new renderer
func NewRenderer(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRendererCreated)
	return &Renderer{logger: logger}
}

// Render produces the output for root. Only a *TemplateNode is a valid root.
func (r *Renderer) Render(root Node, data map[string]any) (out string, err error) {
	tmpl, ok := root.(*TemplateNode)
	if !ok {
		return "", r.newExpectedTemplateError(root)
	}

	defer func() {
		if rec := recover(); rec != nil {
			out = ""
			err = &RendererError{
				Message:  ErrMsgRenderPanic,
				Position: tmpl.Pos(),
				Cause:    fmt.Errorf("%v", rec),
			}
		}
	}()

	r.logger.Debug(LogMsgRenderStart, zap.Int(LogFieldNodes, len(tmpl.Content)))

	var sb strings.Builder
	if err := r.renderNodes(&sb, tmpl.Content, NewScope(data)); err != nil {
		return "", err
	}

	r.logger.Debug(LogMsgRenderEnd, zap.Int(LogFieldOutput, sb.Len()))
	return sb.String(), nil
}

// renderNodes renders a node sequence in order
func (r *Renderer) renderNodes(sb *strings.Builder, nodes []Node, scope *Scope) error {
	for _, node := range nodes {
		if err := r.renderNode(sb, node, scope); err != nil {
			return err
		}
	}
	return nil
}

// renderNode renders a single node
func (r *Renderer) renderNode(sb *strings.Builder, node Node, scope *Scope) error {
	switch n := node.(type) {
	case *TextNode:
		sb.WriteString(n.Content)
		return nil

	case *VariableNode:
		if val, ok := scope.Lookup(n.Name); ok {
			sb.WriteString(Stringify(val))
		}
		return nil

	case *EachNode:
		return r.renderEach(sb, n, scope)

	case nil:
		return &RendererError{Message: ErrMsgUnknownNodeType, NodeType: NodeTypeNameUnknown}

	default:
		return &RendererError{
			Message:  ErrMsgUnknownNodeType,
			NodeType: node.Type().String(),
			Position: node.Pos(),
		}
	}
}

// renderEach renders the body once per element. Missing or non-list
// targets render nothing.
func (r *Renderer) renderEach(sb *strings.Builder, each *EachNode, scope *Scope) error {
	val, ok := scope.Lookup(each.ArrayName)
	if !ok {
		return nil
	}
	items, ok := AsList(val)
	if !ok {
		r.logger.Debug(LogMsgEachSkipped,
			zap.String(LogFieldArray, each.ArrayName),
			zap.Int(LogFieldLine, each.Pos().Line),
			zap.Int(LogFieldColumn, each.Pos().Column))
		return nil
	}

	r.logger.Debug(LogMsgEachIterate, zap.String(LogFieldArray, each.ArrayName), zap.Int(LogFieldItems, len(items)))

	for i, item := range items {
		if err := r.renderNodes(sb, each.Content, scope.Iteration(item, i)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) newExpectedTemplateError(root Node) error {
	if root == nil {
		return &RendererError{Message: ErrMsgExpectedTemplate, NodeType: NodeTypeNameUnknown}
	}
	return &RendererError{
		Message:  ErrMsgExpectedTemplate,
		NodeType: root.Type().String(),
		Position: root.Pos(),
	}
}
