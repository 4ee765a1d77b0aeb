package internal

import (
	"fmt"
	"strings"
)

// Node is the interface all AST nodes implement
type Node interface {
	// Type returns the node type identifier
	Type() NodeType
	// Pos returns the source position of this node
	Pos() Position
	// String returns a human-readable representation
	String() string
}

// TemplateNode is the root of a compiled template. It is never nested.
type TemplateNode struct {
	Content []Node
}

// Type returns NodeTypeTemplate
func (n *TemplateNode) Type() NodeType {
	return NodeTypeTemplate
}

// Pos returns the start of the source
func (n *TemplateNode) Pos() Position {
	return Position{Offset: 0, Line: 1, Column: 1}
}

// String returns an indented dump of the whole tree
func (n *TemplateNode) String() string {
	var sb strings.Builder
	sb.WriteString("TemplateNode{\n")
	writeNodes(&sb, n.Content, 1)
	sb.WriteString("}")
	return sb.String()
}

// TextNode represents literal text content
type TextNode struct {
	pos     Position
	Content string
}

// Type returns NodeTypeText
func (n *TextNode) Type() NodeType {
	return NodeTypeText
}

// Pos returns the source position
func (n *TextNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *TextNode) String() string {
	content := n.Content
	if len(content) > MaxStringDisplayLength {
		content = content[:TruncatedStringLength] + TruncationSuffix
	}
	return fmt.Sprintf("TextNode{%q @ %s}", content, n.pos)
}

// NewTextNode creates a new text node
func NewTextNode(content string, pos Position) *TextNode {
	return &TextNode{
		pos:     pos,
		Content: content,
	}
}

// VariableNode is a dotted path into the data context
type VariableNode struct {
	pos  Position
	Name string
}

// Type returns NodeTypeVariable
func (n *VariableNode) Type() NodeType {
	return NodeTypeVariable
}

// Pos returns the source position
func (n *VariableNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *VariableNode) String() string {
	return fmt.Sprintf("VariableNode{%s @ %s}", n.Name, n.pos)
}

// NewVariableNode creates a new variable node
func NewVariableNode(name string, pos Position) *VariableNode {
	return &VariableNode{
		pos:  pos,
		Name: name,
	}
}

// EachNode iterates ArrayName and renders Content once per element.
// Content may itself hold EachNodes.
type EachNode struct {
	pos       Position
	ArrayName string
	Content   []Node
}

// Type returns NodeTypeEach
func (n *EachNode) Type() NodeType {
	return NodeTypeEach
}

// Pos returns the source position of the opening tag
func (n *EachNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *EachNode) String() string {
	return fmt.Sprintf("EachNode{in=%s, children=%d @ %s}", n.ArrayName, len(n.Content), n.pos)
}

// NewEachNode creates a new each node
func NewEachNode(arrayName string, content []Node, pos Position) *EachNode {
	return &EachNode{
		pos:       pos,
		ArrayName: arrayName,
		Content:   content,
	}
}

// NewTemplateNode creates a new root node
func NewTemplateNode(content []Node) *TemplateNode {
	return &TemplateNode{Content: content}
}

// Walk visits node and its descendants depth-first in source order.
// depth counts enclosing each blocks. Returning false skips the node's children.
func Walk(node Node, fn func(n Node, depth int) bool) {
	walk(node, 0, fn)
}

func walk(node Node, depth int, fn func(n Node, depth int) bool) {
	if !fn(node, depth) {
		return
	}
	switch n := node.(type) {
	case *TemplateNode:
		for _, child := range n.Content {
			walk(child, depth, fn)
		}
	case *EachNode:
		for _, child := range n.Content {
			walk(child, depth+1, fn)
		}
	}
}

func writeNodes(sb *strings.Builder, nodes []Node, indent int) {
	prefix := strings.Repeat(FmtIndent, indent)
	for i, child := range nodes {
		sb.WriteString(fmt.Sprintf("%s[%d] %s\n", prefix, i, child.String()))
		if each, ok := child.(*EachNode); ok {
			writeNodes(sb, each.Content, indent+1)
		}
	}
}
