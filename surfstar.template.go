package surfstar

import (
	"sort"

	"github.com/itsatony/go-surfstar/internal"
)

// Template is a compiled template ready for rendering.
// It is immutable and safe for concurrent use.
type Template struct {
	source   string
	path     string
	root     *internal.TemplateNode
	renderer *internal.Renderer
}

// newTemplate creates a new Template.
func newTemplate(source, path string, root *internal.TemplateNode, renderer *internal.Renderer) *Template {
	return &Template{
		source:   source,
		path:     path,
		root:     root,
		renderer: renderer,
	}
}

// Render produces the output for data. Missing data renders as empty
// text; only a malformed tree is an error.
func (t *Template) Render(data map[string]any) (string, error) {
	out, err := t.renderer.Render(t.root, data)
	if err != nil {
		return "", translateError(err, t.path)
	}
	return out, nil
}

// Source returns the original template source.
func (t *Template) Source() string {
	return t.source
}

// Path returns the path the template was loaded from, or "" for inline sources.
func (t *Template) Path() string {
	return t.path
}

// Variables returns the sorted, de-duplicated variable paths referenced
// anywhere in the template, each-bodies included.
func (t *Template) Variables() []string {
	return t.collect(func(n internal.Node) (string, bool) {
		v, ok := n.(*internal.VariableNode)
		if !ok {
			return "", false
		}
		return v.Name, true
	})
}

// EachTargets returns the sorted, de-duplicated array paths of each blocks.
func (t *Template) EachTargets() []string {
	return t.collect(func(n internal.Node) (string, bool) {
		each, ok := n.(*internal.EachNode)
		if !ok {
			return "", false
		}
		return each.ArrayName, true
	})
}

// String returns an indented dump of the syntax tree.
func (t *Template) String() string {
	return t.root.String()
}

func (t *Template) collect(pick func(internal.Node) (string, bool)) []string {
	seen := make(map[string]struct{})
	internal.Walk(t.root, func(n internal.Node, _ int) bool {
		if name, ok := pick(n); ok {
			seen[name] = struct{}{}
		}
		return true
	})

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
