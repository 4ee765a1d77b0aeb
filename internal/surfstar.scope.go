package internal

import "strings"

// Scope is a read-only view of the data context. The root scope wraps the
// caller's data; each iteration of an each block derives a child scope that
// binds this and @index and falls back to the element's own fields.
type Scope struct {
	parent    *Scope
	data      map[string]any
	item      any
	index     int
	iteration bool
}

// NewScope creates the root scope over data. A nil map is treated as empty.
func NewScope(data map[string]any) *Scope {
	return &Scope{data: data}
}

// Iteration derives the scope for one element of an each block
func (s *Scope) Iteration(item any, index int) *Scope {
	return &Scope{
		parent:    s,
		item:      item,
		index:     index,
		iteration: true,
	}
}

// Lookup walks a dotted path. It reports false as soon as a segment is
// missing or an intermediate value is nil.
func (s *Scope) Lookup(path string) (any, bool) {
	segments := strings.Split(path, PathSeparator)

	current, ok := s.head(segments[0])
	if !ok {
		return nil, false
	}

	for _, segment := range segments[1:] {
		if IsNil(current) {
			return nil, false
		}
		current, ok = child(current, segment)
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// head resolves the first path segment. Only this and @index override the
// enclosing context; an element's own fields are consulted after every
// enclosing scope has missed.
func (s *Scope) head(name string) (any, bool) {
	if !s.iteration {
		val, ok := s.data[name]
		return val, ok
	}

	switch name {
	case IdentThis:
		return s.item, true
	case IdentIndex:
		return s.index, true
	}

	if val, ok := s.parent.head(name); ok {
		return val, true
	}
	return field(s.item, name)
}
