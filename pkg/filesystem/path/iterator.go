package path

import (
	"iter"
)

// ComponentIterator lazily yields the components of a path from the
// front and from the back. Both ends may be consumed in any order.
// Every component is yielded exactly once, after which both Next() and
// NextBack() return false.
type ComponentIterator interface {
	Next() (Component, bool)
	NextBack() (Component, bool)
}

// Splitter creates a ComponentIterator over the body of a path, being
// the text that follows its prefix and root separator. If includeRoot
// is set, RootDir is yielded before any of the components in the body.
type Splitter func(body string, syntax Syntax, includeRoot bool) ComponentIterator

// All returns a sequence of the components of an iterator, front to
// back.
func All(it ComponentIterator) iter.Seq[Component] {
	return func(yield func(Component) bool) {
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}

// Backward returns a sequence of the components of an iterator, back to
// front.
func Backward(it ComponentIterator) iter.Seq[Component] {
	return func(yield func(Component) bool) {
		for c, ok := it.NextBack(); ok; c, ok = it.NextBack() {
			if !yield(c) {
				return
			}
		}
	}
}

// Collect returns the remaining components of an iterator, front to
// back.
func Collect(it ComponentIterator) []Component {
	var components []Component
	for c := range All(it) {
		components = append(components, c)
	}
	return components
}

// cloningIterator is used by owning paths to ensure that none of the
// components refer to the original text.
type cloningIterator struct {
	base ComponentIterator
}

func (it cloningIterator) Next() (Component, bool) {
	c, ok := it.base.Next()
	return c.Clone(), ok
}

func (it cloningIterator) NextBack() (Component, bool) {
	c, ok := it.base.NextBack()
	return c.Clone(), ok
}
