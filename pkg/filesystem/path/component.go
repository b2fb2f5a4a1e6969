package path

import (
	"strings"
)

// ComponentKind discriminates the pathname components that can be
// yielded when iterating over a path.
type ComponentKind int

const (
	// ComponentKindRootDir is the root separator. It is only yielded
	// when explicitly requested, and only at the start of a path.
	ComponentKindRootDir ComponentKind = iota + 1
	// ComponentKindCurDir is a literal "." component.
	ComponentKindCurDir
	// ComponentKindParentDir is a literal ".." component.
	ComponentKindParentDir
	// ComponentKindNormal is any other non-empty component.
	ComponentKindNormal
)

func (k ComponentKind) String() string {
	switch k {
	case ComponentKindRootDir:
		return "RootDir"
	case ComponentKindCurDir:
		return "CurDir"
	case ComponentKindParentDir:
		return "ParentDir"
	case ComponentKindNormal:
		return "Normal"
	default:
		return "Invalid"
	}
}

// Component of a pathname. The name of a normal component refers to
// the text of the path it was parsed from, unless it has been detached
// using Clone().
type Component struct {
	kind ComponentKind
	name string
}

var (
	// RootDir is the component yielded for the root separator.
	RootDir = Component{kind: ComponentKindRootDir}
	// CurDir is the component yielded for ".".
	CurDir = Component{kind: ComponentKindCurDir, name: "."}
	// ParentDir is the component yielded for "..".
	ParentDir = Component{kind: ComponentKindParentDir, name: ".."}
)

// NewNormalComponent creates a normal pathname component. Creation
// fails in case the name is empty, "." or "..", as these cannot be
// represented by a normal component.
func NewNormalComponent(name string) (Component, bool) {
	if name == "" || name == "." || name == ".." {
		return Component{}, false
	}
	return Component{kind: ComponentKindNormal, name: name}, true
}

// MustNewNormalComponent is identical to NewNormalComponent, except
// that it panics upon failure.
func MustNewNormalComponent(name string) Component {
	c, ok := NewNormalComponent(name)
	if !ok {
		panic("Invalid component name")
	}
	return c
}

// classifySegment converts a run of non-separator characters to a
// component. Splitters must never call it with an empty segment.
func classifySegment(segment string) Component {
	switch segment {
	case "":
		panic(&ParseError{
			Kind:    ErrorKindEmptyComponent,
			Message: "Splitter attempted to yield an empty component",
		})
	case ".":
		return CurDir
	case "..":
		return ParentDir
	default:
		return Component{kind: ComponentKindNormal, name: segment}
	}
}

// Kind returns the kind of the component.
func (c Component) Kind() ComponentKind {
	return c.kind
}

// Name returns the text of the component. The root directory has no
// name, as its textual form depends on the syntax of the path.
func (c Component) Name() string {
	return c.name
}

// Clone returns a copy of the component that no longer shares memory
// with the path it was parsed from.
func (c Component) Clone() Component {
	if c.kind == ComponentKindNormal {
		c.name = strings.Clone(c.name)
	}
	return c
}

func (c Component) String() string {
	if c.kind == ComponentKindNormal {
		return c.kind.String() + "(" + c.name + ")"
	}
	return c.kind.String()
}
