package path

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Path is the interface shared by UNIXPath and WindowsPath. It can be
// used by code that processes pathnames without caring about the
// syntax in which they were written.
type Path interface {
	String() string
	Syntax() Syntax
	HasRoot() bool
	IsAbsolute() bool
	HasTrailingSeparator() bool
	Components() ComponentIterator
	ComponentsWith(splitter Splitter, includeRoot bool) ComponentIterator
	Rebuild() string
	Validate() error
}

var (
	_ Path = (*UNIXPath)(nil)
	_ Path = (*WindowsPath)(nil)
)

// NewPath parses a pathname string using the provided syntax.
func NewPath(syntax Syntax, text string) (Path, error) {
	switch syntax {
	case nil:
		return nil, status.Error(codes.InvalidArgument, "No pathname syntax provided")
	case UNIXSyntax:
		return NewUNIXPath(text), nil
	case WindowsSyntax:
		return NewWindowsPath(text)
	default:
		return nil, status.Errorf(codes.InvalidArgument, "Unsupported pathname syntax %#v", syntax.Name())
	}
}
