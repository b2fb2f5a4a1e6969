package path

import (
	"strings"
)

// UNIXPath is a parsed POSIX-style pathname. Whether the path has a
// root is determined once upon construction. Components are computed
// lazily every time an iterator is requested.
//
// UNIXPath is immutable, meaning it may be used by multiple goroutines
// concurrently.
type UNIXPath struct {
	text    string
	hasRoot bool
	owned   bool
}

// NewUNIXPath creates a UNIXPath that borrows the provided text. The
// names of the components it yields refer to the same memory. As any
// byte sequence is a syntactically valid Unix path, this function
// cannot fail. Use Validate() to check whether the path could be passed
// to a system call.
func NewUNIXPath(text string) *UNIXPath {
	return &UNIXPath{
		text:    text,
		hasRoot: text != "" && text[0] == '/',
	}
}

// NewUNIXPathFromBytes creates a UNIXPath that owns a copy of the
// provided text. The caller may modify the buffer afterwards.
func NewUNIXPathFromBytes(text []byte) *UNIXPath {
	p := NewUNIXPath(string(text))
	p.owned = true
	return p
}

// Owned returns a copy of the path that does not share memory with the
// text it was created from. Components yielded by the copy are detached
// from the path as well.
func (p *UNIXPath) Owned() *UNIXPath {
	return &UNIXPath{
		text:    strings.Clone(p.text),
		hasRoot: p.hasRoot,
		owned:   true,
	}
}

func (p *UNIXPath) String() string {
	return p.text
}

// Syntax returns UNIXSyntax.
func (p *UNIXPath) Syntax() Syntax {
	return UNIXSyntax
}

// HasRoot returns whether the path starts with '/'.
func (p *UNIXPath) HasRoot() bool {
	return p.hasRoot
}

// IsAbsolute returns whether the path starts with '/'.
func (p *UNIXPath) IsAbsolute() bool {
	return p.hasRoot
}

// Type returns the shape of the path.
func (p *UNIXPath) Type() UNIXPathType {
	return getUNIXPathType(p.hasRoot)
}

// body returns the text that follows the root.
func (p *UNIXPath) body() string {
	if p.hasRoot {
		return p.text[1:]
	}
	return p.text
}

// HasTrailingSeparator returns whether the components of the path are
// followed by one or more separators, e.g. "foo/".
func (p *UNIXPath) HasTrailingSeparator() bool {
	return newScanningIterator(p.body(), UNIXSyntax, false).TrailingSeparator()
}

// Components returns a fresh iterator over the components of the path,
// not including the root directory.
func (p *UNIXPath) Components() ComponentIterator {
	return p.ComponentsWith(ScanComponents, false)
}

// ComponentsWith returns a fresh iterator over the components of the
// path, using a given splitter. If includeRoot is set and the path has
// a root, RootDir is yielded first.
func (p *UNIXPath) ComponentsWith(splitter Splitter, includeRoot bool) ComponentIterator {
	it := splitter(p.body(), UNIXSyntax, includeRoot && p.hasRoot)
	if p.owned {
		return cloningIterator{base: it}
	}
	return it
}

// Rebuild reconstructs the path from its components, using '/' as the
// separator. Redundant and trailing separators are dropped, while "."
// and ".." components are preserved. Parsing the result yields the
// same components.
func (p *UNIXPath) Rebuild() string {
	var sb strings.Builder
	if p.hasRoot {
		sb.WriteByte('/')
	}
	writeComponents(&sb, p.Components(), '/')
	return sb.String()
}

// Validate checks whether all components of the path can be used as
// Unix filenames. Unix filenames cannot contain null bytes, as they are
// passed to system calls as C strings.
func (p *UNIXPath) Validate() error {
	offset := len(p.text) - len(p.body())
	return validateComponents(p.text, offset, newScanningIterator(p.body(), UNIXSyntax, false), validateUNIXComponent)
}

func writeComponents(sb *strings.Builder, it ComponentIterator, separator byte) {
	first := true
	for c := range All(it) {
		if !first {
			sb.WriteByte(separator)
		}
		first = false
		sb.WriteString(c.Name())
	}
}
