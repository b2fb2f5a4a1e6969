package path

import (
	"strings"
)

// WindowsPath is a parsed Windows-style pathname. Its prefix and root
// are determined once upon construction. Components are computed lazily
// every time an iterator is requested.
//
// Both '\' and '/' are accepted as separators, regardless of the
// operating system on which the code runs. WindowsPath is immutable,
// meaning it may be used by multiple goroutines concurrently.
type WindowsPath struct {
	text     string
	pathType WindowsPathType
	hasRoot  bool
	owned    bool
}

// NewWindowsPath creates a WindowsPath that borrows the provided text.
// Creation fails if the path starts with an incomplete UNC, device
// namespace or verbatim prefix.
func NewWindowsPath(text string) (*WindowsPath, error) {
	prefix, err := MatchWindowsPrefix(text)
	if err != nil {
		return nil, err
	}
	rest := text[len(prefix.Text):]
	hasRoot := rest != "" && isWindowsSeparator(rest[0])
	return &WindowsPath{
		text:     text,
		pathType: getWindowsPathType(prefix, hasRoot),
		hasRoot:  hasRoot,
	}, nil
}

// MustNewWindowsPath is identical to NewWindowsPath, except that it
// panics upon failure.
func MustNewWindowsPath(text string) *WindowsPath {
	p, err := NewWindowsPath(text)
	if err != nil {
		panic(err)
	}
	return p
}

// NewWindowsPathFromBytes creates a WindowsPath that owns a copy of the
// provided text. The caller may modify the buffer afterwards.
func NewWindowsPathFromBytes(text []byte) (*WindowsPath, error) {
	p, err := NewWindowsPath(string(text))
	if err != nil {
		return nil, err
	}
	p.owned = true
	return p, nil
}

// Owned returns a copy of the path that does not share memory with the
// text it was created from. Components yielded by the copy are detached
// from the path as well.
func (p *WindowsPath) Owned() *WindowsPath {
	// Reparse the copy, so that the strings in the prefix refer to
	// the copy as well.
	owned := MustNewWindowsPath(strings.Clone(p.text))
	owned.owned = true
	return owned
}

func (p *WindowsPath) String() string {
	return p.text
}

// Syntax returns WindowsSyntax.
func (p *WindowsPath) Syntax() Syntax {
	return WindowsSyntax
}

// Prefix returns the prefix of the path, which has kind PrefixKindNone
// if the path has no prefix.
func (p *WindowsPath) Prefix() Prefix {
	return p.pathType.Prefix
}

// HasRoot returns whether a separator immediately follows the prefix,
// or starts the path if it has no prefix.
func (p *WindowsPath) HasRoot() bool {
	return p.hasRoot
}

// IsAbsolute returns whether the path refers to the same location,
// regardless of the current drive and directory.
func (p *WindowsPath) IsAbsolute() bool {
	return p.pathType.IsAbsolute()
}

// Type returns the shape of the path.
func (p *WindowsPath) Type() WindowsPathType {
	return p.pathType
}

// body returns the text that follows the prefix and the root.
func (p *WindowsPath) body() string {
	body := p.text[len(p.pathType.Prefix.Text):]
	if p.hasRoot {
		return body[1:]
	}
	return body
}

// HasTrailingSeparator returns whether the components of the path are
// followed by one or more separators, e.g. "C:\foo\".
func (p *WindowsPath) HasTrailingSeparator() bool {
	return newScanningIterator(p.body(), WindowsSyntax, false).TrailingSeparator()
}

// Components returns a fresh iterator over the components of the path,
// not including the prefix and the root directory.
func (p *WindowsPath) Components() ComponentIterator {
	return p.ComponentsWith(ScanComponents, false)
}

// ComponentsWith returns a fresh iterator over the components of the
// path, using a given splitter. If includeRoot is set and the path has
// a root, RootDir is yielded first.
func (p *WindowsPath) ComponentsWith(splitter Splitter, includeRoot bool) ComponentIterator {
	it := splitter(p.body(), WindowsSyntax, includeRoot && p.hasRoot)
	if p.owned {
		return cloningIterator{base: it}
	}
	return it
}

// Rebuild reconstructs the path from its prefix and components, using
// '\' as the separator. The prefix is retained as written. Redundant and
// trailing separators are dropped, while "." and ".." components are
// preserved. Parsing the result yields the same type and components.
func (p *WindowsPath) Rebuild() string {
	var sb strings.Builder
	sb.WriteString(p.pathType.Prefix.Text)
	if p.hasRoot {
		sb.WriteByte('\\')
	}
	writeComponents(&sb, p.Components(), '\\')
	return sb.String()
}

// Validate checks whether all components of the path can be used as
// Windows filenames. Components may not contain any of the characters
// <>:"|?* or control characters, may not end with a period or space,
// and may not be a reserved device name such as "CON" or "LPT1".
func (p *WindowsPath) Validate() error {
	offset := len(p.text) - len(p.body())
	return validateComponents(p.text, offset, newScanningIterator(p.body(), WindowsSyntax, false), validateWindowsComponent)
}
