//go:build unix

package path

// LocalSyntax is the pathname syntax of the locally running operating
// system.
var LocalSyntax = UNIXSyntax

// NewLocalPath parses a pathname that is native to the locally running
// operating system.
func NewLocalPath(text string) (Path, error) {
	return NewUNIXPath(text), nil
}
