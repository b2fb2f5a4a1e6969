//go:build windows

package path

// LocalSyntax is the pathname syntax of the locally running operating
// system.
var LocalSyntax = WindowsSyntax

// NewLocalPath parses a pathname that is native to the locally running
// operating system.
func NewLocalPath(text string) (Path, error) {
	return NewWindowsPath(text)
}
