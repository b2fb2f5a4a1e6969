package path

// Syntax of pathname strings. Each syntax is a fixed value that is
// chosen by the caller, as opposed to being derived from the operating
// system that is running the code. This makes it possible to process
// Windows paths on Unix and vice versa.
type Syntax interface {
	// Name of the syntax, as used in configuration files and metric
	// labels.
	Name() string
	// IsSeparator returns whether a byte separates components.
	IsSeparator(c byte) bool
	// Separator returns the canonical separator.
	Separator() byte
}

type unixSyntax struct{}

func (unixSyntax) Name() string { return "unix" }

func (unixSyntax) IsSeparator(c byte) bool { return c == '/' }

func (unixSyntax) Separator() byte { return '/' }

// UNIXSyntax is the syntax of POSIX pathnames, which only use '/' as a
// separator.
var UNIXSyntax Syntax = unixSyntax{}

type windowsSyntax struct{}

func (windowsSyntax) Name() string { return "windows" }

func (windowsSyntax) IsSeparator(c byte) bool { return isWindowsSeparator(c) }

func (windowsSyntax) Separator() byte { return '\\' }

// WindowsSyntax is the syntax of Windows pathnames, which accept both
// '\' and '/' as separators.
var WindowsSyntax Syntax = windowsSyntax{}

func isWindowsSeparator(c byte) bool {
	return c == '\\' || c == '/'
}

// GetSyntax looks up a syntax by name.
func GetSyntax(name string) (Syntax, bool) {
	switch name {
	case UNIXSyntax.Name():
		return UNIXSyntax, true
	case WindowsSyntax.Name():
		return WindowsSyntax, true
	default:
		return nil, false
	}
}
