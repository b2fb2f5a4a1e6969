package path

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// ErrorKindMalformedPrefix indicates that a Windows path started
	// like a UNC, device namespace or verbatim prefix, but did not
	// complete it.
	ErrorKindMalformedPrefix ErrorKind = iota + 1
	// ErrorKindEmptyComponent indicates that a splitter attempted to
	// yield an empty component. It is only ever raised through a
	// panic, as it indicates a bug.
	ErrorKindEmptyComponent
	// ErrorKindInvalidCharacter indicates that a component contains a
	// character that the syntax does not permit in filenames.
	ErrorKindInvalidCharacter
	// ErrorKindRestrictedName indicates that a component is a name
	// reserved by Windows for devices.
	ErrorKindRestrictedName
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindMalformedPrefix:
		return "MalformedPrefix"
	case ErrorKindEmptyComponent:
		return "EmptyComponent"
	case ErrorKindInvalidCharacter:
		return "InvalidCharacter"
	case ErrorKindRestrictedName:
		return "RestrictedName"
	default:
		return "Unknown"
	}
}

// ParseError is returned when a path cannot be parsed or validated.
// Start and End delimit the offending bytes of Path.
//
// ParseError can be converted to a gRPC status with code
// INVALID_ARGUMENT, meaning it can be wrapped using util.StatusWrap()
// like any other error in this module.
type ParseError struct {
	Kind    ErrorKind
	Path    string
	Start   int
	End     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s in %#v at range %d..%d: %s", e.Kind, e.Path, e.Start, e.End, e.Message)
}

// GRPCStatus converts the error to a gRPC status.
func (e *ParseError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

func newMalformedPrefixError(path string, end int, message string) error {
	return &ParseError{
		Kind:    ErrorKindMalformedPrefix,
		Path:    path,
		Start:   0,
		End:     end,
		Message: message,
	}
}
