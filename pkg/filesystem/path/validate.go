package path

import (
	"strings"
)

// componentValidator inspects the name of a normal component. It
// returns false, together with the kind of the violation and a
// message, if the name may not be used as a filename.
type componentValidator func(name string) (ErrorKind, string, bool)

func validateComponents(text string, offset int, it *ScanningIterator, validator componentValidator) error {
	for {
		start, end, ok := it.nextSpan()
		if !ok {
			return nil
		}
		name := it.body[start:end]
		if name == "." || name == ".." {
			continue
		}
		if kind, message, ok := validator(name); !ok {
			return &ParseError{
				Kind:    kind,
				Path:    text,
				Start:   offset + start,
				End:     offset + end,
				Message: message,
			}
		}
	}
}

func validateUNIXComponent(name string) (ErrorKind, string, bool) {
	if strings.IndexByte(name, 0) >= 0 {
		return ErrorKindInvalidCharacter, "Component contains a null byte", false
	}
	return 0, "", true
}

var windowsReservedNames = func() map[string]struct{} {
	names := map[string]struct{}{
		"CON": {},
		"PRN": {},
		"AUX": {},
		"NUL": {},
	}
	for _, base := range []string{"COM", "LPT"} {
		for i := '1'; i <= '9'; i++ {
			names[base+string(i)] = struct{}{}
		}
	}
	return names
}()

func isWindowsRestrictedCharacter(c byte) bool {
	return c < 0x20 || strings.IndexByte("<>:\"|?*", c) >= 0
}

func validateWindowsComponent(name string) (ErrorKind, string, bool) {
	for i := 0; i < len(name); i++ {
		if isWindowsRestrictedCharacter(name[i]) {
			return ErrorKindInvalidCharacter, "Component contains a character that is not permitted in filenames", false
		}
	}
	switch name[len(name)-1] {
	case '.', ' ':
		return ErrorKindInvalidCharacter, "Component ends with a period or space", false
	}
	if _, ok := windowsReservedNames[strings.ToUpper(name)]; ok {
		return ErrorKindRestrictedName, "Component is a name reserved for devices", false
	}
	return 0, "", true
}
