package pathcompare

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// splitNative splits a pathname that is native to the host into the
// names of its components, using the standard library.
func splitNative(pathname string) []string {
	rest := pathname[len(filepath.VolumeName(pathname)):]
	return strings.FieldsFunc(rest, func(r rune) bool {
		return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
	})
}
