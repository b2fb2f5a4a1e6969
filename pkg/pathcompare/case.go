package pathcompare

import (
	"bufio"
	"io"

	"github.com/arielmakestuff/pathlib-sub000/pkg/filesystem/path"
	"github.com/arielmakestuff/pathlib-sub000/pkg/util"
)

// Case is a single pathname in the corpus, together with the syntax in
// which it is written.
type Case struct {
	Syntax path.Syntax
	Path   string
}

// maximumLineSizeBytes bounds the length of a single pathname in a
// corpus file.
const maximumLineSizeBytes = 1 << 20

// ReadCases reads a corpus of pathnames that are all written in the
// same syntax, one pathname per line. Empty lines are ignored.
func ReadCases(r io.Reader, syntax path.Syntax) ([]Case, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maximumLineSizeBytes)
	var cases []Case
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			cases = append(cases, Case{
				Syntax: syntax,
				Path:   line,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, util.StatusWrap(err, "Failed to read corpus")
	}
	return cases, nil
}
