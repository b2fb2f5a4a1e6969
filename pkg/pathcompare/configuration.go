package pathcompare

import (
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/arielmakestuff/pathlib-sub000/pkg/filesystem/path"
	"github.com/arielmakestuff/pathlib-sub000/pkg/util"
	"github.com/gobwas/glob"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Configuration of a comparison run, as read from a Jsonnet file.
type Configuration struct {
	// Pathnames that are embedded in the configuration file.
	Corpus []CaseConfiguration `json:"corpus"`
	// Files containing one pathname per line. Files whose name ends
	// with ".zst" are decompressed using Zstandard.
	CorpusFiles []CorpusFileConfiguration `json:"corpusFiles"`
	// Glob patterns of pathnames that should not be compared.
	ExcludePatterns []string `json:"excludePatterns"`
	// Number of times each pathname is split for timing purposes.
	Iterations int `json:"iterations"`
	// Maximum number of pathnames that are compared concurrently.
	Parallelism int `json:"parallelism"`
	// Regular expression of the names of the metric families that
	// are printed once the run completes.
	MetricsNamePattern string `json:"metricsNamePattern"`
}

// CaseConfiguration is a single pathname in the corpus.
type CaseConfiguration struct {
	Syntax string `json:"syntax"`
	Path   string `json:"path"`
}

// CorpusFileConfiguration refers to a file containing pathnames.
type CorpusFileConfiguration struct {
	Syntax string `json:"syntax"`
	File   string `json:"file"`
}

const defaultMetricsNamePattern = "^pathlib_"

// ApplyDefaults fills in the fields of the configuration that have been
// left unset.
func (c *Configuration) ApplyDefaults() {
	if c.Iterations <= 0 {
		c.Iterations = 1
	}
	if c.Parallelism <= 0 {
		c.Parallelism = 1
	}
	if c.MetricsNamePattern == "" {
		c.MetricsNamePattern = defaultMetricsNamePattern
	}
}

// GetMetricsNamePattern compiles the regular expression of the names
// of metric families that should be printed.
func (c *Configuration) GetMetricsNamePattern() (*regexp.Regexp, error) {
	pattern := c.MetricsNamePattern
	if pattern == "" {
		pattern = defaultMetricsNamePattern
	}
	namePattern, err := regexp.Compile(pattern)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "Invalid metrics name pattern %#v: %s", pattern, err)
	}
	return namePattern, nil
}

func getSyntax(name string) (path.Syntax, error) {
	syntax, ok := path.GetSyntax(name)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "Unknown pathname syntax %#v", name)
	}
	return syntax, nil
}

func openCorpusFile(file string) (io.ReadCloser, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(file, ".zst") {
		return util.NewZstdReadCloser(f)
	}
	return f, nil
}

func readCorpusFile(file string, syntax path.Syntax) ([]Case, error) {
	r, err := openCorpusFile(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadCases(r, syntax)
}

type excludeFilter []glob.Glob

func newExcludeFilter(patterns []string) (excludeFilter, error) {
	var globs []glob.Glob
	for _, pattern := range patterns {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "Invalid exclude pattern %#v: %s", pattern, err)
		}
		globs = append(globs, compiled)
	}
	return excludeFilter(globs), nil
}

func (f excludeFilter) excludes(pathname string) bool {
	for _, g := range f {
		if g.Match(pathname) {
			return true
		}
	}
	return false
}

// NewCasesFromConfiguration gathers the corpus of a comparison run.
// Pathnames embedded in the configuration come first, followed by the
// contents of the corpus files in the order in which they are listed.
func NewCasesFromConfiguration(configuration *Configuration) ([]Case, error) {
	filter, err := newExcludeFilter(configuration.ExcludePatterns)
	if err != nil {
		return nil, err
	}

	var cases []Case
	for i, caseConfiguration := range configuration.Corpus {
		syntax, err := getSyntax(caseConfiguration.Syntax)
		if err != nil {
			return nil, util.StatusWrapf(err, "Corpus entry %d", i)
		}
		cases = append(cases, Case{
			Syntax: syntax,
			Path:   caseConfiguration.Path,
		})
	}
	for _, fileConfiguration := range configuration.CorpusFiles {
		syntax, err := getSyntax(fileConfiguration.Syntax)
		if err != nil {
			return nil, util.StatusWrapf(err, "Corpus file %#v", fileConfiguration.File)
		}
		fileCases, err := readCorpusFile(fileConfiguration.File, syntax)
		if err != nil {
			return nil, util.StatusWrapf(err, "Corpus file %#v", fileConfiguration.File)
		}
		cases = append(cases, fileCases...)
	}

	filtered := cases[:0]
	for _, c := range cases {
		if !filter.excludes(c.Path) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}
