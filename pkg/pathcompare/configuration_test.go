package pathcompare_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arielmakestuff/pathlib-sub000/pkg/filesystem/path"
	"github.com/arielmakestuff/pathlib-sub000/pkg/pathcompare"
	"github.com/arielmakestuff/pathlib-sub000/pkg/testutil"
	"github.com/arielmakestuff/pathlib-sub000/pkg/util"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func writeZstdFile(t *testing.T, name, contents string) {
	encoder, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(name, encoder.EncodeAll([]byte(contents), nil), 0o644))
	require.NoError(t, encoder.Close())
}

func TestNewCasesFromConfiguration(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		directory := t.TempDir()
		unixFile := filepath.Join(directory, "unix.txt")
		require.NoError(t, os.WriteFile(unixFile, []byte("/usr/bin\n\n/etc/passwd\n/etc\n"), 0o644))
		windowsFile := filepath.Join(directory, "windows.txt.zst")
		writeZstdFile(t, windowsFile, "C:\\Windows\r\n\\\\server\\share\r\n")

		cases, err := pathcompare.NewCasesFromConfiguration(&pathcompare.Configuration{
			Corpus: []pathcompare.CaseConfiguration{
				{Syntax: "unix", Path: "/home/user"},
				{Syntax: "windows", Path: "..\\x"},
			},
			CorpusFiles: []pathcompare.CorpusFileConfiguration{
				{Syntax: "unix", File: unixFile},
				{Syntax: "windows", File: windowsFile},
			},
			ExcludePatterns: []string{"/etc*"},
		})
		require.NoError(t, err)
		require.Equal(t, []pathcompare.Case{
			{Syntax: path.UNIXSyntax, Path: "/home/user"},
			{Syntax: path.WindowsSyntax, Path: "..\\x"},
			{Syntax: path.UNIXSyntax, Path: "/usr/bin"},
			{Syntax: path.WindowsSyntax, Path: "C:\\Windows"},
			{Syntax: path.WindowsSyntax, Path: "\\\\server\\share"},
		}, cases)
	})

	t.Run("UnknownSyntax", func(t *testing.T) {
		_, err := pathcompare.NewCasesFromConfiguration(&pathcompare.Configuration{
			Corpus: []pathcompare.CaseConfiguration{
				{Syntax: "plan9", Path: "/dev/cons"},
			},
		})
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Corpus entry 0: Unknown pathname syntax \"plan9\""), err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		missingFile := filepath.Join(t.TempDir(), "missing.txt")
		_, err := pathcompare.NewCasesFromConfiguration(&pathcompare.Configuration{
			CorpusFiles: []pathcompare.CorpusFileConfiguration{
				{Syntax: "unix", File: missingFile},
			},
		})
		require.Error(t, err)
		require.True(t, strings.HasPrefix(status.Convert(err).Message(), "Corpus file \""+missingFile+"\": "))
	})
}

func TestConfigurationFromJsonnet(t *testing.T) {
	var configuration pathcompare.Configuration
	require.NoError(t, util.UnmarshalConfigurationFromSnippet(
		"pathlib_compare.jsonnet",
		`{
			corpus: [
				{ syntax: 'unix', path: '/usr/' + d } for d in ['bin', 'lib']
			],
			corpusFiles: [{ syntax: 'windows', file: std.extVar('CORPUS') }],
			parallelism: 4,
		}`,
		[]string{"CORPUS=/tmp/windows.txt"},
		&configuration))
	configuration.ApplyDefaults()
	require.Equal(t, pathcompare.Configuration{
		Corpus: []pathcompare.CaseConfiguration{
			{Syntax: "unix", Path: "/usr/bin"},
			{Syntax: "unix", Path: "/usr/lib"},
		},
		CorpusFiles: []pathcompare.CorpusFileConfiguration{
			{Syntax: "windows", File: "/tmp/windows.txt"},
		},
		Iterations:         1,
		Parallelism:        4,
		MetricsNamePattern: "^pathlib_",
	}, configuration)

	namePattern, err := configuration.GetMetricsNamePattern()
	require.NoError(t, err)
	require.True(t, namePattern.MatchString("pathlib_compare_cases_total"))
	require.False(t, namePattern.MatchString("go_goroutines"))
}

func TestConfigurationGetMetricsNamePattern(t *testing.T) {
	configuration := pathcompare.Configuration{MetricsNamePattern: "("}
	_, err := configuration.GetMetricsNamePattern()
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}
