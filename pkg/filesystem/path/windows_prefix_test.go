package path_test

import (
	"errors"
	"testing"

	"github.com/arielmakestuff/pathlib-sub000/pkg/filesystem/path"
	"github.com/arielmakestuff/pathlib-sub000/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMatchWindowsPrefix(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		for p, expected := range map[string]path.Prefix{
			"":                  {Kind: path.PrefixKindNone},
			"foo\\bar":          {Kind: path.PrefixKindNone},
			"\\foo":             {Kind: path.PrefixKindNone},
			"1:":                {Kind: path.PrefixKindNone},
			"C:":                {Kind: path.PrefixKindDisk, Text: "C:", DriveLetter: 'C'},
			"c:\\foo":           {Kind: path.PrefixKindDisk, Text: "c:", DriveLetter: 'C'},
			"z:foo":             {Kind: path.PrefixKindDisk, Text: "z:", DriveLetter: 'Z'},
			"\\\\server\\share": {Kind: path.PrefixKindUNC, Text: "\\\\server\\share", Server: "server", Share: "share"},
			"\\\\server\\share\\dir": {
				Kind:   path.PrefixKindUNC,
				Text:   "\\\\server\\share",
				Server: "server",
				Share:  "share",
			},
			"//Server/Share/dir": {Kind: path.PrefixKindUNC, Text: "//Server/Share", Server: "Server", Share: "Share"},
			"\\\\.\\COM1":        {Kind: path.PrefixKindDeviceNS, Text: "\\\\.\\COM1", Name: "COM1"},
			"\\\\.\\pipe\\name":  {Kind: path.PrefixKindDeviceNS, Text: "\\\\.\\pipe", Name: "pipe"},
			"\\\\?\\C:\\foo":     {Kind: path.PrefixKindVerbatimDisk, Text: "\\\\?\\C:", DriveLetter: 'C'},
			"\\\\?\\d:":          {Kind: path.PrefixKindVerbatimDisk, Text: "\\\\?\\d:", DriveLetter: 'D'},
			"\\\\?\\C:foo":       {Kind: path.PrefixKindVerbatim, Text: "\\\\?\\C:foo", Name: "C:foo"},
			"\\\\?\\UNC\\srv\\shr": {
				Kind:   path.PrefixKindVerbatimUNC,
				Text:   "\\\\?\\UNC\\srv\\shr",
				Server: "srv",
				Share:  "shr",
			},
			"\\\\?\\unc\\srv\\shr\\dir": {
				Kind:   path.PrefixKindVerbatimUNC,
				Text:   "\\\\?\\unc\\srv\\shr",
				Server: "srv",
				Share:  "shr",
			},
			"\\\\?\\UNCX\\foo":    {Kind: path.PrefixKindVerbatim, Text: "\\\\?\\UNCX", Name: "UNCX"},
			"\\\\?\\hello\\world": {Kind: path.PrefixKindVerbatim, Text: "\\\\?\\hello", Name: "hello"},
			"//?/hello":           {Kind: path.PrefixKindVerbatim, Text: "//?/hello", Name: "hello"},
			"\\\\.foo\\bar":       {Kind: path.PrefixKindUNC, Text: "\\\\.foo\\bar", Server: ".foo", Share: "bar"},
			"\\\\..\\share\\x":    {Kind: path.PrefixKindUNC, Text: "\\\\..\\share", Server: "..", Share: "share"},
		} {
			t.Run(p, func(t *testing.T) {
				prefix, err := path.MatchWindowsPrefix(p)
				require.NoError(t, err)
				require.Equal(t, expected, prefix)
			})
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, p := range []string{
			"\\\\",
			"\\\\\\foo",
			"\\\\server",
			"\\\\server\\",
			"\\\\server\\\\share",
			"\\\\?",
			"\\\\?x",
			"\\\\?\\",
			"\\\\?\\\\foo",
			"\\\\?\\UNC",
			"\\\\?\\UNC\\",
			"\\\\?\\UNC\\srv",
			"\\\\?\\UNC\\srv\\",
			"\\\\.",
			"\\\\.\\",
		} {
			t.Run(p, func(t *testing.T) {
				_, err := path.MatchWindowsPrefix(p)
				var parseError *path.ParseError
				require.True(t, errors.As(err, &parseError))
				require.Equal(t, path.ErrorKindMalformedPrefix, parseError.Kind)
				require.Equal(t, p, parseError.Path)
				require.Equal(t, codes.InvalidArgument, status.Code(err))
			})
		}
	})

	t.Run("MissingShareStatus", func(t *testing.T) {
		_, err := path.MatchWindowsPrefix("\\\\server")
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.InvalidArgument, "MalformedPrefix in \"\\\\\\\\server\" at range 0..8: UNC path lacks a share name"),
			err)
	})
}
