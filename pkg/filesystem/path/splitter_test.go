package path_test

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/arielmakestuff/pathlib-sub000/pkg/filesystem/path"
	"github.com/stretchr/testify/require"
)

var (
	splitters = map[string]path.Splitter{
		"Scanner": path.ScanComponents,
		"Parser":  path.ParseComponents,
	}

	curDir    = path.CurDir
	parentDir = path.ParentDir
	rootDir   = path.RootDir
	normal    = path.MustNewNormalComponent
)

type splitterTestCase struct {
	body     string
	syntax   path.Syntax
	expected []path.Component
}

var splitterTestCases = []splitterTestCase{
	{"", path.UNIXSyntax, nil},
	{"/", path.UNIXSyntax, nil},
	{"///", path.UNIXSyntax, nil},
	{"a", path.UNIXSyntax, []path.Component{normal("a")}},
	{"a/", path.UNIXSyntax, []path.Component{normal("a")}},
	{"a//b/./c/../d/", path.UNIXSyntax, []path.Component{
		normal("a"), normal("b"), curDir, normal("c"), parentDir, normal("d"),
	}},
	{"./..", path.UNIXSyntax, []path.Component{curDir, parentDir}},
	{"...", path.UNIXSyntax, []path.Component{normal("...")}},
	{".hidden/..x/x..", path.UNIXSyntax, []path.Component{normal(".hidden"), normal("..x"), normal("x..")}},
	{"a\\b/c", path.UNIXSyntax, []path.Component{normal("a\\b"), normal("c")}},
	{"hello/world/./what//now/../ya/\x00/", path.UNIXSyntax, []path.Component{
		normal("hello"), normal("world"), curDir, normal("what"), normal("now"), parentDir, normal("ya"), normal("\x00"),
	}},
	{"", path.WindowsSyntax, nil},
	{"\\/\\", path.WindowsSyntax, nil},
	{"foo\\bar", path.WindowsSyntax, []path.Component{normal("foo"), normal("bar")}},
	{"foo/bar\\", path.WindowsSyntax, []path.Component{normal("foo"), normal("bar")}},
	{"hello\\\\yep.txt\\.\\h\\nul.txt", path.WindowsSyntax, []path.Component{
		normal("hello"), normal("yep.txt"), curDir, normal("h"), normal("nul.txt"),
	}},
	{"..\\../.", path.WindowsSyntax, []path.Component{parentDir, parentDir, curDir}},
}

func TestSplitterExpectedComponents(t *testing.T) {
	for name, splitter := range splitters {
		t.Run(name, func(t *testing.T) {
			for _, tc := range splitterTestCases {
				t.Run(fmt.Sprintf("%s/%q", tc.syntax.Name(), tc.body), func(t *testing.T) {
					require.Equal(t, tc.expected, path.Collect(splitter(tc.body, tc.syntax, false)))
				})
			}
		})
	}
}

func TestSplitterEquivalence(t *testing.T) {
	for _, tc := range splitterTestCases {
		for _, includeRoot := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s/%q/%v", tc.syntax.Name(), tc.body, includeRoot), func(t *testing.T) {
				require.Equal(
					t,
					path.Collect(path.ScanComponents(tc.body, tc.syntax, includeRoot)),
					path.Collect(path.ParseComponents(tc.body, tc.syntax, includeRoot)))
			})
		}
	}
}

func TestSplitterRootDir(t *testing.T) {
	for name, splitter := range splitters {
		t.Run(name, func(t *testing.T) {
			t.Run("Empty", func(t *testing.T) {
				require.Equal(t, []path.Component{rootDir}, path.Collect(splitter("", path.UNIXSyntax, true)))

				it := splitter("", path.UNIXSyntax, true)
				c, ok := it.NextBack()
				require.True(t, ok)
				require.Equal(t, rootDir, c)
				_, ok = it.Next()
				require.False(t, ok)
			})

			t.Run("Forward", func(t *testing.T) {
				require.Equal(
					t,
					[]path.Component{rootDir, normal("a"), normal("b")},
					path.Collect(splitter("a/b", path.UNIXSyntax, true)))
			})

			t.Run("Backward", func(t *testing.T) {
				var components []path.Component
				for c := range path.Backward(splitter("a\\b", path.WindowsSyntax, true)) {
					components = append(components, c)
				}
				require.Equal(t, []path.Component{normal("b"), normal("a"), rootDir}, components)
			})
		})
	}
}

// collectInterleaved drains an iterator by alternating between both
// ends, according to a pattern in which true means consuming from the
// front. The result is put back in front to back order.
func collectInterleaved(it path.ComponentIterator, pattern []bool) []path.Component {
	var front, back []path.Component
	for i := 0; ; i++ {
		fromFront := pattern[i%len(pattern)]
		var c path.Component
		var ok bool
		if fromFront {
			c, ok = it.Next()
		} else {
			c, ok = it.NextBack()
		}
		if !ok {
			// Both ends must agree that iteration has completed.
			if _, ok := it.Next(); ok {
				panic("Front yielded a component after completion")
			}
			if _, ok := it.NextBack(); ok {
				panic("Back yielded a component after completion")
			}
			break
		}
		if fromFront {
			front = append(front, c)
		} else {
			back = append(back, c)
		}
	}
	for i := len(back) - 1; i >= 0; i-- {
		front = append(front, back[i])
	}
	return front
}

func TestSplitterDoubleEndedConvergence(t *testing.T) {
	patterns := [][]bool{
		{true},
		{false},
		{true, false},
		{false, true},
		{true, true, false},
		{false, false, true},
	}
	for name, splitter := range splitters {
		t.Run(name, func(t *testing.T) {
			for _, tc := range splitterTestCases {
				for _, includeRoot := range []bool{false, true} {
					expected := path.Collect(splitter(tc.body, tc.syntax, includeRoot))
					for _, pattern := range patterns {
						t.Run(fmt.Sprintf("%s/%q/%v/%v", tc.syntax.Name(), tc.body, includeRoot, pattern), func(t *testing.T) {
							require.Equal(t, expected, collectInterleaved(splitter(tc.body, tc.syntax, includeRoot), pattern))
						})
					}
				}
			}
		})
	}
}

func TestSplitterBorrowsText(t *testing.T) {
	// Normal components are slices of the body, not copies.
	body := "foo/bar"
	for name, splitter := range splitters {
		t.Run(name, func(t *testing.T) {
			components := path.Collect(splitter(body, path.UNIXSyntax, false))
			require.Len(t, components, 2)
			require.Equal(t, "bar", components[1].Name())
			require.True(t, unsafe.StringData(body[4:]) == unsafe.StringData(components[1].Name()))
		})
	}
}
