package path_test

import (
	"strings"
	"testing"

	"github.com/arielmakestuff/pathlib-sub000/pkg/filesystem/path"
)

const (
	benchmarkUNIXPath    = "/hello/world/./what//now/../ya/\x00/"
	benchmarkWindowsPath = "\\\\?\\UNC\\server\\share\\hello\\\\yep.txt\\.\\h\\nul.txt"
)

func benchmarkSplitter(b *testing.B, splitter path.Splitter, body string, syntax path.Syntax) {
	b.ReportAllocs()
	for b.Loop() {
		it := splitter(body, syntax, true)
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}

func BenchmarkUNIXComponents(b *testing.B) {
	body := path.NewUNIXPath(benchmarkUNIXPath).String()[1:]
	b.Run("Scanner", func(b *testing.B) {
		benchmarkSplitter(b, path.ScanComponents, body, path.UNIXSyntax)
	})
	b.Run("Parser", func(b *testing.B) {
		benchmarkSplitter(b, path.ParseComponents, body, path.UNIXSyntax)
	})
	b.Run("StringsFields", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_ = strings.FieldsFunc(body, func(r rune) bool { return r == '/' })
		}
	})
}

func BenchmarkWindowsComponents(b *testing.B) {
	b.Run("Scanner", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			p := path.MustNewWindowsPath(benchmarkWindowsPath)
			it := p.ComponentsWith(path.ScanComponents, true)
			for _, ok := it.Next(); ok; _, ok = it.Next() {
			}
		}
	})
	b.Run("Parser", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			p := path.MustNewWindowsPath(benchmarkWindowsPath)
			it := p.ComponentsWith(path.ParseComponents, true)
			for _, ok := it.Next(); ok; _, ok = it.Next() {
			}
		}
	})
}
