package path

import (
	"github.com/arielmakestuff/pathlib-sub000/pkg/combinator"
)

// componentGrammar describes the body of a path in a given syntax:
//
//	body      = separator* (component (separator+ component)*)? separator*
//	component = ".." | "." | normal
//	normal    = maximal run of non-separators
type componentGrammar struct {
	separator combinator.Parser[string]
	component combinator.Parser[Component]
}

func newComponentGrammar(syntax Syntax) componentGrammar {
	separator := combinator.Byte(syntax.IsSeparator)
	segment := combinator.Many1(combinator.Byte(func(c byte) bool {
		return !syntax.IsSeparator(c)
	}))
	return componentGrammar{
		separator: separator,
		component: combinator.Refine(segment, combinator.Choice(
			combinator.Complete(combinator.Map(combinator.Literal(".."), func(string) Component { return ParentDir })),
			combinator.Complete(combinator.Map(combinator.Literal("."), func(string) Component { return CurDir })),
			combinator.Map(combinator.Rest, classifySegment))),
	}
}

var (
	unixComponentGrammar    = newComponentGrammar(UNIXSyntax)
	windowsComponentGrammar = newComponentGrammar(WindowsSyntax)
)

func getComponentGrammar(syntax Syntax) componentGrammar {
	switch syntax {
	case UNIXSyntax:
		return unixComponentGrammar
	case WindowsSyntax:
		return windowsComponentGrammar
	default:
		return newComponentGrammar(syntax)
	}
}

// ParsingIterator is a ComponentIterator that is built from parser
// combinators. It yields the same components as ScanningIterator, but
// is derived from a declarative grammar instead. It is primarily used
// to cross-check and benchmark ScanningIterator.
type ParsingIterator struct {
	stream      *combinator.Stream[Component]
	rootPending bool
}

var _ ComponentIterator = (*ParsingIterator)(nil)

// NewParsingIterator creates a ParsingIterator. This function matches
// the signature of Splitter.
func NewParsingIterator(body string, syntax Syntax, includeRoot bool) ComponentIterator {
	grammar := getComponentGrammar(syntax)
	return &ParsingIterator{
		stream:      combinator.RepeatSeparated(grammar.separator, grammar.component, body),
		rootPending: includeRoot,
	}
}

// ParseComponents is the Splitter that uses ParsingIterator.
var ParseComponents Splitter = NewParsingIterator

// Next returns the next component from the front.
func (it *ParsingIterator) Next() (Component, bool) {
	if it.rootPending {
		it.rootPending = false
		return RootDir, true
	}
	return it.stream.Next()
}

// NextBack returns the next component from the back. The root
// directory is yielded last.
func (it *ParsingIterator) NextBack() (Component, bool) {
	if c, ok := it.stream.NextBack(); ok {
		return c, true
	}
	if it.rootPending {
		it.rootPending = false
		return RootDir, true
	}
	return Component{}, false
}
