package combinator

import (
	"strings"
)

// Parser of a string that can consume input from either end.
//
// ParseFront matches at the start of the input and returns the input
// that follows the match. ParseBack matches at the end of the input and
// returns the input that precedes the match. Implementations must not
// retain or modify the input, and a failed match must leave the caller's
// input as it was.
type Parser[T any] interface {
	ParseFront(input string) (value T, rest string, ok bool)
	ParseBack(input string) (value T, rest string, ok bool)
}

type byteParser struct {
	matches func(c byte) bool
}

// Byte creates a Parser that consumes a single byte for which matches
// returns true. The output is the one byte long string that was matched.
func Byte(matches func(c byte) bool) Parser[string] {
	return byteParser{matches: matches}
}

func (p byteParser) ParseFront(input string) (string, string, bool) {
	if input == "" || !p.matches(input[0]) {
		return "", input, false
	}
	return input[:1], input[1:], true
}

func (p byteParser) ParseBack(input string) (string, string, bool) {
	if input == "" || !p.matches(input[len(input)-1]) {
		return "", input, false
	}
	return input[len(input)-1:], input[:len(input)-1], true
}

type literalParser struct {
	literal string
}

// Literal creates a Parser that consumes an exact string.
func Literal(literal string) Parser[string] {
	return literalParser{literal: literal}
}

func (p literalParser) ParseFront(input string) (string, string, bool) {
	if !strings.HasPrefix(input, p.literal) {
		return "", input, false
	}
	return input[:len(p.literal)], input[len(p.literal):], true
}

func (p literalParser) ParseBack(input string) (string, string, bool) {
	if !strings.HasSuffix(input, p.literal) {
		return "", input, false
	}
	split := len(input) - len(p.literal)
	return input[split:], input[:split], true
}

type restParser struct{}

// Rest is a Parser that consumes all of its input, including none.
var Rest Parser[string] = restParser{}

func (restParser) ParseFront(input string) (string, string, bool) {
	return input, "", true
}

func (restParser) ParseBack(input string) (string, string, bool) {
	return input, "", true
}

type manyParser struct {
	base      Parser[string]
	minimumOK int
}

// Many creates a Parser that applies a Parser as often as possible,
// yielding the contiguous piece of input consumed by all matches. It
// always succeeds, possibly consuming nothing.
func Many(base Parser[string]) Parser[string] {
	return manyParser{base: base, minimumOK: 0}
}

// Many1 is identical to Many, except that it requires at least one
// byte of input to be consumed.
func Many1(base Parser[string]) Parser[string] {
	return manyParser{base: base, minimumOK: 1}
}

func (p manyParser) ParseFront(input string) (string, string, bool) {
	rest := input
	for {
		_, next, ok := p.base.ParseFront(rest)
		if !ok || len(next) == len(rest) {
			break
		}
		rest = next
	}
	consumed := len(input) - len(rest)
	if consumed < p.minimumOK {
		return "", input, false
	}
	return input[:consumed], rest, true
}

func (p manyParser) ParseBack(input string) (string, string, bool) {
	rest := input
	for {
		_, next, ok := p.base.ParseBack(rest)
		if !ok || len(next) == len(rest) {
			break
		}
		rest = next
	}
	if len(input)-len(rest) < p.minimumOK {
		return "", input, false
	}
	return input[len(rest):], rest, true
}

type mapParser[T, U any] struct {
	base Parser[T]
	f    func(T) U
}

// Map creates a Parser that converts the output of another Parser.
func Map[T, U any](base Parser[T], f func(T) U) Parser[U] {
	return mapParser[T, U]{base: base, f: f}
}

func (p mapParser[T, U]) ParseFront(input string) (U, string, bool) {
	v, rest, ok := p.base.ParseFront(input)
	if !ok {
		var zero U
		return zero, input, false
	}
	return p.f(v), rest, true
}

func (p mapParser[T, U]) ParseBack(input string) (U, string, bool) {
	v, rest, ok := p.base.ParseBack(input)
	if !ok {
		var zero U
		return zero, input, false
	}
	return p.f(v), rest, true
}

type choiceParser[T any] struct {
	alternatives []Parser[T]
}

// Choice creates a Parser that returns the result of the first
// alternative that matches.
func Choice[T any](alternatives ...Parser[T]) Parser[T] {
	return choiceParser[T]{alternatives: alternatives}
}

func (p choiceParser[T]) ParseFront(input string) (T, string, bool) {
	for _, alternative := range p.alternatives {
		if v, rest, ok := alternative.ParseFront(input); ok {
			return v, rest, true
		}
	}
	var zero T
	return zero, input, false
}

func (p choiceParser[T]) ParseBack(input string) (T, string, bool) {
	for _, alternative := range p.alternatives {
		if v, rest, ok := alternative.ParseBack(input); ok {
			return v, rest, true
		}
	}
	var zero T
	return zero, input, false
}

type completeParser[T any] struct {
	base Parser[T]
}

// Complete creates a Parser that only matches if the underlying Parser
// consumes all of the input.
func Complete[T any](base Parser[T]) Parser[T] {
	return completeParser[T]{base: base}
}

func (p completeParser[T]) ParseFront(input string) (T, string, bool) {
	v, rest, ok := p.base.ParseFront(input)
	if !ok || rest != "" {
		var zero T
		return zero, input, false
	}
	return v, rest, true
}

func (p completeParser[T]) ParseBack(input string) (T, string, bool) {
	v, rest, ok := p.base.ParseBack(input)
	if !ok || rest != "" {
		var zero T
		return zero, input, false
	}
	return v, rest, true
}

type refineParser[T any] struct {
	outer Parser[string]
	inner Parser[T]
}

// Refine creates a Parser that first lets outer delimit a piece of
// input, and then parses that piece in its entirety using inner. This
// permits classifying a token after its extent has been determined.
func Refine[T any](outer Parser[string], inner Parser[T]) Parser[T] {
	return refineParser[T]{outer: outer, inner: Complete(inner)}
}

func (p refineParser[T]) ParseFront(input string) (T, string, bool) {
	token, rest, ok := p.outer.ParseFront(input)
	if ok {
		if v, _, ok := p.inner.ParseFront(token); ok {
			return v, rest, true
		}
	}
	var zero T
	return zero, input, false
}

func (p refineParser[T]) ParseBack(input string) (T, string, bool) {
	token, rest, ok := p.outer.ParseBack(input)
	if ok {
		if v, _, ok := p.inner.ParseFront(token); ok {
			return v, rest, true
		}
	}
	var zero T
	return zero, input, false
}

type skipThenParser[S, T any] struct {
	skip Parser[S]
	base Parser[T]
}

// SkipThen creates a Parser that discards a match of skip on the side
// of the input that is being consumed, followed by a match of base.
// When parsing from the back, skip is thus matched against the very end
// of the input, and base against what precedes it.
func SkipThen[S, T any](skip Parser[S], base Parser[T]) Parser[T] {
	return skipThenParser[S, T]{skip: skip, base: base}
}

func (p skipThenParser[S, T]) ParseFront(input string) (T, string, bool) {
	_, afterSkip, ok := p.skip.ParseFront(input)
	if ok {
		if v, rest, ok := p.base.ParseFront(afterSkip); ok {
			return v, rest, true
		}
	}
	var zero T
	return zero, input, false
}

func (p skipThenParser[S, T]) ParseBack(input string) (T, string, bool) {
	_, beforeSkip, ok := p.skip.ParseBack(input)
	if ok {
		if v, rest, ok := p.base.ParseBack(beforeSkip); ok {
			return v, rest, true
		}
	}
	var zero T
	return zero, input, false
}
