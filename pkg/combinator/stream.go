package combinator

// Stream lazily yields the items of a separated list, from the front,
// from the back, or from both ends at the same time.
//
// Consumption from either end shrinks the same window of unparsed
// input. Once an item can no longer be parsed from the window, the
// window is discarded and the stream is exhausted on both ends.
type Stream[T any] struct {
	item   Parser[T]
	window string
}

// RepeatSeparated creates a Stream over input that yields every match
// of item, where items may be preceded and followed by any number of
// matches of separator. Runs of separators never yield items.
func RepeatSeparated[S, T any](separator Parser[S], item Parser[T], input string) *Stream[T] {
	return &Stream[T]{
		item:   SkipThen(Many(Recognize(separator)), item),
		window: input,
	}
}

// Next returns the item at the front of the stream.
func (s *Stream[T]) Next() (T, bool) {
	v, rest, ok := s.item.ParseFront(s.window)
	if !ok {
		s.window = ""
		return v, false
	}
	s.window = rest
	return v, true
}

// NextBack returns the item at the back of the stream.
func (s *Stream[T]) NextBack() (T, bool) {
	v, rest, ok := s.item.ParseBack(s.window)
	if !ok {
		s.window = ""
		return v, false
	}
	s.window = rest
	return v, true
}

// Remainder returns the input that has not been consumed yet.
func (s *Stream[T]) Remainder() string {
	return s.window
}

type recognizeParser[S any] struct {
	base Parser[S]
}

// Recognize creates a Parser that discards the output of another
// Parser, yielding the piece of input it consumed instead.
func Recognize[S any](base Parser[S]) Parser[string] {
	return recognizeParser[S]{base: base}
}

func (p recognizeParser[S]) ParseFront(input string) (string, string, bool) {
	_, rest, ok := p.base.ParseFront(input)
	if !ok {
		return "", input, false
	}
	return input[:len(input)-len(rest)], rest, true
}

func (p recognizeParser[S]) ParseBack(input string) (string, string, bool) {
	_, rest, ok := p.base.ParseBack(input)
	if !ok {
		return "", input, false
	}
	return input[len(rest):], rest, true
}
