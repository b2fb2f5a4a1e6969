package path

// ScanningIterator is a ComponentIterator that scans the body of a
// path byte by byte. It keeps a cursor at either end of the body. Both
// cursors always point at a boundary between a separator and a
// component, meaning that the components yielded from either end can
// never overlap.
type ScanningIterator struct {
	body        string
	isSeparator func(c byte) bool
	front       int
	back        int
	rootPending bool
}

var _ ComponentIterator = (*ScanningIterator)(nil)

// NewScanningIterator creates a ScanningIterator. This function
// matches the signature of Splitter.
func NewScanningIterator(body string, syntax Syntax, includeRoot bool) ComponentIterator {
	return newScanningIterator(body, syntax, includeRoot)
}

func newScanningIterator(body string, syntax Syntax, includeRoot bool) *ScanningIterator {
	return &ScanningIterator{
		body:        body,
		isSeparator: syntax.IsSeparator,
		back:        len(body),
		rootPending: includeRoot,
	}
}

// ScanComponents is the Splitter that uses ScanningIterator. It is the
// default for paths.
var ScanComponents Splitter = NewScanningIterator

// nextSpan returns the offsets of the next component from the front.
func (it *ScanningIterator) nextSpan() (int, int, bool) {
	for it.front < it.back && it.isSeparator(it.body[it.front]) {
		it.front++
	}
	if it.front == it.back {
		return 0, 0, false
	}
	start := it.front
	for it.front < it.back && !it.isSeparator(it.body[it.front]) {
		it.front++
	}
	return start, it.front, true
}

// nextBackSpan returns the offsets of the next component from the back.
func (it *ScanningIterator) nextBackSpan() (int, int, bool) {
	for it.back > it.front && it.isSeparator(it.body[it.back-1]) {
		it.back--
	}
	if it.back == it.front {
		return 0, 0, false
	}
	end := it.back
	for it.back > it.front && !it.isSeparator(it.body[it.back-1]) {
		it.back--
	}
	return it.back, end, true
}

// Next returns the next component from the front.
func (it *ScanningIterator) Next() (Component, bool) {
	if it.rootPending {
		it.rootPending = false
		return RootDir, true
	}
	start, end, ok := it.nextSpan()
	if !ok {
		return Component{}, false
	}
	return classifySegment(it.body[start:end]), true
}

// NextBack returns the next component from the back. The root
// directory is yielded last.
func (it *ScanningIterator) NextBack() (Component, bool) {
	start, end, ok := it.nextBackSpan()
	if !ok {
		if it.rootPending {
			it.rootPending = false
			return RootDir, true
		}
		return Component{}, false
	}
	return classifySegment(it.body[start:end]), true
}

// TrailingSeparator returns whether the body that is scanned ends with
// a separator. Such separators are never yielded as components.
func (it *ScanningIterator) TrailingSeparator() bool {
	return it.body != "" && it.isSeparator(it.body[len(it.body)-1])
}
