package tracefile

import (
	"bufio"
	"io"
)

// lineReader only ever returns whole newline-terminated lines, so that a
// file still being written can be parsed without tripping over a partial
// last line. A partial line is held back until the rest of it arrives.
type lineReader struct {
	r *bufio.Reader
	// partial is an unterminated line seen at EOF.
	partial []byte
	// pending is the part of a complete line that did not fit the caller's
	// buffer.
	pending []byte
}

var _ io.Reader = (*lineReader)(nil)

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{
		r: bufio.NewReader(r),
	}
}

func (l *lineReader) Read(b []byte) (int, error) {
	if len(l.pending) == 0 {
		data, err := l.r.ReadBytes('\n')
		l.partial = append(l.partial, data...)
		if err != nil {
			return 0, io.EOF
		}
		l.pending, l.partial = l.partial, nil
	}
	n := copy(b, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}
