package cnfio

import (
	"bufio"
	"io"
	"math"
)

// defaultBufferSize is the size of the internal read buffer. One OS
// read per 64 KiB keeps syscall overhead negligible even for the
// largest benchmark instances.
const defaultBufferSize = 64 * 1024

// Reader is a forward-only byte lexer over a (possibly decompressed)
// input stream. The zero value is not usable; construct with Open or
// NewReader.
//
// Reader keeps exactly one byte of lookahead: Peek returns the current
// byte, Advance consumes it. Line counting is 1-based and advances on
// every consumed LF, so errors point at the offending input line.
type Reader struct {
	path    string
	br      *bufio.Reader
	closers []io.Closer
	cur     byte
	eof     bool
	readErr error
	line    int
}

// NewReader wraps an already-open stream. The path is used only for
// error messages. Mostly useful in tests; file inputs go through Open.
func NewReader(path string, r io.Reader) *Reader {
	reader := &Reader{
		path: path,
		br:   bufio.NewReaderSize(r, defaultBufferSize),
		line: 1,
	}
	reader.Advance() // prime the one-byte lookahead

	return reader
}

// Path returns the input path this reader was opened with.
func (r *Reader) Path() string { return r.path }

// Line returns the 1-based line number of the current byte.
func (r *Reader) Line() int { return r.line }

// EOF reports whether the stream is exhausted.
func (r *Reader) EOF() bool { return r.eof }

// Err returns the first I/O error encountered, wrapped as *ParseError,
// or nil. Lexing methods surface the same error; Err exists for
// callers that loop on Peek/Advance directly.
func (r *Reader) Err() error {
	if r.readErr == nil {
		return nil
	}

	return &ParseError{Path: r.path, Line: r.line, Msg: "read failed", Err: r.readErr}
}

// Peek returns the current byte, or 0 at end of input.
func (r *Reader) Peek() byte {
	if r.eof {
		return 0
	}

	return r.cur
}

// Advance consumes the current byte and loads the next one.
func (r *Reader) Advance() {
	if r.cur == '\n' {
		r.line++
	}
	b, err := r.br.ReadByte()
	if err != nil {
		r.eof = true
		r.cur = 0
		if err != io.EOF {
			r.readErr = err
		}

		return
	}
	r.cur = b
}

// SkipWhitespace consumes spaces, tabs, CR and LF bytes and returns
// how many were consumed.
func (r *Reader) SkipWhitespace() int {
	count := 0
	for !r.eof {
		switch r.cur {
		case ' ', '\t', '\r', '\n':
			r.Advance()
			count++
		default:
			return count
		}
	}

	return count
}

// SkipLine consumes bytes up to and including the next LF. It returns
// false when end of input was reached before an LF.
func (r *Reader) SkipLine() bool {
	for !r.eof {
		b := r.cur
		r.Advance()
		if b == '\n' {
			return true
		}
	}

	return false
}

// ReadInteger lexes an optional sign followed by decimal digits into
// *out. Leading whitespace is skipped. It returns (false, nil) at a
// clean end of input and (false, *ParseError) on a malformed token,
// overflow, or I/O failure.
func (r *Reader) ReadInteger(out *int) (bool, error) {
	r.SkipWhitespace()
	if r.eof {
		return false, r.Err()
	}

	negative := false
	switch r.cur {
	case '-':
		negative = true
		r.Advance()
	case '+':
		r.Advance()
	}

	value, ok, err := r.lexDigits()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, r.fail("expected digits", ErrMalformedInteger)
	}
	if negative {
		if value > uint64(math.MaxInt64) {
			return false, r.fail("integer out of range", ErrIntegerOverflow)
		}
		*out = int(-int64(value))
	} else {
		if value > uint64(math.MaxInt64) {
			return false, r.fail("integer out of range", ErrIntegerOverflow)
		}
		*out = int(value)
	}

	return true, nil
}

// ReadUint64 lexes an unsigned decimal into *out. Leading whitespace
// is skipped. It returns (false, nil) at a clean end of input.
func (r *Reader) ReadUint64(out *uint64) (bool, error) {
	r.SkipWhitespace()
	if r.eof {
		return false, r.Err()
	}

	value, ok, err := r.lexDigits()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, r.fail("expected digits", ErrMalformedInteger)
	}
	*out = value

	return true, nil
}

// ReadClause lexes integers into *out until the 0 terminator. The
// slice is reset first, so the same backing array is reused across
// clauses. It returns (false, nil) when the stream ends before any
// literal, and ErrTruncatedClause when it ends after one.
func (r *Reader) ReadClause(out *[]int) (bool, error) {
	*out = (*out)[:0]
	first := true
	for {
		var lit int
		ok, err := r.ReadInteger(&lit)
		if err != nil {
			return false, err
		}
		if !ok {
			if first {
				return false, nil
			}

			return false, r.fail("clause not terminated by 0", ErrTruncatedClause)
		}
		first = false
		if lit == 0 {
			return true, nil
		}
		*out = append(*out, lit)
	}
}

// lexDigits consumes a run of decimal digits. ok is false when the
// current byte is not a digit.
func (r *Reader) lexDigits() (value uint64, ok bool, err error) {
	seen := false
	for !r.eof && r.cur >= '0' && r.cur <= '9' {
		digit := uint64(r.cur - '0')
		if value > (math.MaxUint64-digit)/10 {
			return 0, false, r.fail("integer out of range", ErrIntegerOverflow)
		}
		value = value*10 + digit
		seen = true
		r.Advance()
	}
	if r.readErr != nil {
		return 0, false, r.Err()
	}

	return value, seen, nil
}

// fail builds a *ParseError at the current position.
func (r *Reader) fail(msg string, cause error) error {
	return &ParseError{Path: r.path, Line: r.line, Msg: msg, Err: cause}
}

// Close releases the decompressor (if any) and the underlying file.
// Readers constructed with NewReader own no resources and Close is a
// no-op for them.
func (r *Reader) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	r.closers = nil

	return first
}
