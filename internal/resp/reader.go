// Package resp implements the wire codec of spec.md §4.C: parsing framed
// client requests (inline or RESP array framing) and encoding typed
// replies. Grounded on the teacher's redis/resp.go, redis/resp-read.go and
// redis/util.go, which parse the identical wire format against a blocking
// *bufio.Reader as a client; this package is restructured to operate on a
// plain byte slice so it can report "incomplete" without consuming or
// blocking, which the connection manager's non-blocking loop requires
// (SPEC_FULL.md §4.C).
package resp

import (
	"bytes"
	"errors"
	"strconv"
)

// ErrMalformed is returned when the framing itself is invalid (as opposed
// to merely incomplete); the caller closes the connection on this error
// (spec.md §4.C).
var ErrMalformed = errors.New("protocol error: malformed request")

// TryParse attempts to parse exactly one complete request from the front
// of buf. If buf holds fewer bytes than a full request needs, it returns
// ok=false, consumed=0, err=nil and leaves buf untouched, so the caller can
// wait for more bytes (spec.md §4.C: "consumes exactly one complete
// request or none"). On malformed framing it returns a non-nil err.
func TryParse(buf []byte) (argv [][]byte, consumed int, ok bool, err error) {
	if len(buf) == 0 {
		return nil, 0, false, nil
	}
	if buf[0] == '*' {
		return tryParseArray(buf)
	}
	return tryParseInline(buf)
}

// findLine locates the next "\r\n" or "\n" terminator starting at offset,
// returning the line (without its terminator) and the offset just past it.
func findLine(buf []byte, offset int) (line []byte, next int, ok bool) {
	rest := buf[offset:]
	i := bytes.IndexByte(rest, '\n')
	if i < 0 {
		return nil, 0, false
	}
	end := i
	if end > 0 && rest[end-1] == '\r' {
		end--
	}
	return rest[:end], offset + i + 1, true
}

func tryParseInline(buf []byte) (argv [][]byte, consumed int, ok bool, err error) {
	line, next, found := findLine(buf, 0)
	if !found {
		return nil, 0, false, nil
	}
	fields := bytes.Fields(line)
	argv = make([][]byte, len(fields))
	for i, f := range fields {
		argv[i] = append([]byte(nil), f...)
	}
	return argv, next, true, nil
}

func tryParseArray(buf []byte) (argv [][]byte, consumed int, ok bool, err error) {
	line, offset, found := findLine(buf, 0)
	if !found {
		return nil, 0, false, nil
	}
	if len(line) < 2 || line[0] != '*' {
		return nil, 0, false, ErrMalformed
	}
	n, perr := strconv.Atoi(string(line[1:]))
	if perr != nil {
		return nil, 0, false, ErrMalformed
	}
	if n <= 0 {
		return nil, offset, true, nil
	}

	out := make([][]byte, n)
	for i := 0; i < n; i++ {
		hdr, next, found := findLine(buf, offset)
		if !found {
			return nil, 0, false, nil
		}
		if len(hdr) < 2 || hdr[0] != '$' {
			return nil, 0, false, ErrMalformed
		}
		l, perr := strconv.Atoi(string(hdr[1:]))
		if perr != nil || l < 0 {
			return nil, 0, false, ErrMalformed
		}
		need := next + l + 2 // payload + trailing CRLF
		if len(buf) < need {
			return nil, 0, false, nil
		}
		if buf[next+l] != '\r' || buf[next+l+1] != '\n' {
			return nil, 0, false, ErrMalformed
		}
		out[i] = append([]byte(nil), buf[next:next+l]...)
		offset = need
	}
	return out, offset, true, nil
}
