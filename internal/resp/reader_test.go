package resp

import (
	"testing"

	"github.com/rsms/go-testutil"
)

func TestTryParseInline(t *testing.T) {
	assert := testutil.NewAssert(t)
	argv, consumed, ok, err := TryParse([]byte("GET foo\r\n"))
	assert.Ok("no error", err == nil)
	assert.Ok("parsed", ok)
	assert.Eq("consumed all bytes", consumed, len("GET foo\r\n"))
	assert.Eq("argv count", len(argv), 2)
	assert.Eq("argv 0", argv[0], []byte("GET"))
	assert.Eq("argv 1", argv[1], []byte("foo"))
}

func TestTryParseArray(t *testing.T) {
	assert := testutil.NewAssert(t)
	buf := []byte("*3\r\n$3\r\nSET\r\n$1\r\nk\r\n$1\r\nv\r\n")
	argv, consumed, ok, err := TryParse(buf)
	assert.Ok("no error", err == nil)
	assert.Ok("parsed", ok)
	assert.Eq("consumed all bytes", consumed, len(buf))
	assert.Eq("argv count", len(argv), 3)
	assert.Eq("argv 0", argv[0], []byte("SET"))
	assert.Eq("argv 1", argv[1], []byte("k"))
	assert.Eq("argv 2", argv[2], []byte("v"))
}

func TestTryParseArrayIncomplete(t *testing.T) {
	assert := testutil.NewAssert(t)
	buf := []byte("*2\r\n$3\r\nSET\r\n$1\r\nk")
	argv, consumed, ok, err := TryParse(buf)
	assert.Ok("no error on incomplete", err == nil)
	assert.Ok("not ok (needs more bytes)", !ok)
	assert.Eq("no bytes consumed", consumed, 0)
	assert.Ok("argv nil", argv == nil)
}

func TestTryParseEmptyBuffer(t *testing.T) {
	assert := testutil.NewAssert(t)
	argv, consumed, ok, err := TryParse(nil)
	assert.Ok("no error", err == nil)
	assert.Ok("not ok", !ok)
	assert.Eq("consumed 0", consumed, 0)
	assert.Ok("argv nil", argv == nil)
}

func TestTryParseMalformedArrayHeader(t *testing.T) {
	assert := testutil.NewAssert(t)
	_, _, _, err := TryParse([]byte("*abc\r\n"))
	assert.Eq("malformed header errors", err, ErrMalformed)
}

func TestTryParseMalformedBulkTerminator(t *testing.T) {
	assert := testutil.NewAssert(t)
	buf := []byte("*1\r\n$3\r\nSETXX")
	_, _, _, err := TryParse(buf)
	assert.Eq("missing CRLF terminator errors", err, ErrMalformed)
}

func TestTryParseDoesNotMutateOnIncomplete(t *testing.T) {
	assert := testutil.NewAssert(t)
	original := []byte("GET fo")
	buf := append([]byte(nil), original...)
	_, consumed, ok, err := TryParse(buf)
	assert.Ok("no error", err == nil)
	assert.Ok("incomplete line has no newline, waits", !ok)
	assert.Eq("consumed nothing", consumed, 0)
	assert.Eq("buffer untouched", buf, original)
}
