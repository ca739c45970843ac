package server

import (
	"net"

	"github.com/rsms/go-uuid"
)

// conn is one accepted client connection's state (SPEC_FULL.md §4.D). It
// carries no reference to the Server; Server.Run owns the client table and
// drives each conn's read/dispatch/write cycle directly.
type conn struct {
	id      string // go-uuid trace id, log lines only
	nc      net.Conn
	recvBuf []byte // unconsumed bytes read so far, grows on demand

	// authenticated is reserved for a future AUTH command; no command ever
	// flips it, since spec.md's Non-goals exclude authentication.
	authenticated bool
}

func newConn(nc net.Conn) *conn {
	return &conn{
		id:      uuid.MustGen().String(),
		nc:      nc,
		recvBuf: make([]byte, 0, 4096),
	}
}
