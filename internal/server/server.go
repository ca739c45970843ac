// Package server implements the non-blocking, single-threaded connection
// manager of spec.md §4.D/§5: one goroutine accepts connections and drives
// every connection's read/dispatch/write cycle to completion before moving
// on, with no locking because there is never more than one goroutine
// touching the keyspace.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"

	"github.com/rsms/go-log"

	"github.com/rsms/redisd/config"
	"github.com/rsms/redisd/internal/command"
	"github.com/rsms/redisd/internal/keyspace"
	"github.com/rsms/redisd/internal/logging"
	"github.com/rsms/redisd/internal/resp"
)

// pollInterval is the sleep spec.md §4.D/§5 prescribes when an iteration
// found nothing to accept and nothing to read, to avoid busy-spinning the
// single loop goroutine.
const pollInterval = time.Millisecond

// ioDeadline bounds each non-blocking Accept/Read attempt. Go's net package
// has no true non-blocking mode at this layer, so a short deadline plus a
// net.Error.Timeout() check stands in for it, the same trick the teacher's
// radix pool dials with a bounded connect timeout rather than a raw
// non-blocking socket.
const ioDeadline = time.Millisecond

// Server is the top-level collaborator: one listener, one keyspace, one
// command registry, and the table of currently accepted connections.
type Server struct {
	cfg    config.Config
	reg    *command.Registry
	ks     *keyspace.Keyspace
	logger *log.Logger

	ln      *net.TCPListener
	conns   map[string]*conn
	running int32
}

// New constructs a Server ready to Run. It does not bind a socket yet.
func New(cfg config.Config) *Server {
	return &Server{
		cfg:    cfg,
		reg:    command.NewRegistry(),
		ks:     keyspace.New(),
		logger: logging.New("server"),
		conns:  make(map[string]*conn),
	}
}

// Run binds the listener and drives the accept/dispatch loop until Stop is
// called or a fatal listener error occurs. It returns nil on a clean Stop.
func (s *Server) Run() error {
	lc := net.ListenConfig{Control: setReuseAddr}
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	ln, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	tcpLn, ok := ln.(*net.TCPListener)
	if !ok {
		ln.Close()
		return fmt.Errorf("listener for %s is not TCP", addr)
	}
	s.ln = tcpLn
	defer s.ln.Close()

	s.running = 1
	if s.logger != nil {
		s.logger.Info("listening on %s", addr)
	}

	for s.isRunning() {
		didWork := s.acceptReady()
		didWork = s.serviceConns() || didWork
		if !didWork {
			time.Sleep(pollInterval)
		}
	}

	for id, c := range s.conns {
		c.nc.Close()
		delete(s.conns, id)
	}
	if s.logger != nil {
		s.logger.Info("stopped")
	}
	return nil
}

// acceptReady accepts every connection currently waiting, up to
// MaxClients; beyond that it accepts and immediately closes, per
// spec.md §4.D. Reports whether it did anything.
func (s *Server) acceptReady() bool {
	did := false
	for {
		s.ln.SetDeadline(time.Now().Add(ioDeadline))
		nc, err := s.ln.Accept()
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				return did
			}
			if s.logger != nil {
				s.logger.Warn("accept error: %v", err)
			}
			return did
		}
		did = true
		if len(s.conns) >= s.cfg.MaxClients {
			nc.Close()
			continue
		}
		c := newConn(nc)
		s.conns[c.id] = c
		if s.logger != nil {
			s.logger.Debug("accepted connection %s from %s", c.id, nc.RemoteAddr())
		}
	}
}

// serviceConns reads and dispatches whatever is currently available on
// every open connection. Reports whether any connection had data.
func (s *Server) serviceConns() bool {
	did := false
	for id, c := range s.conns {
		n, err := s.readAvailable(c)
		if n > 0 {
			did = true
		}
		if err != nil {
			s.closeConn(id)
			continue
		}
		if s.dispatchReady(c) {
			did = true
		}
	}
	return did
}

// readAvailable performs one non-blocking-style read into c's receive
// buffer. A timeout (nothing available yet) is not an error; EOF or any
// other read error means the connection must be closed.
func (s *Server) readAvailable(c *conn) (int, error) {
	var tmp [4096]byte
	c.nc.SetReadDeadline(time.Now().Add(ioDeadline))
	n, err := c.nc.Read(tmp[:])
	if n > 0 {
		c.recvBuf = append(c.recvBuf, tmp[:n]...)
	}
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return n, nil
		}
		if errors.Is(err, net.ErrClosed) {
			return n, err
		}
		return n, err
	}
	return n, nil
}

// dispatchReady drains every complete request currently buffered on c,
// running each through the command registry and writing its reply
// synchronously (spec.md §4.C/§4.D: one request in, one reply out, FIFO).
// Reports whether it processed at least one request.
func (s *Server) dispatchReady(c *conn) bool {
	processed := false
	var w resp.Writer
	for {
		argv, consumed, ok, err := resp.TryParse(c.recvBuf)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("conn %s: %v", c.id, err)
			}
			s.closeConn(c.id)
			return processed
		}
		if !ok {
			return processed
		}
		c.recvBuf = c.recvBuf[consumed:]
		processed = true

		if len(argv) == 0 {
			continue
		}
		w.Reset()
		s.reg.Dispatch(s.ks, string(argv[0]), argv[1:], &w)
		if _, err := c.nc.Write(w.Bytes()); err != nil {
			if s.logger != nil {
				s.logger.Warn("conn %s: write error: %v", c.id, err)
			}
			s.closeConn(c.id)
			return processed
		}
	}
}

func (s *Server) closeConn(id string) {
	c, ok := s.conns[id]
	if !ok {
		return
	}
	c.nc.Close()
	delete(s.conns, id)
	if s.logger != nil {
		s.logger.Debug("closed connection %s", id)
	}
}

// setReuseAddr sets SO_REUSEADDR on the listening socket before bind, the
// way the teacher's radix pool relies on stdlib's net for every socket
// concern it touches; SO_REUSEADDR itself has no idiomatic non-syscall
// home in the example corpus, so this one function reaches directly into
// the stdlib syscall package (see DESIGN.md).
func setReuseAddr(_, _ string, c syscall.RawConn) error {
	var opErr error
	err := c.Control(func(fd uintptr) {
		opErr = syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return opErr
}
