package server

import "sync/atomic"

// Stop asks Run's loop to exit after its current iteration. Safe to call
// from any goroutine, e.g. a SIGINT/SIGTERM handler in cmd/redisd/main.go
// (SPEC_FULL.md §4.D: "explicit stop channel, not a raw global pointer").
func (s *Server) Stop() {
	atomic.StoreInt32(&s.running, 0)
}

func (s *Server) isRunning() bool {
	return atomic.LoadInt32(&s.running) != 0
}
