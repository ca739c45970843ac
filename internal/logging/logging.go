// Package logging centralizes the server's loggers around
// github.com/rsms/go-log, used printf-style the same way the teacher's
// redis/redis.go uses its optional *log.Logger field (Logger.Info(...),
// .Warn(...), .Debug(...)), guarded by a nil check so logging can be
// disabled entirely by leaving the field unset.
package logging

import "github.com/rsms/go-log"

// New creates a named logger for one subsystem (e.g. "server", "keyspace",
// "command"), mirroring the one-Logger-per-collaborator shape of the
// teacher's Redis struct.
func New(name string) *log.Logger {
	return log.New(name)
}

// Nop is a convenience default for callers (e.g. tests) that don't want
// any output; every call site here nil-checks before logging just like
// redis.Redis.Logger does.
var Nop *log.Logger = nil
