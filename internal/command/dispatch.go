// Package command implements the dispatcher and per-command handlers of
// spec.md §4.E: a stateless, case-insensitive command table mapping a
// command name and argument vector onto a keyspace operation and a RESP
// reply. Grounded on the shape of the teacher's redis/rcmd.go, which
// likewise maps a command name onto a fixed handler, but rebuilt against
// this module's own Keyspace and resp.Writer rather than the teacher's
// client-side RESP types.
package command

import (
	"fmt"
	"strings"

	"github.com/rsms/redisd/internal/keyspace"
	"github.com/rsms/redisd/internal/resp"
)

// HandlerFunc executes one command's arguments (excluding the command name
// itself) against ks and writes exactly one reply to w.
type HandlerFunc func(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer)

type cmdEntry struct {
	name    string // canonical upper-case name, used in error messages
	minArgs int
	maxArgs int // -1 means unbounded
	fn      HandlerFunc
}

// Registry is the command table. It holds no keyspace state of its own
// (spec.md §4.E: "the dispatcher holds no state between commands") and is
// safe to build once and reuse across every connection.
type Registry struct {
	cmds map[string]*cmdEntry
}

// NewRegistry builds the full command table spec.md and SPEC_FULL.md §4.F
// enumerate.
func NewRegistry() *Registry {
	r := &Registry{cmds: make(map[string]*cmdEntry, 64)}
	registerStringCommands(r)
	registerListCommands(r)
	registerSetCommands(r)
	registerZSetCommands(r)
	registerHashCommands(r)
	registerBitmapCommands(r)
	registerHLLCommands(r)
	registerGeoCommands(r)
	registerStreamCommands(r)
	return r
}

func (r *Registry) register(name string, minArgs, maxArgs int, fn HandlerFunc) {
	r.cmds[name] = &cmdEntry{name: name, minArgs: minArgs, maxArgs: maxArgs, fn: fn}
}

// Dispatch normalizes name, looks it up, checks arity, and runs the
// handler. It always writes exactly one reply to w (spec.md §4.C/§4.E).
func (r *Registry) Dispatch(ks *keyspace.Keyspace, name string, args [][]byte, w *resp.Writer) {
	upper := strings.ToUpper(name)
	e, ok := r.cmds[upper]
	if !ok {
		w.Error("ERR unknown command '" + name + "'")
		return
	}
	if len(args) < e.minArgs || (e.maxArgs >= 0 && len(args) > e.maxArgs) {
		w.Error(fmt.Sprintf("ERR wrong number of arguments for '%s' command", strings.ToLower(e.name)))
		return
	}
	e.fn(ks, args, w)
}
