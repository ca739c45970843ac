package command

import "errors"

// ErrUnknownCommand maps to spec.md §7's "Unknown command" kind.
var ErrUnknownCommand = errors.New("unknown command")

// writeErr translates an error into the wire form spec.md §4.C/§7 specify:
// WRONGTYPE errors already carry their own keyword prefix (see
// internal/keyspace.ErrWrongType), everything else gets "ERR " prepended.
// Handlers call it for every Go error they report; the dispatcher writes its
// own unknown-command and arity errors directly.
func writeErr(w errWriter, err error) {
	msg := err.Error()
	if len(msg) >= 9 && msg[:9] == "WRONGTYPE" {
		w.Error(msg)
		return
	}
	w.Error("ERR " + msg)
}

// errWriter is the minimal surface writeErr needs; satisfied by *resp.Writer.
type errWriter interface {
	Error(string)
}
