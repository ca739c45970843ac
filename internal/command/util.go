package command

import (
	"strconv"
	"strings"

	"github.com/rsms/redisd/internal/keyspace"
)

// parseInt parses a command argument as a base-10 integer, returning
// keyspace.ErrNotInteger on failure so callers can route it through
// writeErr uniformly (spec.md §7).
func parseInt(b []byte) (int64, error) {
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0, keyspace.ErrNotInteger
	}
	return v, nil
}

// parseFloat parses a command argument as a float, returning
// keyspace.ErrNotFloat on failure.
func parseFloat(b []byte) (float64, error) {
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return 0, keyspace.ErrNotFloat
	}
	return v, nil
}

// equalFold reports whether b equals s, ignoring case (used for optional
// keyword arguments like WITHSCORES).
func equalFold(b []byte, s string) bool {
	return strings.EqualFold(string(b), s)
}
