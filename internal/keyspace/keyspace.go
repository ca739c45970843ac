// Package keyspace implements the key-to-value map and the nine
// polymorphic value types of the store (spec.md §3, §4.A, §4.B).
package keyspace

import "errors"

// Sentinel errors, compared by callers the way the teacher's ent.go
// compares against ErrNotFound/ErrVersionConflict/etc.
var (
	ErrWrongType        = errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")
	ErrNotInteger       = errors.New("value is not an integer or out of range")
	ErrNotFloat         = errors.New("value is not a valid float")
	ErrInvalidBit       = errors.New("bit is not an integer or out of range")
	ErrInvalidCoords    = errors.New("invalid coordinates")
	ErrNonMonotonicID   = errors.New("The ID specified in XADD is equal or smaller than the target stream top item")
	ErrSyntax           = errors.New("syntax error")
)

// Keyspace is the single top-level map from keys to values (spec.md
// GLOSSARY). Empty containers (list/set/hash/stream) are deleted from the
// map automatically after the mutation that emptied them, per spec.md §3's
// Lifecycles / §9's resolved open question.
type Keyspace struct {
	t *table
}

func New() *Keyspace {
	return &Keyspace{t: newTable()}
}

// Get borrows the value at key, or nil if it does not exist.
func (ks *Keyspace) Get(key []byte) Value {
	return ks.t.get(key)
}

// GetTyped borrows the value at key and checks its kind. Returns
// ErrWrongType if the key exists with a different kind; returns (nil, nil)
// if the key does not exist at all.
func (ks *Keyspace) GetTyped(key []byte, want ValueKind) (Value, error) {
	v := ks.t.get(key)
	if v == nil {
		return nil, nil
	}
	if v.Kind() != want {
		return nil, ErrWrongType
	}
	return v, nil
}

// Put replaces any existing value at key unconditionally (used by SET).
func (ks *Keyspace) Put(key []byte, v Value) {
	ks.t.put(key, v)
}

// Del removes key, returning whether it was present.
func (ks *Keyspace) Del(key []byte) bool {
	return ks.t.remove(key)
}

func (ks *Keyspace) Contains(key []byte) bool {
	return ks.t.contains(key)
}

func (ks *Keyspace) Size() int {
	return ks.t.size()
}

func (ks *Keyspace) Clear() {
	ks.t.clear()
}

// emptiable is implemented by container values that can become empty and
// should then auto-delete their key.
type emptiable interface {
	Empty() bool
}

// DeleteIfEmpty removes key if its value is a container that reports Empty().
// Handlers call this after every mutation that could have drained a
// container (LPOP, SREM, HDEL, ZREM, ...).
func (ks *Keyspace) DeleteIfEmpty(key []byte) {
	v := ks.t.get(key)
	if v == nil {
		return
	}
	if e, ok := v.(emptiable); ok && e.Empty() {
		ks.t.remove(key)
	}
}
