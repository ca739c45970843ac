package keyspace

const (
	initialCapacity = 16
	loadFactor      = 0.75
)

// entry is one chained bucket link, keyed by the raw key bytes.
type entry struct {
	key   []byte
	value Value
	next  *entry
}

// table is a growable hash map from key bytes to a tagged Value, using
// separate chaining and MurmurHash2 over the key bytes, mirroring the
// single unified map called for in spec.md/SPEC_FULL.md (replacing the
// original C source's two incompatible map implementations with one).
//
// table is not goroutine-safe by design: the engine is single-threaded
// cooperative (SPEC_FULL.md §5), so no locking is needed here.
type table struct {
	buckets []*entry
	count   int
}

func newTable() *table {
	return &table{buckets: make([]*entry, initialCapacity)}
}

func (t *table) bucketIndex(key []byte) int {
	return int(murmur2(key, 0x1BADB002) % uint32(len(t.buckets)))
}

// get borrows the value stored at key, or nil if absent.
func (t *table) get(key []byte) Value {
	for e := t.buckets[t.bucketIndex(key)]; e != nil; e = e.next {
		if bytesEqual(e.key, key) {
			return e.value
		}
	}
	return nil
}

func (t *table) contains(key []byte) bool {
	return t.get(key) != nil
}

// put replaces any existing value at key unconditionally. Type-mismatch
// enforcement is a command-layer concern, not this layer's (SPEC_FULL.md §4.B).
func (t *table) put(key []byte, v Value) {
	idx := t.bucketIndex(key)
	for e := t.buckets[idx]; e != nil; e = e.next {
		if bytesEqual(e.key, key) {
			e.value = v
			return
		}
	}
	t.buckets[idx] = &entry{key: append([]byte(nil), key...), value: v, next: t.buckets[idx]}
	t.count++
	t.maybeGrow()
}

// remove deletes the value at key, returning whether it was present.
func (t *table) remove(key []byte) bool {
	idx := t.bucketIndex(key)
	var prev *entry
	for e := t.buckets[idx]; e != nil; e = e.next {
		if bytesEqual(e.key, key) {
			if prev == nil {
				t.buckets[idx] = e.next
			} else {
				prev.next = e.next
			}
			t.count--
			return true
		}
		prev = e
	}
	return false
}

func (t *table) size() int { return t.count }

func (t *table) clear() {
	t.buckets = make([]*entry, initialCapacity)
	t.count = 0
}

func (t *table) maybeGrow() {
	if float64(t.count)/float64(len(t.buckets)) < loadFactor {
		return
	}
	old := t.buckets
	t.buckets = make([]*entry, len(old)*2)
	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			idx := t.bucketIndex(e.key)
			e.next = t.buckets[idx]
			t.buckets[idx] = e
			e = next
		}
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
