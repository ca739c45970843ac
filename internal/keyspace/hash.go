package keyspace

// Hash is the Hash value variant: a field-to-value mapping with unique
// fields (spec.md §4.A).
type Hash struct {
	m map[string][]byte
}

func NewHash() *Hash { return &Hash{m: make(map[string][]byte)} }

func (h *Hash) Kind() ValueKind { return KindHash }

func (h *Hash) Len() int { return len(h.m) }

func (h *Hash) Empty() bool { return len(h.m) == 0 }

// Set returns true iff field was newly created (vs. an update).
func (h *Hash) Set(field, value []byte) bool {
	k := string(field)
	_, existed := h.m[k]
	h.m[k] = append([]byte(nil), value...)
	return !existed
}

func (h *Hash) Get(field []byte) ([]byte, bool) {
	v, ok := h.m[string(field)]
	return v, ok
}

func (h *Hash) Del(field []byte) bool {
	k := string(field)
	if _, ok := h.m[k]; !ok {
		return false
	}
	delete(h.m, k)
	return true
}

func (h *Hash) Exists(field []byte) bool {
	_, ok := h.m[string(field)]
	return ok
}

// All returns all field/value pairs; iteration order is unspecified
// (spec.md §4.A).
func (h *Hash) All() (fields, values [][]byte) {
	fields = make([][]byte, 0, len(h.m))
	values = make([][]byte, 0, len(h.m))
	for k, v := range h.m {
		fields = append(fields, []byte(k))
		values = append(values, v)
	}
	return
}
