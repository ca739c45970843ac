package keyspace

// Str is the String value variant: a binary-safe byte sequence.
type Str struct {
	data []byte
}

func NewStr(data []byte) *Str {
	// Own a copy: the keyspace exclusively owns every string inside a value
	// (spec.md §3 Ownership); the caller's argument slice may be reused.
	return &Str{data: append([]byte(nil), data...)}
}

func (s *Str) Kind() ValueKind { return KindString }

func (s *Str) Bytes() []byte { return s.data }

func (s *Str) Len() int { return len(s.data) }
