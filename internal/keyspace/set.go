package keyspace

// Set is the Set value variant: a hash-based collection of distinct byte
// strings (spec.md §4.A).
type Set struct {
	m map[string]struct{}
}

func NewSet() *Set { return &Set{m: make(map[string]struct{})} }

func (s *Set) Kind() ValueKind { return KindSet }

func (s *Set) Len() int { return len(s.m) }

func (s *Set) Empty() bool { return len(s.m) == 0 }

// Add returns true iff member was newly inserted.
func (s *Set) Add(member []byte) bool {
	k := string(member)
	if _, ok := s.m[k]; ok {
		return false
	}
	s.m[k] = struct{}{}
	return true
}

// Remove returns true iff member was present.
func (s *Set) Remove(member []byte) bool {
	k := string(member)
	if _, ok := s.m[k]; !ok {
		return false
	}
	delete(s.m, k)
	return true
}

func (s *Set) Contains(member []byte) bool {
	_, ok := s.m[string(member)]
	return ok
}

// Members returns all members in unspecified order (spec.md §8).
func (s *Set) Members() [][]byte {
	out := make([][]byte, 0, len(s.m))
	for k := range s.m {
		out = append(out, []byte(k))
	}
	return out
}
