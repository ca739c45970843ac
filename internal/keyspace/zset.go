package keyspace

// SortedSet is the SortedSet value variant: a member→score mapping plus a
// score-ordered index (spec.md §4.A). The auxiliary map gives O(1)
// Score(member) lookups; the skip list gives ordered traversal for Range.
type SortedSet struct {
	scores map[string]float64
	zl     *skipList
}

func NewSortedSet() *SortedSet {
	return &SortedSet{scores: make(map[string]float64), zl: newSkipList()}
}

func (z *SortedSet) Kind() ValueKind { return KindSortedSet }

func (z *SortedSet) Len() int { return len(z.scores) }

func (z *SortedSet) Empty() bool { return len(z.scores) == 0 }

// Add sets member's score, returning true iff member is newly added. If
// member already exists its old skip list node is removed and a new one
// inserted at the new score (order may change), per spec.md §4.A.
func (z *SortedSet) Add(member string, score float64) bool {
	if old, ok := z.scores[member]; ok {
		if old != score {
			z.zl.Remove(member, old)
			z.zl.Insert(member, score)
		}
		z.scores[member] = score
		return false
	}
	z.scores[member] = score
	z.zl.Insert(member, score)
	return true
}

// Score returns member's score, or (0, false) if absent.
func (z *SortedSet) Score(member string) (float64, bool) {
	s, ok := z.scores[member]
	return s, ok
}

// Remove deletes member, returning whether it existed.
func (z *SortedSet) Remove(member string) bool {
	score, ok := z.scores[member]
	if !ok {
		return false
	}
	delete(z.scores, member)
	z.zl.Remove(member, score)
	return true
}

// Range returns the inclusive index range [start, end] in (score, member)
// order, using the same clamp semantics as List.Range (spec.md §4.A).
func (z *SortedSet) Range(start, end int) []skipEntry {
	return z.zl.RangeByRank(start, end)
}
