package keyspace

import (
	"testing"

	"github.com/rsms/go-testutil"
)

func TestStreamAppendMonotonic(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := NewStream()

	err := s.Append(StreamID{MS: 1, Seq: 0}, nil)
	assert.Ok("first append ok", err == nil)

	err = s.Append(StreamID{MS: 1, Seq: 0}, nil)
	assert.Eq("equal id rejected", err, ErrNonMonotonicID)

	err = s.Append(StreamID{MS: 0, Seq: 9}, nil)
	assert.Eq("smaller id rejected", err, ErrNonMonotonicID)

	err = s.Append(StreamID{MS: 1, Seq: 1}, nil)
	assert.Ok("strictly greater id accepted", err == nil)
	assert.Eq("length", s.Len(), 2)
}

func TestStreamNextAutoID(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := NewStream()

	id := s.NextAutoID(100)
	assert.Eq("first auto id seq", id.Seq, uint64(0))
	s.Append(id, nil)

	same := s.NextAutoID(100)
	assert.Eq("same ms bumps seq", same.Seq, uint64(1))

	advanced := s.NextAutoID(200)
	assert.Eq("advanced ms resets seq", advanced.Seq, uint64(0))
	assert.Eq("advanced ms value", advanced.MS, uint64(200))
}

func TestStreamRangeAndReadAfter(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := NewStream()
	s.Append(StreamID{MS: 1}, [][2][]byte{{[]byte("f"), []byte("1")}})
	s.Append(StreamID{MS: 2}, [][2][]byte{{[]byte("f"), []byte("2")}})
	s.Append(StreamID{MS: 3}, [][2][]byte{{[]byte("f"), []byte("3")}})

	all := s.Range(MinStreamID, MaxStreamID)
	assert.Eq("range all count", len(all), 3)

	after := s.ReadAfter(StreamID{MS: 1})
	assert.Eq("read after count", len(after), 2)
	assert.Eq("first after id", after[0].ID, StreamID{MS: 2})
}
