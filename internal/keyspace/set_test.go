package keyspace

import (
	"testing"

	"github.com/rsms/go-testutil"
)

func TestSetAddRemoveContains(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := NewSet()
	assert.Ok("add new", s.Add([]byte("a")))
	assert.Ok("add duplicate returns false", !s.Add([]byte("a")))
	assert.Eq("len", s.Len(), 1)
	assert.Ok("contains a", s.Contains([]byte("a")))
	assert.Ok("not contains b", !s.Contains([]byte("b")))

	assert.Ok("remove existing", s.Remove([]byte("a")))
	assert.Ok("remove missing returns false", !s.Remove([]byte("a")))
	assert.Ok("empty after remove", s.Empty())
}

func TestSetMembers(t *testing.T) {
	assert := testutil.NewAssert(t)
	s := NewSet()
	s.Add([]byte("x"))
	s.Add([]byte("y"))
	members := s.Members()
	assert.Eq("members count", len(members), 2)
}
