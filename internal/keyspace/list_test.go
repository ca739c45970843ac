package keyspace

import (
	"testing"

	"github.com/rsms/go-testutil"
)

func TestListPushPop(t *testing.T) {
	assert := testutil.NewAssert(t)
	l := NewList()
	l.PushBack([]byte("b"))
	l.PushBack([]byte("c"))
	l.PushFront([]byte("a"))
	assert.Eq("len", l.Len(), 3)

	v, ok := l.PopFront()
	assert.Ok("pop front ok", ok)
	assert.Eq("pop front value", v, []byte("a"))

	v, ok = l.PopBack()
	assert.Ok("pop back ok", ok)
	assert.Eq("pop back value", v, []byte("c"))

	assert.Eq("len after pops", l.Len(), 1)
}

func TestListPopEmpty(t *testing.T) {
	assert := testutil.NewAssert(t)
	l := NewList()
	_, ok := l.PopFront()
	assert.Ok("pop front on empty", !ok)
	_, ok = l.PopBack()
	assert.Ok("pop back on empty", !ok)
}

func TestListRangeClamping(t *testing.T) {
	assert := testutil.NewAssert(t)
	l := NewList()
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		l.PushBack([]byte(v))
	}

	join := func(parts [][]byte) string {
		out := ""
		for _, p := range parts {
			out += string(p)
		}
		return out
	}

	assert.Eq("full range", join(l.Range(0, -1)), "abcde")
	assert.Eq("negative indices", join(l.Range(-3, -1)), "cde")
	assert.Eq("end beyond length clamps", join(l.Range(1, 100)), "bcde")
	assert.Eq("start past end is empty", len(l.Range(4, 1)), 0)
}
