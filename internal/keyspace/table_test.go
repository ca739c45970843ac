package keyspace

import (
	"fmt"
	"testing"

	"github.com/rsms/go-testutil"
)

func TestTablePutGetRemove(t *testing.T) {
	assert := testutil.NewAssert(t)

	tb := newTable()
	assert.Eq("size empty", tb.size(), 0)

	tb.put([]byte("a"), NewStr([]byte("1")))
	tb.put([]byte("b"), NewStr([]byte("2")))
	assert.Eq("size after 2 puts", tb.size(), 2)

	v := tb.get([]byte("a"))
	assert.Ok("get a found", v != nil)
	assert.Eq("get a value", v.(*Str).Bytes(), []byte("1"))

	assert.Ok("contains b", tb.contains([]byte("b")))
	assert.Ok("not contains c", !tb.contains([]byte("c")))

	assert.Ok("remove a", tb.remove([]byte("a")))
	assert.Ok("remove a again", !tb.remove([]byte("a")))
	assert.Eq("size after remove", tb.size(), 1)
}

func TestTablePutReplacesValue(t *testing.T) {
	assert := testutil.NewAssert(t)
	tb := newTable()
	tb.put([]byte("k"), NewStr([]byte("first")))
	tb.put([]byte("k"), NewStr([]byte("second")))
	assert.Eq("size stays 1 on replace", tb.size(), 1)
	v := tb.get([]byte("k"))
	assert.Eq("replaced value", v.(*Str).Bytes(), []byte("second"))
}

// TestTableGrows exercises the 0.75 load-factor doubling resize across
// enough insertions to force several grow cycles.
func TestTableGrows(t *testing.T) {
	assert := testutil.NewAssert(t)
	tb := newTable()
	const n = 1000
	for i := 0; i < n; i++ {
		tb.put([]byte(fmt.Sprintf("key-%d", i)), NewStr([]byte{byte(i)}))
	}
	assert.Eq("size after bulk insert", tb.size(), n)
	for i := 0; i < n; i++ {
		v := tb.get([]byte(fmt.Sprintf("key-%d", i)))
		assert.Ok("found after grow", v != nil)
		assert.Eq("byte preserved after grow", v.(*Str).Bytes(), []byte{byte(i)})
	}
}

func TestKeyspaceGetTypedWrongType(t *testing.T) {
	assert := testutil.NewAssert(t)
	ks := New()
	ks.Put([]byte("k"), NewStr([]byte("v")))
	_, err := ks.GetTyped([]byte("k"), KindList)
	assert.Eq("wrong type error", err, ErrWrongType)
}

func TestKeyspaceDeleteIfEmpty(t *testing.T) {
	assert := testutil.NewAssert(t)
	ks := New()
	l := NewList()
	l.PushBack([]byte("x"))
	ks.Put([]byte("k"), l)
	l.PopFront()
	ks.DeleteIfEmpty([]byte("k"))
	assert.Ok("key removed once list drained", !ks.Contains([]byte("k")))
}
