package keyspace

import (
	"testing"

	"github.com/rsms/go-testutil"
)

func TestHashSetGetDel(t *testing.T) {
	assert := testutil.NewAssert(t)
	h := NewHash()

	assert.Ok("set new field", h.Set([]byte("f1"), []byte("v1")))
	assert.Ok("set existing field returns false", !h.Set([]byte("f1"), []byte("v2")))

	v, ok := h.Get([]byte("f1"))
	assert.Ok("get ok", ok)
	assert.Eq("get updated value", v, []byte("v2"))

	assert.Ok("exists", h.Exists([]byte("f1")))
	assert.Ok("del existing", h.Del([]byte("f1")))
	assert.Ok("del missing returns false", !h.Del([]byte("f1")))
	assert.Ok("empty after del", h.Empty())
}

func TestHashAll(t *testing.T) {
	assert := testutil.NewAssert(t)
	h := NewHash()
	h.Set([]byte("a"), []byte("1"))
	h.Set([]byte("b"), []byte("2"))
	fields, values := h.All()
	assert.Eq("field count", len(fields), 2)
	assert.Eq("value count", len(values), 2)
}
