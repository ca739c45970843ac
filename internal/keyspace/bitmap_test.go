package keyspace

import (
	"testing"

	"github.com/rsms/go-testutil"
)

func TestBitmapSetGetBit(t *testing.T) {
	assert := testutil.NewAssert(t)
	b := NewBitmap()

	assert.Eq("unset bit beyond length reads 0", b.GetBit(100), 0)

	prev := b.SetBit(0, 1)
	assert.Eq("previous value of newly grown bit", prev, 0)
	assert.Eq("bit 0 set, MSB of byte 0", b.GetBit(0), 1)
	assert.Eq("bit 1 still 0", b.GetBit(1), 0)

	prev = b.SetBit(0, 0)
	assert.Eq("previous value before clearing", prev, 1)
	assert.Eq("bit 0 cleared", b.GetBit(0), 0)
}

func TestBitmapBitCount(t *testing.T) {
	assert := testutil.NewAssert(t)
	b := NewBitmap()
	b.SetBit(0, 1)
	b.SetBit(7, 1)
	b.SetBit(8, 1) // second byte
	assert.Eq("count whole bitmap", b.BitCount(0, 0, false), int64(3))
	assert.Eq("count first byte only", b.BitCount(0, 0, true), int64(2))
}
