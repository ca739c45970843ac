package keyspace

import (
	"math"
	"testing"

	"github.com/rsms/go-testutil"
)

func TestGeoAddPosDistance(t *testing.T) {
	assert := testutil.NewAssert(t)
	g := NewGeo()

	// Palermo and Catania, the canonical GEOADD example coordinates.
	isNew, err := g.Add("Palermo", 13.361389, 38.115556)
	assert.Ok("no error adding Palermo", err == nil)
	assert.Ok("Palermo is new", isNew)

	_, err = g.Add("Catania", 15.087269, 37.502669)
	assert.Ok("no error adding Catania", err == nil)

	lon, lat, ok := g.Pos("Palermo")
	assert.Ok("pos found", ok)
	assert.Ok("lon roughly matches", math.Abs(lon-13.361389) < 0.001)
	assert.Ok("lat roughly matches", math.Abs(lat-38.115556) < 0.001)

	dist, ok := g.Distance("Palermo", "Catania")
	assert.Ok("distance found", ok)
	// Real-world distance is ~166km; the haversine great-circle distance
	// between these points should land close to that.
	assert.Ok("distance in plausible range", dist > 150 && dist < 200)
}

func TestGeoAddRejectsInvalidCoords(t *testing.T) {
	assert := testutil.NewAssert(t)
	g := NewGeo()
	_, err := g.Add("bad", 200, 0)
	assert.Eq("invalid lon rejected", err, ErrInvalidCoords)
	_, err = g.Add("bad", 0, 90)
	assert.Eq("invalid lat rejected", err, ErrInvalidCoords)
}

func TestGeoHashStable(t *testing.T) {
	assert := testutil.NewAssert(t)
	g := NewGeo()
	g.Add("m", 13.361389, 38.115556)
	h1, ok := g.Hash("m")
	assert.Ok("hash found", ok)
	assert.Eq("hash is 11 chars", len(h1), 11)
	h2, _ := g.Hash("m")
	assert.Eq("hash is the same on repeated calls", h2, h1)
}
