package command

import (
	"strconv"

	"github.com/rsms/redisd/internal/keyspace"
	"github.com/rsms/redisd/internal/resp"
)

func registerGeoCommands(r *Registry) {
	r.register("GEOADD", 4, -1, cmdGeoAdd)
	r.register("GEOPOS", 2, -1, cmdGeoPos)
	r.register("GEODIST", 3, 3, cmdGeoDist)
	// GEOHASH recovered from original_source/server/commands/geo_commands.c.
	r.register("GEOHASH", 2, -1, cmdGeoHash)
}

func getOrCreateGeo(ks *keyspace.Keyspace, key []byte) (*keyspace.Geo, error) {
	v, err := ks.GetTyped(key, keyspace.KindGeo)
	if err != nil {
		return nil, err
	}
	if v == nil {
		g := keyspace.NewGeo()
		ks.Put(key, g)
		return g, nil
	}
	return v.(*keyspace.Geo), nil
}

func cmdGeoAdd(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	triples := args[1:]
	if len(triples)%3 != 0 {
		writeErr(w, keyspace.ErrSyntax)
		return
	}
	// Validate every triple against a scratch index before touching the
	// keyspace, so a bad coordinate leaves no new key and no partial update.
	scratch := keyspace.NewGeo()
	for i := 0; i < len(triples); i += 3 {
		lon, err := parseFloat(triples[i])
		if err == nil {
			var lat float64
			if lat, err = parseFloat(triples[i+1]); err == nil {
				_, err = scratch.Add(string(triples[i+2]), lon, lat)
			}
		}
		if err != nil {
			writeErr(w, err)
			return
		}
	}
	g, err := getOrCreateGeo(ks, args[0])
	if err != nil {
		writeErr(w, err)
		return
	}
	var added int64
	for i := 0; i < len(triples); i += 3 {
		lon, err := parseFloat(triples[i])
		if err != nil {
			writeErr(w, err)
			return
		}
		lat, err := parseFloat(triples[i+1])
		if err != nil {
			writeErr(w, err)
			return
		}
		isNew, err := g.Add(string(triples[i+2]), lon, lat)
		if err != nil {
			writeErr(w, err)
			return
		}
		if isNew {
			added++
		}
	}
	w.Integer(added)
}

func cmdGeoPos(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindGeo)
	if err != nil {
		writeErr(w, err)
		return
	}
	g, _ := v.(*keyspace.Geo)
	w.ArrayHeader(len(args) - 1)
	for _, m := range args[1:] {
		if g == nil {
			w.NullArray()
			continue
		}
		lon, lat, ok := g.Pos(string(m))
		if !ok {
			w.NullArray()
			continue
		}
		w.ArrayHeader(2)
		w.Bulk([]byte(strconv.FormatFloat(lon, 'f', 6, 64)))
		w.Bulk([]byte(strconv.FormatFloat(lat, 'f', 6, 64)))
	}
}

func cmdGeoDist(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindGeo)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.NullBulk()
		return
	}
	dist, ok := v.(*keyspace.Geo).Distance(string(args[1]), string(args[2]))
	if !ok {
		w.NullBulk()
		return
	}
	w.Bulk([]byte(strconv.FormatFloat(dist, 'f', 4, 64)))
}

func cmdGeoHash(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindGeo)
	if err != nil {
		writeErr(w, err)
		return
	}
	g, _ := v.(*keyspace.Geo)
	w.ArrayHeader(len(args) - 1)
	for _, m := range args[1:] {
		if g == nil {
			w.NullBulk()
			continue
		}
		hash, ok := g.Hash(string(m))
		if !ok {
			w.NullBulk()
			continue
		}
		w.Bulk([]byte(hash))
	}
}
