package command

import (
	"strconv"

	"github.com/rsms/redisd/internal/keyspace"
	"github.com/rsms/redisd/internal/resp"
)

func registerZSetCommands(r *Registry) {
	r.register("ZADD", 3, -1, cmdZAdd)
	r.register("ZRANGE", 3, 4, cmdZRange)
	r.register("ZSCORE", 2, 2, cmdZScore)
	// ZCARD/ZREM recovered from original_source/server/commands/sorted_set_commands.c.
	r.register("ZCARD", 1, 1, cmdZCard)
	r.register("ZREM", 2, -1, cmdZRem)
}

func getOrCreateZSet(ks *keyspace.Keyspace, key []byte) (*keyspace.SortedSet, error) {
	v, err := ks.GetTyped(key, keyspace.KindSortedSet)
	if err != nil {
		return nil, err
	}
	if v == nil {
		z := keyspace.NewSortedSet()
		ks.Put(key, z)
		return z, nil
	}
	return v.(*keyspace.SortedSet), nil
}

func cmdZAdd(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	pairs := args[1:]
	if len(pairs)%2 != 0 {
		writeErr(w, keyspace.ErrSyntax)
		return
	}
	// Parse every score before touching the keyspace, so a bad score leaves
	// no new key and no partial update behind.
	scores := make([]float64, len(pairs)/2)
	for i := range scores {
		score, err := parseFloat(pairs[2*i])
		if err != nil {
			writeErr(w, err)
			return
		}
		scores[i] = score
	}
	z, err := getOrCreateZSet(ks, args[0])
	if err != nil {
		writeErr(w, err)
		return
	}
	var added int64
	for i, score := range scores {
		if z.Add(string(pairs[2*i+1]), score) {
			added++
		}
	}
	w.Integer(added)
}

func cmdZRange(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	withScores := false
	if len(args) == 4 {
		if !equalFold(args[3], "WITHSCORES") {
			writeErr(w, keyspace.ErrSyntax)
			return
		}
		withScores = true
	}
	v, err := ks.GetTyped(args[0], keyspace.KindSortedSet)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.ArrayHeader(0)
		return
	}
	start, err := parseInt(args[1])
	if err != nil {
		writeErr(w, err)
		return
	}
	end, err := parseInt(args[2])
	if err != nil {
		writeErr(w, err)
		return
	}
	entries := v.(*keyspace.SortedSet).Range(int(start), int(end))
	if !withScores {
		out := make([][]byte, len(entries))
		for i, e := range entries {
			out[i] = []byte(e.Member)
		}
		w.BulkArray(out)
		return
	}
	w.ArrayHeader(len(entries) * 2)
	for _, e := range entries {
		w.Bulk([]byte(e.Member))
		w.Bulk([]byte(strconv.FormatFloat(e.Score, 'g', -1, 64)))
	}
}

func cmdZScore(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindSortedSet)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.NullBulk()
		return
	}
	score, ok := v.(*keyspace.SortedSet).Score(string(args[1]))
	if !ok {
		w.NullBulk()
		return
	}
	w.Bulk([]byte(strconv.FormatFloat(score, 'g', -1, 64)))
}

func cmdZCard(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindSortedSet)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.Integer(0)
		return
	}
	w.Integer(int64(v.(*keyspace.SortedSet).Len()))
}

func cmdZRem(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindSortedSet)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.Integer(0)
		return
	}
	z := v.(*keyspace.SortedSet)
	var n int64
	for _, m := range args[1:] {
		if z.Remove(string(m)) {
			n++
		}
	}
	ks.DeleteIfEmpty(args[0])
	w.Integer(n)
}
