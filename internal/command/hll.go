package command

import (
	"github.com/rsms/redisd/internal/keyspace"
	"github.com/rsms/redisd/internal/resp"
)

func registerHLLCommands(r *Registry) {
	r.register("PFADD", 2, -1, cmdPFAdd)
	r.register("PFCOUNT", 1, -1, cmdPFCount)
	r.register("PFMERGE", 2, -1, cmdPFMerge)
}

func getOrCreateHLL(ks *keyspace.Keyspace, key []byte) (*keyspace.HyperLogLog, error) {
	v, err := ks.GetTyped(key, keyspace.KindHyperLogLog)
	if err != nil {
		return nil, err
	}
	if v == nil {
		h := keyspace.NewHyperLogLog()
		ks.Put(key, h)
		return h, nil
	}
	return v.(*keyspace.HyperLogLog), nil
}

func cmdPFAdd(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	h, err := getOrCreateHLL(ks, args[0])
	if err != nil {
		writeErr(w, err)
		return
	}
	var changed bool
	for _, elem := range args[1:] {
		if h.Add(elem) {
			changed = true
		}
	}
	if changed {
		w.Integer(1)
	} else {
		w.Integer(0)
	}
}

// PFCOUNT over multiple keys merges them into a scratch sketch rather than
// mutating any stored key (spec.md §4.A: PFCOUNT never mutates state).
func cmdPFCount(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	merged := keyspace.NewHyperLogLog()
	for _, key := range args {
		v, err := ks.GetTyped(key, keyspace.KindHyperLogLog)
		if err != nil {
			writeErr(w, err)
			return
		}
		if v != nil {
			merged.Merge(v.(*keyspace.HyperLogLog))
		}
	}
	w.Integer(merged.Count())
}

func cmdPFMerge(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	// Type-check every source before creating or changing dest.
	var srcs []*keyspace.HyperLogLog
	for _, key := range args[1:] {
		v, err := ks.GetTyped(key, keyspace.KindHyperLogLog)
		if err != nil {
			writeErr(w, err)
			return
		}
		if v != nil {
			srcs = append(srcs, v.(*keyspace.HyperLogLog))
		}
	}
	dest, err := getOrCreateHLL(ks, args[0])
	if err != nil {
		writeErr(w, err)
		return
	}
	for _, src := range srcs {
		dest.Merge(src)
	}
	w.OK()
}
