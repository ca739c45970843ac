package command

import (
	"github.com/rsms/redisd/internal/keyspace"
	"github.com/rsms/redisd/internal/resp"
)

func registerSetCommands(r *Registry) {
	r.register("SADD", 2, -1, cmdSAdd)
	r.register("SMEMBERS", 1, 1, cmdSMembers)
	r.register("SISMEMBER", 2, 2, cmdSIsMember)
	// SREM/SCARD recovered from original_source/server/commands/set_commands.c
	// (spec.md's distillation keeps only SADD/SMEMBERS/SISMEMBER).
	r.register("SREM", 2, -1, cmdSRem)
	r.register("SCARD", 1, 1, cmdSCard)
}

func getOrCreateSet(ks *keyspace.Keyspace, key []byte) (*keyspace.Set, error) {
	v, err := ks.GetTyped(key, keyspace.KindSet)
	if err != nil {
		return nil, err
	}
	if v == nil {
		s := keyspace.NewSet()
		ks.Put(key, s)
		return s, nil
	}
	return v.(*keyspace.Set), nil
}

func cmdSAdd(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	s, err := getOrCreateSet(ks, args[0])
	if err != nil {
		writeErr(w, err)
		return
	}
	var n int64
	for _, m := range args[1:] {
		if s.Add(m) {
			n++
		}
	}
	w.Integer(n)
}

func cmdSMembers(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindSet)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.ArrayHeader(0)
		return
	}
	w.BulkArray(v.(*keyspace.Set).Members())
}

func cmdSIsMember(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindSet)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.Integer(0)
		return
	}
	if v.(*keyspace.Set).Contains(args[1]) {
		w.Integer(1)
	} else {
		w.Integer(0)
	}
}

func cmdSRem(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindSet)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.Integer(0)
		return
	}
	s := v.(*keyspace.Set)
	var n int64
	for _, m := range args[1:] {
		if s.Remove(m) {
			n++
		}
	}
	ks.DeleteIfEmpty(args[0])
	w.Integer(n)
}

func cmdSCard(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindSet)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.Integer(0)
		return
	}
	w.Integer(int64(v.(*keyspace.Set).Len()))
}
