package command

import (
	"github.com/rsms/redisd/internal/keyspace"
	"github.com/rsms/redisd/internal/resp"
)

func registerHashCommands(r *Registry) {
	r.register("HSET", 3, -1, cmdHSet)
	r.register("HGET", 2, 2, cmdHGet)
	r.register("HGETALL", 1, 1, cmdHGetAll)
	// HDEL/HEXISTS/HLEN recovered from original_source/server/commands/hash_commands.c.
	r.register("HDEL", 2, -1, cmdHDel)
	r.register("HEXISTS", 2, 2, cmdHExists)
	r.register("HLEN", 1, 1, cmdHLen)
}

func getOrCreateHash(ks *keyspace.Keyspace, key []byte) (*keyspace.Hash, error) {
	v, err := ks.GetTyped(key, keyspace.KindHash)
	if err != nil {
		return nil, err
	}
	if v == nil {
		h := keyspace.NewHash()
		ks.Put(key, h)
		return h, nil
	}
	return v.(*keyspace.Hash), nil
}

func cmdHSet(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	pairs := args[1:]
	if len(pairs)%2 != 0 {
		writeErr(w, keyspace.ErrSyntax)
		return
	}
	h, err := getOrCreateHash(ks, args[0])
	if err != nil {
		writeErr(w, err)
		return
	}
	var created int64
	for i := 0; i < len(pairs); i += 2 {
		if h.Set(pairs[i], pairs[i+1]) {
			created++
		}
	}
	w.Integer(created)
}

func cmdHGet(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindHash)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.NullBulk()
		return
	}
	val, ok := v.(*keyspace.Hash).Get(args[1])
	if !ok {
		w.NullBulk()
		return
	}
	w.Bulk(val)
}

func cmdHGetAll(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindHash)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.ArrayHeader(0)
		return
	}
	fields, values := v.(*keyspace.Hash).All()
	w.ArrayHeader(len(fields) * 2)
	for i := range fields {
		w.Bulk(fields[i])
		w.Bulk(values[i])
	}
}

func cmdHDel(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindHash)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.Integer(0)
		return
	}
	h := v.(*keyspace.Hash)
	var n int64
	for _, f := range args[1:] {
		if h.Del(f) {
			n++
		}
	}
	ks.DeleteIfEmpty(args[0])
	w.Integer(n)
}

func cmdHExists(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindHash)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.Integer(0)
		return
	}
	if v.(*keyspace.Hash).Exists(args[1]) {
		w.Integer(1)
	} else {
		w.Integer(0)
	}
}

func cmdHLen(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindHash)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.Integer(0)
		return
	}
	w.Integer(int64(v.(*keyspace.Hash).Len()))
}
