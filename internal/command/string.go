package command

import (
	"github.com/rsms/redisd/internal/keyspace"
	"github.com/rsms/redisd/internal/resp"
)

func registerStringCommands(r *Registry) {
	r.register("SET", 2, 2, cmdSet)
	r.register("GET", 1, 1, cmdGet)
	r.register("DEL", 1, -1, cmdDel)
}

func cmdSet(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	ks.Put(args[0], keyspace.NewStr(args[1]))
	w.OK()
}

func cmdGet(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindString)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.NullBulk()
		return
	}
	w.Bulk(v.(*keyspace.Str).Bytes())
}

// DEL deletes any number of keys regardless of type, recovered from
// original_source/server/commands (every type family supports deletion by
// key, not just strings).
func cmdDel(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	var n int64
	for _, key := range args {
		if ks.Contains(key) {
			ks.Del(key)
			n++
		}
	}
	w.Integer(n)
}
