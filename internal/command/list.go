package command

import (
	"github.com/rsms/redisd/internal/keyspace"
	"github.com/rsms/redisd/internal/resp"
)

func registerListCommands(r *Registry) {
	r.register("LPUSH", 2, -1, cmdLPush)
	r.register("RPUSH", 2, -1, cmdRPush)
	r.register("LRANGE", 3, 3, cmdLRange)
	r.register("LPOP", 1, 1, cmdLPop)
	r.register("RPOP", 1, 1, cmdRPop)
	r.register("LLEN", 1, 1, cmdLLen)
}

func getOrCreateList(ks *keyspace.Keyspace, key []byte) (*keyspace.List, error) {
	v, err := ks.GetTyped(key, keyspace.KindList)
	if err != nil {
		return nil, err
	}
	if v == nil {
		l := keyspace.NewList()
		ks.Put(key, l)
		return l, nil
	}
	return v.(*keyspace.List), nil
}

func cmdLPush(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	l, err := getOrCreateList(ks, args[0])
	if err != nil {
		writeErr(w, err)
		return
	}
	for _, v := range args[1:] {
		l.PushFront(v)
	}
	w.Integer(int64(l.Len()))
}

func cmdRPush(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	l, err := getOrCreateList(ks, args[0])
	if err != nil {
		writeErr(w, err)
		return
	}
	for _, v := range args[1:] {
		l.PushBack(v)
	}
	w.Integer(int64(l.Len()))
}

func cmdLRange(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindList)
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
	w.BulkArray(v.(*keyspace.List).Range(int(start), int(end)))
}

func cmdLPop(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindList)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.NullBulk()
		return
	}
	l := v.(*keyspace.List)
	val, ok := l.PopFront()
	if !ok {
		w.NullBulk()
		return
	}
	ks.DeleteIfEmpty(args[0])
	w.Bulk(val)
}

func cmdRPop(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindList)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.NullBulk()
		return
	}
	l := v.(*keyspace.List)
	val, ok := l.PopBack()
	if !ok {
		w.NullBulk()
		return
	}
	ks.DeleteIfEmpty(args[0])
	w.Bulk(val)
}

func cmdLLen(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindList)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.Integer(0)
		return
	}
	w.Integer(int64(v.(*keyspace.List).Len()))
}
