package command

import (
	"github.com/rsms/redisd/internal/keyspace"
	"github.com/rsms/redisd/internal/resp"
)

func registerBitmapCommands(r *Registry) {
	r.register("SETBIT", 3, 3, cmdSetBit)
	r.register("GETBIT", 2, 2, cmdGetBit)
	r.register("BITCOUNT", 1, 3, cmdBitCount)
}

func getOrCreateBitmap(ks *keyspace.Keyspace, key []byte) (*keyspace.Bitmap, error) {
	v, err := ks.GetTyped(key, keyspace.KindBitmap)
	if err != nil {
		return nil, err
	}
	if v == nil {
		b := keyspace.NewBitmap()
		ks.Put(key, b)
		return b, nil
	}
	return v.(*keyspace.Bitmap), nil
}

func cmdSetBit(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	offset, err := parseInt(args[1])
	if err != nil || offset < 0 {
		writeErr(w, keyspace.ErrInvalidBit)
		return
	}
	value, err := parseInt(args[2])
	if err != nil || (value != 0 && value != 1) {
		writeErr(w, keyspace.ErrInvalidBit)
		return
	}
	b, err := getOrCreateBitmap(ks, args[0])
	if err != nil {
		writeErr(w, err)
		return
	}
	w.Integer(int64(b.SetBit(offset, int(value))))
}

func cmdGetBit(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	offset, err := parseInt(args[1])
	if err != nil || offset < 0 {
		writeErr(w, keyspace.ErrInvalidBit)
		return
	}
	v, err := ks.GetTyped(args[0], keyspace.KindBitmap)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.Integer(0)
		return
	}
	w.Integer(int64(v.(*keyspace.Bitmap).GetBit(offset)))
}

// BITCOUNT key [start end], byte offsets per SPEC_FULL.md §9's resolution
// of spec.md's open question.
func cmdBitCount(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	if len(args) != 1 && len(args) != 3 {
		writeErr(w, keyspace.ErrSyntax)
		return
	}
	v, err := ks.GetTyped(args[0], keyspace.KindBitmap)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.Integer(0)
		return
	}
	b := v.(*keyspace.Bitmap)
	if len(args) == 1 {
		w.Integer(b.BitCount(0, 0, false))
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
	w.Integer(b.BitCount(int(start), int(end), true))
}
