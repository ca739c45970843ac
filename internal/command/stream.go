package command

import (
	"time"

	"github.com/rsms/redisd/internal/keyspace"
	"github.com/rsms/redisd/internal/resp"
)

func registerStreamCommands(r *Registry) {
	r.register("XADD", 4, -1, cmdXAdd)
	r.register("XRANGE", 3, 3, cmdXRange)
	r.register("XREAD", 3, -1, cmdXRead)
	// XLEN recovered from original_source/server/commands/stream_commands.c.
	r.register("XLEN", 1, 1, cmdXLen)
}

func getOrCreateStream(ks *keyspace.Keyspace, key []byte) (*keyspace.Stream, error) {
	v, err := ks.GetTyped(key, keyspace.KindStream)
	if err != nil {
		return nil, err
	}
	if v == nil {
		s := keyspace.NewStream()
		ks.Put(key, s)
		return s, nil
	}
	return v.(*keyspace.Stream), nil
}

func cmdXAdd(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	fieldArgs := args[2:]
	if len(fieldArgs)%2 != 0 {
		writeErr(w, keyspace.ErrSyntax)
		return
	}
	var id keyspace.StreamID
	auto := string(args[1]) == "*"
	if !auto {
		var err error
		id, err = keyspace.ParseStreamID(string(args[1]))
		if err != nil {
			writeErr(w, err)
			return
		}
	}

	s, err := getOrCreateStream(ks, args[0])
	if err != nil {
		writeErr(w, err)
		return
	}
	if auto {
		id = s.NextAutoID(uint64(time.Now().UnixMilli()))
	}

	fields := make([][2][]byte, len(fieldArgs)/2)
	for i := 0; i < len(fieldArgs); i += 2 {
		fields[i/2] = [2][]byte{fieldArgs[i], fieldArgs[i+1]}
	}
	if err := s.Append(id, fields); err != nil {
		writeErr(w, err)
		return
	}
	w.Bulk([]byte(id.String()))
}

func writeStreamEntries(w *resp.Writer, entries []keyspace.StreamEntry) {
	w.ArrayHeader(len(entries))
	for _, e := range entries {
		w.ArrayHeader(2)
		w.Bulk([]byte(e.ID.String()))
		w.ArrayHeader(len(e.Fields) * 2)
		for _, fv := range e.Fields {
			w.Bulk(fv[0])
			w.Bulk(fv[1])
		}
	}
}

func parseStreamBound(b []byte, ifDash, ifPlus keyspace.StreamID) (keyspace.StreamID, error) {
	switch string(b) {
	case "-":
		return ifDash, nil
	case "+":
		return ifPlus, nil
	default:
		return keyspace.ParseStreamID(string(b))
	}
}

func cmdXRange(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindStream)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.ArrayHeader(0)
		return
	}
	start, err := parseStreamBound(args[1], keyspace.MinStreamID, keyspace.MaxStreamID)
	if err != nil {
		writeErr(w, err)
		return
	}
	end, err := parseStreamBound(args[2], keyspace.MinStreamID, keyspace.MaxStreamID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeStreamEntries(w, v.(*keyspace.Stream).Range(start, end))
}

// XREAD STREAMS key [key ...] id [id ...]: the conventional form, keyed on
// the literal STREAMS marker, recovered from original_source's XREAD
// handler (spec.md §4.A describes the single-key case; this generalizes to
// redis's documented multi-key form without changing single-key semantics).
func cmdXRead(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	if !equalFold(args[0], "STREAMS") {
		writeErr(w, keyspace.ErrSyntax)
		return
	}
	rest := args[1:]
	if len(rest)%2 != 0 {
		writeErr(w, keyspace.ErrSyntax)
		return
	}
	n := len(rest) / 2
	keys := rest[:n]
	ids := rest[n:]

	// Resolve every id and key first so an error is the only reply written.
	afters := make([]keyspace.StreamID, n)
	streams := make([]*keyspace.Stream, n)
	for i := 0; i < n; i++ {
		var err error
		if string(ids[i]) == "$" {
			afters[i] = keyspace.MaxStreamID
		} else {
			afters[i], err = keyspace.ParseStreamID(string(ids[i]))
			if err != nil {
				writeErr(w, err)
				return
			}
		}
		v, err := ks.GetTyped(keys[i], keyspace.KindStream)
		if err != nil {
			writeErr(w, err)
			return
		}
		streams[i], _ = v.(*keyspace.Stream)
	}

	w.ArrayHeader(n)
	for i := 0; i < n; i++ {
		w.ArrayHeader(2)
		w.Bulk(keys[i])
		if streams[i] == nil {
			w.ArrayHeader(0)
			continue
		}
		writeStreamEntries(w, streams[i].ReadAfter(afters[i]))
	}
}

func cmdXLen(ks *keyspace.Keyspace, args [][]byte, w *resp.Writer) {
	v, err := ks.GetTyped(args[0], keyspace.KindStream)
	if err != nil {
		writeErr(w, err)
		return
	}
	if v == nil {
		w.Integer(0)
		return
	}
	w.Integer(int64(v.(*keyspace.Stream).Len()))
}
