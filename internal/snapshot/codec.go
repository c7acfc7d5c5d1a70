package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"skill-manager/internal/domain"
	"skill-manager/internal/store"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

type Key interface {
	comparable
	String() string
}

// Record is a stored value that carries its own key.
type Record[K any] interface {
	Key() K
}

var (
	errMalformed = errors.New("document is not valid JSON")
	errNotObject = errors.New("document root must be an object")
)

// Encode writes entries as one JSON object mapping id to record. Keys keep
// the order of entries.
func Encode[K Key, V Record[K]](name string, entries []store.Entry[K, V]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key.String())
		if err != nil {
			return nil, &domain.PersistenceError{Op: "encode", Document: name, Err: err}
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, &domain.PersistenceError{Op: "encode", Document: name, Err: err}
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return pretty.Pretty(buf.Bytes()), nil
}

// Decode reads a document written by Encode, keeping the document's key
// order. Any defect fails the whole document.
func Decode[K Key, V Record[K]](name string, data []byte, parse func(string) (K, error)) ([]store.Entry[K, V], error) {
	fail := func(err error) error {
		return &domain.PersistenceError{Op: "decode", Document: name, Err: err}
	}

	if !gjson.ValidBytes(data) {
		return nil, fail(errMalformed)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fail(errNotObject)
	}

	var (
		out []store.Entry[K, V]
		err error
	)
	root.ForEach(func(key, value gjson.Result) bool {
		raw := key.String()
		id, perr := parse(raw)
		if perr != nil {
			err = fmt.Errorf("key %q: %w", raw, perr)
			return false
		}

		var rec V
		if uerr := json.Unmarshal([]byte(value.Raw), &rec); uerr != nil {
			err = fmt.Errorf("record %q: %w", raw, uerr)
			return false
		}
		if rec.Key() != id {
			err = fmt.Errorf("record %q: id %s does not match its key", raw, rec.Key().String())
			return false
		}

		out = append(out, store.Entry[K, V]{Key: id, Value: rec})
		return true
	})
	if err != nil {
		return nil, fail(err)
	}
	return out, nil
}
