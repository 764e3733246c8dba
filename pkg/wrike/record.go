package wrike

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// idListSeparator joins ids into a single batch path segment, e.g.
// "folders/IEAAA,IEAAB".
const idListSeparator = ","

// Record is a single resource object exactly as returned by the API: a
// contact, folder, task, custom field, workflow or custom status. Every
// record carries a string "id". The client never mutates records.
type Record map[string]any

// Dictionary maps a record id to the record with that id.
type Dictionary map[string]Record

// ID returns the record's "id" field. ok is false when the field is missing
// or is not a string.
func (r Record) ID() (id string, ok bool) {
	id, ok = r["id"].(string)
	return id, ok
}

// Lookup walks nested objects along path and returns the value found there.
//
// The result is absent (ok == false) when a key along the path is missing,
// when an intermediate value is not a JSON object, or when the final value
// is JSON null. Lookup never panics and never returns an error.
func (r Record) Lookup(path ...string) (any, bool) {
	var cur any = r
	for _, key := range path {
		var obj map[string]any
		switch v := cur.(type) {
		case Record:
			obj = v
		case map[string]any:
			obj = v
		default:
			return nil, false
		}

		next, ok := obj[key]
		if !ok {
			return nil, false
		}
		cur = next
	}

	if cur == nil {
		return nil, false
	}
	return cur, true
}

// String is Lookup restricted to string values. A value of any other type
// is reported as absent.
func (r Record) String(path ...string) (string, bool) {
	v, ok := r.Lookup(path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Records returns the list stored at key as records. Entries that are not
// JSON objects come back as nil records in their position, so callers can
// reject them. ok is false when key is missing or is not a list.
func (r Record) Records(key string) ([]Record, bool) {
	raw, ok := r[key].([]any)
	if !ok {
		if typed, ok := r[key].([]Record); ok {
			return typed, true
		}
		return nil, false
	}

	out := make([]Record, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case Record:
			out = append(out, v)
		case map[string]any:
			out = append(out, Record(v))
		default:
			out = append(out, nil)
		}
	}
	return out, true
}

// Decode copies the record into out, a pointer to one of the typed views in
// this package (Folder, Contact, ...) or any struct with json tags.
func (r Record) Decode(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to create record decoder: %w", err)
	}

	if err := decoder.Decode(map[string]any(r)); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}

// ToDictionary indexes records by id.
//
// A record without a string "id" aborts the conversion with an error
// wrapping ErrKeyMissing; such records are never skipped. When two records
// share an id the later one wins.
func ToDictionary(records []Record) (Dictionary, error) {
	dict := make(Dictionary, len(records))
	for i, record := range records {
		id, ok := record.ID()
		if !ok {
			return nil, fmt.Errorf("record %d has no id: %w", i, ErrKeyMissing)
		}
		dict[id] = record
	}
	return dict, nil
}

// ToIDList joins ids into one path segment for batch fetches.
//
// An empty slice yields "", so "folders/" + ToIDList(nil) requests every
// folder rather than none. Callers that mean "nothing" must check for an
// empty slice themselves.
func ToIDList(ids []string) string {
	return strings.Join(ids, idListSeparator)
}

// Values returns the dictionary's records ordered by id.
func (d Dictionary) Values() []Record {
	ids := d.IDs()
	out := make([]Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, d[id])
	}
	return out
}

// IDs returns the dictionary keys in ascending order.
func (d Dictionary) IDs() []string {
	ids := make([]string, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
