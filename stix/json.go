package stix

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// The open custom-property bag on every object means none of the structs in
// this package can round-trip through encoding/json alone: unmatched wire
// keys must be collected on decode and merged back on encode. The helpers
// here do that once, keyed on the struct's json tags, so each object type
// only needs a thin MarshalJSON/UnmarshalJSON pair.

var knownKeyCache sync.Map // reflect.Type -> map[string]struct{}

// knownJSONKeys returns the set of wire keys consumed by t's typed fields,
// including fields promoted from embedded structs.
func knownJSONKeys(t reflect.Type) map[string]struct{} {
	if cached, ok := knownKeyCache.Load(t); ok {
		return cached.(map[string]struct{})
	}

	keys := make(map[string]struct{})
	collectJSONKeys(t, keys)
	knownKeyCache.Store(t, keys)
	return keys
}

func collectJSONKeys(t reflect.Type, keys map[string]struct{}) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			collectJSONKeys(field.Type, keys)
			continue
		}
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = field.Name
		}
		keys[name] = struct{}{}
	}
}

// decodeExtras returns the wire properties in data that are not consumed by
// the typed fields of v. Returns nil when every key matched.
func decodeExtras(data []byte, v any) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	for key := range knownJSONKeys(reflect.TypeOf(v)) {
		delete(raw, key)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// encodeWithExtras marshals v and merges extras into the resulting JSON
// object. Typed fields win: an extra whose key collides with a named field
// is dropped rather than allowed to shadow it.
func encodeWithExtras(v any, extras map[string]any) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extras) == 0 {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for key, value := range extras {
		if _, taken := merged[key]; taken {
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		merged[key] = encoded
	}
	return json.Marshal(merged)
}
