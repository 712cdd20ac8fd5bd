// Package decode turns API response bodies into typed record slices.
//
// The encoding/json defaults are too lenient for the API's records: a missing
// key silently leaves the zero value behind. List rejects any element that
// lacks one of the record's tagged fields or carries null for it, while still
// ignoring keys the record does not declare. Keys match field names exactly.
package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// ErrNotArray is returned when the body is valid JSON but not an array.
var ErrNotArray = errors.New("decode: response is not a JSON array")

// MissingFieldError reports a required field that is absent or null in one element.
type MissingFieldError struct {
	Index int
	Field string
	Null  bool
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	if e.Null {
		return fmt.Sprintf("element %d: field %q is null", e.Index, e.Field)
	}
	return fmt.Sprintf("element %d: missing field %q", e.Index, e.Field)
}

// List decodes data as a JSON array of T.
func List[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		if !json.Valid(trimmed) {
			var probe any
			return nil, json.Unmarshal(trimmed, &probe)
		}
		return nil, ErrNotArray
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, err
	}

	fields := fieldsOf(reflect.TypeOf((*T)(nil)).Elem())
	out := make([]T, 0, len(raw))
	for i, elem := range raw {
		if len(fields.declared) > 0 {
			exact, err := exactKeys(i, elem, fields)
			if err != nil {
				return nil, err
			}
			elem = exact
		}

		var rec T
		if err := json.Unmarshal(elem, &rec); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// exactKeys checks the required keys of one element and drops keys that only
// differ in case from a declared one, since encoding/json would otherwise
// match them to the field.
func exactKeys(index int, elem json.RawMessage, fields recordFields) (json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(elem, &obj); err != nil {
		return nil, fmt.Errorf("element %d: %w", index, err)
	}
	for _, name := range fields.required {
		v, ok := obj[name]
		if !ok {
			return nil, &MissingFieldError{Index: index, Field: name}
		}
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return nil, &MissingFieldError{Index: index, Field: name, Null: true}
		}
	}

	stripped := false
	for key := range obj {
		if _, ok := fields.declared[key]; ok {
			continue
		}
		if fields.foldsToDeclared(key) {
			delete(obj, key)
			stripped = true
		}
	}
	if !stripped {
		return elem, nil
	}
	out, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("element %d: %w", index, err)
	}
	return out, nil
}

// recordFields holds the JSON keys of a struct record.
type recordFields struct {
	required []string
	declared map[string]struct{}
}

func (f recordFields) foldsToDeclared(key string) bool {
	for name := range f.declared {
		if strings.EqualFold(name, key) {
			return true
		}
	}
	return false
}

var fieldCache sync.Map // reflect.Type -> recordFields

// RequiredFields lists the JSON keys of t's exported fields that are not
// marked omitempty. Non-struct types have no required fields.
func RequiredFields(t reflect.Type) []string {
	return fieldsOf(t).required
}

func fieldsOf(t reflect.Type) recordFields {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return recordFields{}
	}
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(recordFields)
	}

	fields := recordFields{declared: make(map[string]struct{})}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		fields.declared[name] = struct{}{}
		if !strings.Contains(opts, "omitempty") {
			fields.required = append(fields.required, name)
		}
	}

	fieldCache.Store(t, fields)
	return fields
}
