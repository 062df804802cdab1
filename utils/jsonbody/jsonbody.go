// Package jsonbody inspects raw JSON request bodies field by field.
//
// Bodies are not decoded into structs: every accessor checks presence and
// primitive type on the raw document so that a missing field, a field of the
// wrong JSON type and a badly formatted date can be told apart.
package jsonbody

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

var (
	ErrNotObject = errors.New("body is not a JSON object")
	ErrMissing   = errors.New("required field is missing")
	ErrWrongType = errors.New("field has the wrong type")
	ErrBadDate   = errors.New("field is not a valid date")
)

// FieldError ties a validation failure to the offending field
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldErr(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

// Body is a parsed JSON object
type Body struct {
	raw string
}

// Parse checks that raw holds a JSON object
func Parse(raw []byte) (*Body, error) {
	if len(strings.TrimSpace(string(raw))) == 0 || !gjson.ValidBytes(raw) {
		return nil, ErrNotObject
	}
	if !gjson.ParseBytes(raw).IsObject() {
		return nil, ErrNotObject
	}
	return &Body{raw: string(raw)}, nil
}

func (b *Body) get(field string) gjson.Result {
	return gjson.Get(b.raw, gjson.Escape(field))
}

// Has reports whether field is present, even when its value is null
func (b *Body) Has(field string) bool {
	return b.get(field).Exists()
}

// IsNull reports whether field is absent or explicitly null
func (b *Body) IsNull(field string) bool {
	r := b.get(field)
	return !r.Exists() || r.Type == gjson.Null
}

// Require fails with ErrMissing on the first absent field
func (b *Body) Require(fields ...string) error {
	for _, f := range fields {
		if !b.Has(f) {
			return fieldErr(f, ErrMissing)
		}
	}
	return nil
}

// String returns a required string field
func (b *Body) String(field string) (string, error) {
	r := b.get(field)
	if !r.Exists() {
		return "", fieldErr(field, ErrMissing)
	}
	if r.Type != gjson.String {
		return "", fieldErr(field, ErrWrongType)
	}
	return r.Str, nil
}

// OptionalString returns nil when field is absent or null
func (b *Body) OptionalString(field string) (*string, error) {
	if b.IsNull(field) {
		return nil, nil
	}
	s, err := b.String(field)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Int returns a required integer field. Fractional or exponent notation
// numbers are rejected.
func (b *Body) Int(field string) (int64, error) {
	r := b.get(field)
	if !r.Exists() {
		return 0, fieldErr(field, ErrMissing)
	}
	if !isInteger(r) {
		return 0, fieldErr(field, ErrWrongType)
	}
	return r.Int(), nil
}

// OptionalInt returns nil when field is absent or null
func (b *Body) OptionalInt(field string) (*int64, error) {
	if b.IsNull(field) {
		return nil, nil
	}
	n, err := b.Int(field)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Bool returns a required boolean field
func (b *Body) Bool(field string) (bool, error) {
	r := b.get(field)
	if !r.Exists() {
		return false, fieldErr(field, ErrMissing)
	}
	if r.Type != gjson.True && r.Type != gjson.False {
		return false, fieldErr(field, ErrWrongType)
	}
	return r.Bool(), nil
}

// OptionalBool returns false when field is absent or null
func (b *Body) OptionalBool(field string) (bool, error) {
	if b.IsNull(field) {
		return false, nil
	}
	return b.Bool(field)
}

// Date parses a required date field with layout. The wall clock is kept
// as sent and tagged UTC.
func (b *Body) Date(field, layout string) (time.Time, error) {
	r := b.get(field)
	if !r.Exists() {
		return time.Time{}, fieldErr(field, ErrMissing)
	}
	if r.Type != gjson.String {
		return time.Time{}, fieldErr(field, ErrBadDate)
	}
	t, err := time.ParseInLocation(layout, r.Str, time.UTC)
	if err != nil {
		return time.Time{}, fieldErr(field, ErrBadDate)
	}
	return t, nil
}

// IDList reads a field holding either one id or an array of ids. single is
// true when a bare integer was sent.
func (b *Body) IDList(field string) (ids []uint, single bool, err error) {
	r := b.get(field)
	if !r.Exists() {
		return nil, false, fieldErr(field, ErrMissing)
	}
	if r.Type == gjson.Number {
		id, ok := toID(r)
		if !ok {
			return nil, false, fieldErr(field, ErrWrongType)
		}
		return []uint{id}, true, nil
	}
	if !r.IsArray() {
		return nil, false, fieldErr(field, ErrWrongType)
	}
	ids = []uint{}
	for _, item := range r.Array() {
		id, ok := toID(item)
		if !ok {
			return nil, false, fieldErr(field, ErrWrongType)
		}
		ids = append(ids, id)
	}
	return ids, false, nil
}

func isInteger(r gjson.Result) bool {
	if r.Type != gjson.Number {
		return false
	}
	if strings.ContainsAny(r.Raw, ".eE") {
		return false
	}
	return r.Num >= math.MinInt64 && r.Num <= math.MaxInt64
}

func toID(r gjson.Result) (uint, bool) {
	if !isInteger(r) {
		return 0, false
	}
	n := r.Int()
	if n < 0 {
		return 0, false
	}
	return uint(n), true
}
