package services

import (
	"civilprotection-backend/models"
	"civilprotection-backend/utils/jsonbody"
	"errors"
	"slices"
	"time"
)

// bodyReader reads typed fields from a request body and keeps the first
// failure, so a handler can read every field and check the error once.
type bodyReader struct {
	body *jsonbody.Body
	err  error
}

func readBody(raw []byte, required ...string) (*bodyReader, error) {
	body, err := jsonbody.Parse(raw)
	if err != nil {
		return nil, models.ErrBodyNeeded
	}
	if err := body.Require(required...); err != nil {
		return nil, models.ErrMissingData
	}
	return &bodyReader{body: body}, nil
}

func (r *bodyReader) fail(err error) {
	if r.err == nil && err != nil {
		r.err = translateBodyError(err)
	}
}

func (r *bodyReader) str(field string) string {
	s, err := r.body.String(field)
	r.fail(err)
	return s
}

func (r *bodyReader) optStr(field string) *string {
	s, err := r.body.OptionalString(field)
	r.fail(err)
	return s
}

func (r *bodyReader) integer(field string) int64 {
	n, err := r.body.Int(field)
	r.fail(err)
	return n
}

func (r *bodyReader) optInt(field string) *int64 {
	n, err := r.body.OptionalInt(field)
	r.fail(err)
	return n
}

func (r *bodyReader) boolean(field string) bool {
	b, err := r.body.Bool(field)
	r.fail(err)
	return b
}

func (r *bodyReader) optBool(field string) bool {
	b, err := r.body.OptionalBool(field)
	r.fail(err)
	return b
}

func (r *bodyReader) isNull(field string) bool {
	return r.body.IsNull(field)
}

func (r *bodyReader) ids(field string) ([]uint, bool) {
	ids, single, err := r.body.IDList(field)
	r.fail(err)
	return ids, single
}

// date is read after every other field so that type errors win over
// date format errors. badDate is the error reported for this layout.
func (r *bodyReader) date(field, layout string, badDate *models.AppError) time.Time {
	if r.err != nil {
		return time.Time{}
	}
	t, err := r.body.Date(field, layout)
	if errors.Is(err, jsonbody.ErrBadDate) {
		r.err = badDate
		return t
	}
	r.fail(err)
	return t
}

func translateBodyError(err error) error {
	switch {
	case errors.Is(err, jsonbody.ErrNotObject):
		return models.ErrBodyNeeded
	case errors.Is(err, jsonbody.ErrMissing):
		return models.ErrMissingData
	case errors.Is(err, jsonbody.ErrWrongType):
		return models.ErrWrongType
	case errors.Is(err, jsonbody.ErrBadDate):
		return models.ErrBadDate
	default:
		return err
	}
}

// sameIDs compares two id lists ignoring order and duplicates
func sameIDs(a, b []uint) bool {
	return slices.Equal(normalizeIDs(a), normalizeIDs(b))
}

func normalizeIDs(ids []uint) []uint {
	out := append([]uint{}, ids...)
	slices.Sort(out)
	return slices.Compact(out)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
