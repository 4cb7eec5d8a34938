// Package shape turns raw query rows into typed records according to an
// explicit result shape declared by each repository operation.
//
// Decision order:
//
//	AsNone                 -> nothing, rows ignored
//	AsOptionalOne, no rows -> nothing, no error
//	AsList, no rows        -> empty slice, no error
//	any other, no rows     -> ErrEmptyResult
//	otherwise              -> every row converted and validated, store order kept
//
// Conversion failures are defects (the declared record does not match the
// query) and are reported as *MismatchError.
package shape

import (
	"bytes"
	"database/sql"
	stdErrors "errors"
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"

	"github.com/vibe-gaming/geo-api/pkg/validator"
)

type Shape int

const (
	AsNone Shape = iota
	AsOne
	AsOptionalOne
	AsList
)

func (s Shape) String() string {
	switch s {
	case AsNone:
		return "none"
	case AsOne:
		return "one"
	case AsOptionalOne:
		return "optional_one"
	case AsList:
		return "list"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// Row is one result row keyed by column name.
type Row = map[string]any

// ErrEmptyResult means the store returned no rows where one was required.
var ErrEmptyResult = stdErrors.New("empty result")

type MismatchError struct {
	Target string
	Shape  Shape
	Reason string
	Err    error
}

func (e *MismatchError) Error() string {
	msg := fmt.Sprintf("shape %s into %s: %s", e.Shape, e.Target, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MismatchError) Unwrap() error {
	return e.Err
}

// IsMismatch reports whether err carries a *MismatchError.
func IsMismatch(err error) bool {
	var m *MismatchError
	return stdErrors.As(err, &m)
}

// Collect applies s to rows and returns the converted records. AsNone and an
// empty AsOptionalOne yield a nil slice. An empty AsList yields an empty non-nil slice.
func Collect[T any](s Shape, rows []Row) ([]T, error) {
	switch s {
	case AsNone:
		return nil, nil
	case AsOptionalOne:
		if len(rows) == 0 {
			return nil, nil
		}
		s = AsOne
	case AsList:
		if len(rows) == 0 {
			return []T{}, nil
		}
	case AsOne:
	default:
		return nil, mismatch[T](s, "unknown shape", nil)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyResult
	}
	if s == AsOne && len(rows) > 1 {
		return nil, mismatch[T](s, fmt.Sprintf("expected one row, got %d", len(rows)), nil)
	}

	out := make([]T, 0, len(rows))
	for i, row := range rows {
		rec, err := convert[T](row)
		if err != nil {
			return nil, mismatch[T](s, fmt.Sprintf("row %d", i), err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// One returns the single record or ErrEmptyResult.
func One[T any](rows []Row) (*T, error) {
	recs, err := Collect[T](AsOne, rows)
	if err != nil {
		return nil, err
	}
	return &recs[0], nil
}

// OptionalOne returns nil without error when there are no rows.
func OptionalOne[T any](rows []Row) (*T, error) {
	recs, err := Collect[T](AsOptionalOne, rows)
	if err != nil || len(recs) == 0 {
		return nil, err
	}
	return &recs[0], nil
}

func List[T any](rows []Row) ([]T, error) {
	return Collect[T](AsList, rows)
}

func convert[T any](row Row) (T, error) {
	var rec T

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "db",
		ErrorUnused: true,
		ErrorUnset:  true,
		DecodeHook:  bytesToString,
		Result:      &rec,
	})
	if err != nil {
		return rec, err
	}
	if err := dec.Decode(Materialize(row)); err != nil {
		return rec, err
	}
	if err := validator.Struct(rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// Materialize returns a copy of row whose binary buffer values are owned copies,
// so records stay valid after the driver reuses its buffers.
func Materialize(row Row) Row {
	out := make(Row, len(row))
	for k, v := range row {
		switch b := v.(type) {
		case sql.RawBytes:
			out[k] = bytes.Clone([]byte(b))
		case []byte:
			out[k] = bytes.Clone(b)
		default:
			out[k] = v
		}
	}
	return out
}

// bytesToString lets text columns that a driver reports as bytes land in string fields.
var bytesToString mapstructure.DecodeHookFuncType = func(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	if b, ok := data.([]byte); ok {
		return string(b), nil
	}
	return data, nil
}

func mismatch[T any](s Shape, reason string, err error) error {
	return errors.WithStack(&MismatchError{
		Target: reflect.TypeFor[T]().String(),
		Shape:  s,
		Reason: reason,
		Err:    err,
	})
}
