package shape

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int    `db:"id" validate:"gt=0"`
	Name string `db:"name" validate:"required"`
}

type blob struct {
	ID      int    `db:"id"`
	Payload []byte `db:"payload"`
}

func row(id int64, name string) Row {
	return Row{"id": id, "name": name}
}

func TestCollect_EmptyRows(t *testing.T) {
	none, err := Collect[record](AsNone, nil)
	require.NoError(t, err)
	assert.Nil(t, none)

	opt, err := Collect[record](AsOptionalOne, nil)
	require.NoError(t, err)
	assert.Nil(t, opt)

	list, err := Collect[record](AsList, []Row{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = Collect[record](AsOne, nil)
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestCollect_NoneIgnoresRows(t *testing.T) {
	out, err := Collect[record](AsNone, []Row{{"garbage": true}})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCollect_ListKeepsStoreOrder(t *testing.T) {
	out, err := List[record]([]Row{row(3, "c"), row(1, "a"), row(2, "b")})
	require.NoError(t, err)
	assert.Equal(t, []record{{3, "c"}, {1, "a"}, {2, "b"}}, out)
}

func TestOne(t *testing.T) {
	rec, err := One[record]([]Row{row(7, "seven")})
	require.NoError(t, err)
	assert.Equal(t, &record{ID: 7, Name: "seven"}, rec)

	_, err = One[record](nil)
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestOptionalOne(t *testing.T) {
	rec, err := OptionalOne[record](nil)
	require.NoError(t, err)
	assert.Nil(t, rec)

	rec, err = OptionalOne[record]([]Row{row(1, "one")})
	require.NoError(t, err)
	assert.Equal(t, &record{ID: 1, Name: "one"}, rec)

	_, err = OptionalOne[record]([]Row{{"id": int64(0), "name": "zero"}})
	assert.True(t, IsMismatch(err))
}

func TestCollect_Mismatch(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		rows  []Row
	}{
		{"unknown column", AsOne, []Row{{"id": int64(1), "name": "a", "extra": 1}}},
		{"missing column", AsOne, []Row{{"id": int64(1)}}},
		{"wrong type", AsList, []Row{{"id": "one", "name": "a"}}},
		{"fails validation", AsList, []Row{row(1, "a"), row(2, "")}},
		{"too many rows", AsOne, []Row{row(1, "a"), row(2, "b")}},
		{"unknown shape", Shape(42), []Row{row(1, "a")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Collect[record](tt.shape, tt.rows)
			require.Error(t, err)

			var m *MismatchError
			require.True(t, errors.As(err, &m))
			assert.Equal(t, "shape.record", m.Target)
			assert.False(t, errors.Is(err, ErrEmptyResult))
		})
	}
}

func TestCollect_BytesAsString(t *testing.T) {
	rec, err := One[record]([]Row{{"id": int64(1), "name": []byte("bytes")}})
	require.NoError(t, err)
	assert.Equal(t, "bytes", rec.Name)
}

func TestMaterialize_Deterministic(t *testing.T) {
	buf := sql.RawBytes("payload")
	rows := []Row{{"id": int64(1), "payload": buf}}

	first, err := One[blob](rows)
	require.NoError(t, err)
	second, err := One[blob](rows)
	require.NoError(t, err)
	assert.Equal(t, first.Payload, second.Payload)

	// driver reuses its buffer
	copy(buf, "XXXXXXX")
	assert.Equal(t, []byte("payload"), first.Payload)
	assert.Equal(t, []byte("payload"), second.Payload)
}

func TestMaterialize_CopiesByteSlices(t *testing.T) {
	src := []byte{1, 2, 3}
	out := Materialize(Row{"b": src, "n": 5})

	got := out["b"].([]byte)
	assert.Equal(t, src, got)
	src[0] = 9
	assert.Equal(t, byte(1), got[0])
	assert.Equal(t, 5, out["n"])
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "one", AsOne.String())
	assert.Equal(t, "optional_one", AsOptionalOne.String())
	assert.Equal(t, "list", AsList.String())
	assert.Equal(t, "none", AsNone.String())
	assert.Equal(t, "shape(9)", Shape(9).String())
}
