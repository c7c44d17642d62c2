package records

import (
	"testing"

	"github.com/23skdu/fwdad/internal/grad"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {
	b := NewBuilder(memory.NewGoAllocator())

	t.Run("Empty input", func(t *testing.T) {
		rec, err := b.Points(nil)
		assert.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("Round trip", func(t *testing.T) {
		points := [][]float64{{0, 0}, {1.5, -2}, {3, 4}}
		rec, err := b.Points(points)
		require.NoError(t, err)
		defer rec.Release()

		assert.Equal(t, int64(3), rec.NumRows())
		assert.Equal(t, int64(1), rec.NumCols())
		assert.Equal(t, PointField, rec.ColumnName(0))
		assert.True(t, PointSchema(2).Equal(rec.Schema()))

		fsl := rec.Column(0).(*array.FixedSizeList)
		values := fsl.ListValues().(*array.Float64)
		assert.Equal(t, 6, values.Len())
		assert.Equal(t, -2.0, values.Value(3))

		dim, err := Dim(rec.Schema())
		require.NoError(t, err)
		assert.Equal(t, 2, dim)

		got, err := DecodePoints(rec)
		require.NoError(t, err)
		assert.Equal(t, points, got)
	})

	t.Run("Ragged input", func(t *testing.T) {
		_, err := b.Points([][]float64{{1, 2}, {3}})
		assert.Error(t, err)
		_, err = b.Points([][]float64{{}})
		assert.Error(t, err)
	})
}

func TestResults(t *testing.T) {
	b := NewBuilder(memory.NewGoAllocator())

	results := []grad.Result{
		{Value: 1, Gradient: []float64{-2, 0}},
		{Value: 0, Gradient: []float64{0, 0}},
	}
	rec, err := b.Results(results)
	require.NoError(t, err)
	defer rec.Release()

	assert.True(t, ResultSchema(2).Equal(rec.Schema()))
	assert.Equal(t, ValueField, rec.ColumnName(0))
	assert.Equal(t, GradientField, rec.ColumnName(1))

	got, err := DecodeResults(rec)
	require.NoError(t, err)
	assert.Equal(t, results, got)

	_, err = DecodePoints(rec)
	assert.ErrorIs(t, err, ErrSchema)

	empty, err := b.Results(nil)
	assert.NoError(t, err)
	assert.Nil(t, empty)
}

func TestDecodeRejectsForeignSchemas(t *testing.T) {
	mem := memory.NewGoAllocator()

	t.Run("Variable length list", func(t *testing.T) {
		lb := array.NewListBuilder(mem, arrow.PrimitiveTypes.Float64)
		defer lb.Release()
		lb.Append(true)
		lb.ValueBuilder().(*array.Float64Builder).AppendValues([]float64{1, 2}, nil)
		col := lb.NewArray()
		defer col.Release()

		schema := arrow.NewSchema([]arrow.Field{{Name: PointField, Type: arrow.ListOf(arrow.PrimitiveTypes.Float64)}}, nil)
		rec := array.NewRecordBatch(schema, []arrow.Array{col}, 1)
		defer rec.Release()

		_, err := DecodePoints(rec)
		assert.ErrorIs(t, err, ErrSchema)
		_, err = Dim(schema)
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("Float32 elements", func(t *testing.T) {
		lb := array.NewFixedSizeListBuilder(mem, 2, arrow.PrimitiveTypes.Float32)
		defer lb.Release()
		lb.Append(true)
		lb.ValueBuilder().(*array.Float32Builder).AppendValues([]float32{1, 2}, nil)
		col := lb.NewArray()
		defer col.Release()

		schema := arrow.NewSchema([]arrow.Field{{Name: PointField, Type: arrow.FixedSizeListOf(2, arrow.PrimitiveTypes.Float32)}}, nil)
		rec := array.NewRecordBatch(schema, []arrow.Array{col}, 1)
		defer rec.Release()

		_, err := DecodePoints(rec)
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("Null point", func(t *testing.T) {
		lb := array.NewFixedSizeListBuilder(mem, 2, arrow.PrimitiveTypes.Float64)
		defer lb.Release()
		fb := lb.ValueBuilder().(*array.Float64Builder)
		lb.Append(true)
		fb.AppendValues([]float64{1, 2}, nil)
		lb.AppendNull()
		col := lb.NewArray()
		defer col.Release()

		rec := array.NewRecordBatch(PointSchema(2), []arrow.Array{col}, 2)
		defer rec.Release()

		_, err := DecodePoints(rec)
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("Missing column", func(t *testing.T) {
		schema := arrow.NewSchema([]arrow.Field{{Name: "x", Type: arrow.PrimitiveTypes.Float64}}, nil)
		fb := array.NewFloat64Builder(mem)
		defer fb.Release()
		fb.Append(1)
		col := fb.NewArray()
		defer col.Release()
		rec := array.NewRecordBatch(schema, []arrow.Array{col}, 1)
		defer rec.Release()

		_, err := DecodePoints(rec)
		assert.ErrorIs(t, err, ErrSchema)
		_, err = DecodeResults(rec)
		assert.ErrorIs(t, err, ErrSchema)
	})
}
