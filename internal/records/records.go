// Package records converts points and gradient results to and from Arrow
// record batches.
//
// A point batch has one column, "point", of type
// fixed_size_list<float64>[dim]. A result batch has a float64 "value"
// column and a "gradient" column of the same list type as the points.
package records

import (
	"errors"
	"fmt"

	"github.com/23skdu/fwdad/internal/grad"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

const (
	PointField    = "point"
	ValueField    = "value"
	GradientField = "gradient"
)

var ErrSchema = errors.New("unexpected record schema")

func vectorType(dim int) *arrow.FixedSizeListType {
	return arrow.FixedSizeListOf(int32(dim), arrow.PrimitiveTypes.Float64)
}

// PointSchema is the schema of a batch of points of dimension dim.
func PointSchema(dim int) *arrow.Schema {
	return arrow.NewSchema(
		[]arrow.Field{
			{Name: PointField, Type: vectorType(dim)},
		},
		nil,
	)
}

// ResultSchema is the schema of a batch of results for points of
// dimension dim.
func ResultSchema(dim int) *arrow.Schema {
	return arrow.NewSchema(
		[]arrow.Field{
			{Name: ValueField, Type: arrow.PrimitiveTypes.Float64},
			{Name: GradientField, Type: vectorType(dim)},
		},
		nil,
	)
}

// Builder creates record batches of points and results.
type Builder struct {
	mem memory.Allocator
}

func NewBuilder(mem memory.Allocator) *Builder {
	return &Builder{mem: mem}
}

// Points converts points into a batch. All points must share one
// dimension. It returns nil for an empty input.
func (b *Builder) Points(points [][]float64) (arrow.RecordBatch, error) {
	if len(points) == 0 {
		return nil, nil
	}
	dim, err := commonDim(points)
	if err != nil {
		return nil, err
	}

	col := b.vectors(points, dim)
	defer col.Release()

	return array.NewRecordBatch(PointSchema(dim), []arrow.Array{col}, int64(len(points))), nil
}

// Results converts results into a batch. All gradients must share one
// dimension. It returns nil for an empty input.
func (b *Builder) Results(results []grad.Result) (arrow.RecordBatch, error) {
	if len(results) == 0 {
		return nil, nil
	}
	gradients := make([][]float64, len(results))
	for i, r := range results {
		gradients[i] = r.Gradient
	}
	dim, err := commonDim(gradients)
	if err != nil {
		return nil, err
	}

	vb := array.NewFloat64Builder(b.mem)
	defer vb.Release()
	vb.Reserve(len(results))
	for _, r := range results {
		vb.Append(r.Value)
	}
	values := vb.NewArray()
	defer values.Release()

	grads := b.vectors(gradients, dim)
	defer grads.Release()

	return array.NewRecordBatch(ResultSchema(dim), []arrow.Array{values, grads}, int64(len(results))), nil
}

func (b *Builder) vectors(vs [][]float64, dim int) arrow.Array {
	lb := array.NewFixedSizeListBuilder(b.mem, int32(dim), arrow.PrimitiveTypes.Float64)
	defer lb.Release()

	fb := lb.ValueBuilder().(*array.Float64Builder)
	fb.Reserve(len(vs) * dim)
	for _, v := range vs {
		lb.Append(true)
		fb.AppendValues(v, nil)
	}
	return lb.NewArray()
}

func commonDim(vs [][]float64) (int, error) {
	dim := len(vs[0])
	for i, v := range vs {
		if len(v) != dim {
			return 0, fmt.Errorf("row %d has %d coordinates, want %d", i, len(v), dim)
		}
	}
	if dim == 0 {
		return 0, fmt.Errorf("rows have no coordinates")
	}
	return dim, nil
}

// Dim returns the point dimension declared by a point or result schema.
func Dim(schema *arrow.Schema) (int, error) {
	for _, name := range []string{PointField, GradientField} {
		if idx := schema.FieldIndices(name); len(idx) > 0 {
			dt, ok := schema.Field(idx[0]).Type.(*arrow.FixedSizeListType)
			if !ok {
				return 0, fmt.Errorf("%w: column %q is %s", ErrSchema, name, schema.Field(idx[0]).Type)
			}
			return int(dt.Len()), nil
		}
	}
	return 0, fmt.Errorf("%w: no %q or %q column", ErrSchema, PointField, GradientField)
}

// DecodePoints reads the point column of rec.
func DecodePoints(rec arrow.RecordBatch) ([][]float64, error) {
	col, err := column(rec, PointField)
	if err != nil {
		return nil, err
	}
	return decodeVectors(col, PointField)
}

// DecodeResults reads a result batch.
func DecodeResults(rec arrow.RecordBatch) ([]grad.Result, error) {
	vcol, err := column(rec, ValueField)
	if err != nil {
		return nil, err
	}
	values, ok := vcol.(*array.Float64)
	if !ok {
		return nil, fmt.Errorf("%w: column %q is %s, want float64", ErrSchema, ValueField, vcol.DataType())
	}
	gcol, err := column(rec, GradientField)
	if err != nil {
		return nil, err
	}
	gradients, err := decodeVectors(gcol, GradientField)
	if err != nil {
		return nil, err
	}

	out := make([]grad.Result, values.Len())
	for i := range out {
		if values.IsNull(i) {
			return nil, fmt.Errorf("%w: null %q at row %d", ErrSchema, ValueField, i)
		}
		out[i] = grad.Result{Value: values.Value(i), Gradient: gradients[i]}
	}
	return out, nil
}

func column(rec arrow.RecordBatch, name string) (arrow.Array, error) {
	idx := rec.Schema().FieldIndices(name)
	if len(idx) == 0 {
		return nil, fmt.Errorf("%w: missing column %q", ErrSchema, name)
	}
	return rec.Column(idx[0]), nil
}

func decodeVectors(col arrow.Array, name string) ([][]float64, error) {
	fsl, ok := col.(*array.FixedSizeList)
	if !ok {
		return nil, fmt.Errorf("%w: column %q is %s, want fixed_size_list<float64>", ErrSchema, name, col.DataType())
	}
	elems, ok := fsl.ListValues().(*array.Float64)
	if !ok {
		return nil, fmt.Errorf("%w: column %q holds %s, want float64", ErrSchema, name, fsl.ListValues().DataType())
	}
	raw := elems.Float64Values()

	out := make([][]float64, fsl.Len())
	for i := range out {
		if fsl.IsNull(i) {
			return nil, fmt.Errorf("%w: null %q at row %d", ErrSchema, name, i)
		}
		start, end := fsl.ValueOffsets(i)
		v := make([]float64, end-start)
		copy(v, raw[start:end])
		out[i] = v
	}
	return out, nil
}
