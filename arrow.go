package slicingdice

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

type columnKind int

const (
	columnString columnKind = iota
	columnFloat
	columnBool
	columnJSON
)

func (k columnKind) dataType() arrow.DataType {
	switch k {
	case columnFloat:
		return arrow.PrimitiveTypes.Float64
	case columnBool:
		return arrow.FixedWidthTypes.Boolean
	default:
		return arrow.BinaryTypes.String
	}
}

// extractionRecord builds one Arrow record from extraction data rows. The
// columns are the sorted union of the row keys; the type of each column is
// inferred from its first non-null value.
func extractionRecord(rows []map[string]any) (arrow.Record, error) {
	names := make([]string, 0)
	seen := make(map[string]bool)
	for _, row := range rows {
		for name := range row {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)

	kinds := make(map[string]columnKind, len(names))
	for _, name := range names {
		kinds[name] = columnString
		for _, row := range rows {
			v, ok := row[name]
			if !ok || v == nil {
				continue
			}
			switch v.(type) {
			case string:
				kinds[name] = columnString
			case float64:
				kinds[name] = columnFloat
			case bool:
				kinds[name] = columnBool
			default:
				kinds[name] = columnJSON
			}
			break
		}
	}

	fields := make([]arrow.Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, arrow.Field{Name: name, Type: kinds[name].dataType(), Nullable: true})
	}
	schema := arrow.NewSchema(fields, nil)

	pool := memory.NewGoAllocator()
	b := array.NewRecordBuilder(pool, schema)
	defer b.Release()

	for _, row := range rows {
		for i, name := range names {
			v, ok := row[name]
			if !ok || v == nil {
				b.Field(i).AppendNull()
				continue
			}
			if err := appendCell(b.Field(i), kinds[name], name, v); err != nil {
				return nil, err
			}
		}
	}
	return b.NewRecord(), nil
}

func appendCell(fb array.Builder, kind columnKind, name string, v any) error {
	switch kind {
	case columnString:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("column %q: cannot hold %T value", name, v)
		}
		fb.(*array.StringBuilder).Append(s)
	case columnFloat:
		f, ok := v.(float64)
		if !ok {
			return fmt.Errorf("column %q: cannot hold %T value", name, v)
		}
		fb.(*array.Float64Builder).Append(f)
	case columnBool:
		bv, ok := v.(bool)
		if !ok {
			return fmt.Errorf("column %q: cannot hold %T value", name, v)
		}
		fb.(*array.BooleanBuilder).Append(bv)
	case columnJSON:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("column %q: %w", name, err)
		}
		fb.(*array.StringBuilder).Append(string(data))
	}
	return nil
}

// entityPayload converts an Arrow record into the entity-to-columns mapping
// the insert endpoint takes. Values of the idColumn become the entity IDs.
// Null cells are skipped; a later row with the same ID overwrites the
// earlier one.
func entityPayload(rec arrow.Record, idColumn string) (map[string]any, error) {
	schema := rec.Schema()
	indices := schema.FieldIndices(idColumn)
	if len(indices) == 0 {
		return nil, fmt.Errorf("record has no %q column", idColumn)
	}
	idIndex := indices[0]
	ids, ok := rec.Column(idIndex).(*array.String)
	if !ok {
		return nil, fmt.Errorf("column %q must be a string column, got %s", idColumn, schema.Field(idIndex).Type)
	}

	payload := make(map[string]any, rec.NumRows())
	for row := 0; row < int(rec.NumRows()); row++ {
		if ids.IsNull(row) {
			return nil, fmt.Errorf("row %d: entity ID is null", row)
		}
		attrs := make(map[string]any)
		for i := 0; i < int(rec.NumCols()); i++ {
			if i == idIndex {
				continue
			}
			col := rec.Column(i)
			if col.IsNull(row) {
				continue
			}
			v, err := cellValue(col, row)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", schema.Field(i).Name, err)
			}
			attrs[schema.Field(i).Name] = v
		}
		payload[ids.Value(row)] = attrs
	}
	return payload, nil
}

func cellValue(col arrow.Array, row int) (any, error) {
	switch a := col.(type) {
	case *array.String:
		return a.Value(row), nil
	case *array.Int64:
		return a.Value(row), nil
	case *array.Float64:
		return a.Value(row), nil
	case *array.Boolean:
		return a.Value(row), nil
	case *array.Timestamp:
		unit := col.DataType().(*arrow.TimestampType).Unit
		return a.Value(row).ToTime(unit).Format(time.RFC3339Nano), nil
	default:
		return nil, fmt.Errorf("unsupported type %s", col.DataType())
	}
}
