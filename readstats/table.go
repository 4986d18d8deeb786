package readstats

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Column names of the table produced by ResultSet.ToTable
const (
	ColumnID         = "id"
	ColumnLength     = "length"
	ColumnAvgQuality = "avg_quality"
	ColumnGCContent  = "gc_content"
)

// Tabler is implemented by results that can be handed to a caller as a
// column-oriented table
type Tabler interface {
	ToTable() *Table
}

// Column is one named column. Exactly one of the value slices is set
type Column struct {
	Name    string
	Strings []string
	Ints    []int
	Floats  []float64
}

// Len returns the number of rows in the column
func (c Column) Len() int {
	switch {
	case c.Strings != nil:
		return len(c.Strings)
	case c.Ints != nil:
		return len(c.Ints)
	default:
		return len(c.Floats)
	}
}

func (c Column) cell(i int, decimals int) string {
	switch {
	case c.Strings != nil:
		return c.Strings[i]
	case c.Ints != nil:
		return strconv.Itoa(c.Ints[i])
	default:
		return formatFloat(c.Floats[i], decimals)
	}
}

// Table is a column-oriented view of a result
type Table struct {
	Columns []Column
}

// ToTable exposes the result columns without copying them
func (r *ResultSet) ToTable() *Table {
	return &Table{Columns: []Column{
		{Name: ColumnID, Strings: r.IDs},
		{Name: ColumnLength, Ints: r.Lengths},
		{Name: ColumnAvgQuality, Floats: r.AvgQuality},
		{Name: ColumnGCContent, Floats: r.GCContent},
	}}
}

// Rows returns the number of rows, which is the same for every column
func (t *Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

func formatFloat(v float64, decimals int) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// WriteTSV writes a header line followed by one tab-separated line per row.
// Floats are written with the given number of decimals, or the shortest
// exact representation when decimals is negative
func (t *Table) WriteTSV(w io.Writer, decimals int) error {
	bw := bufio.NewWriter(w)
	for i, c := range t.Columns {
		if i > 0 {
			bw.WriteByte('\t')
		}
		bw.WriteString(c.Name)
	}
	bw.WriteByte('\n')

	rows := t.Rows()
	for r := 0; r < rows; r++ {
		for i, c := range t.Columns {
			if i > 0 {
				bw.WriteByte('\t')
			}
			bw.WriteString(c.cell(r, decimals))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing table: %w", err)
	}
	return nil
}

// WriteJSON writes the table as one JSON object mapping column names to
// arrays. Non-finite floats are written as null
func (t *Table) WriteJSON(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('{')
	for i, c := range t.Columns {
		if i > 0 {
			bw.WriteByte(',')
		}
		name, _ := json.Marshal(c.Name)
		bw.Write(name)
		bw.WriteByte(':')

		var values any
		switch {
		case c.Strings != nil:
			values = c.Strings
		case c.Ints != nil:
			values = c.Ints
		default:
			values = jsonFloats(c.Floats)
		}
		data, err := json.Marshal(values)
		if err != nil {
			return fmt.Errorf("error encoding column %s: %w", c.Name, err)
		}
		bw.Write(data)
	}
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing table: %w", err)
	}
	return nil
}

func jsonFloats(vs []float64) []*float64 {
	out := make([]*float64, len(vs))
	for i := range vs {
		if math.IsInf(vs[i], 0) || math.IsNaN(vs[i]) {
			continue
		}
		out[i] = &vs[i]
	}
	return out
}
