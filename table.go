package ephtile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

const tableFlagShuffled = 1 // bit 0 of the v3 table flags

// Legacy tiles with this exact row stride were written in natural layout
// and must not be de-interleaved. Kept for bit-exact compatibility with
// existing pre-v3 files.
const legacyPlainRowSize = 104

// Column declares one field the caller wants extracted from a table.
// Names are at most 4 characters; shorter names match their NUL-padded
// on-disk form.
type Column struct {
	Name string
	Type ColumnType
	Unit Unit // requested unit for Float32 columns, 0 to keep stored values
	Size int  // byte width, required for Bytes columns, defaulted otherwise

	// resolved during schema matching
	start   int
	size    int
	srcUnit Unit
}

// Table provides row-level access to a decoded tile block after its
// schema has been matched against the caller's column declarations.
type Table struct {
	cols    []Column
	rowSize int
	nrows   int
	rows    []byte // row region in natural layout
}

// NewTable matches the caller's column declarations against the table
// held in data and returns a Table over its rows. The data slice is the
// decompressed tile block; it is borrowed for the lifetime of the Table
// and rewritten in place if the rows were stored byte-shuffled.
//
// version is the tile format generation from the tile header. Tables
// older than version 3 carry no embedded schema: the declared columns
// are trusted as authoritative in declaration order and rowSize must be
// their total stride. For version 3 and later rowSize is ignored.
//
// Matching failures are reported as MissingColumnError or
// TypeMismatchError.
func NewTable(version int32, data []byte, rowSize int, cols []Column) (*Table, error) {
	if version < tableVersionCurrent {
		return newLegacyTable(data, rowSize, cols)
	}

	b := NewBuffer(data)
	flags, err := b.Int32()
	if err != nil {
		return nil, err
	}
	stride, err := b.Int32()
	if err != nil {
		return nil, err
	}
	ncols, err := b.Int32()
	if err != nil {
		return nil, err
	}
	nrows, err := b.Int32()
	if err != nil {
		return nil, err
	}
	if stride <= 0 || ncols < 0 || nrows < 0 {
		return nil, ErrBadTable
	}

	resolved := make([]bool, len(cols))
	out := make([]Column, len(cols))
	copy(out, cols)

	for i := 0; i < int(ncols); i++ {
		desc, err := b.Next(20)
		if err != nil {
			return nil, err
		}

		j := findColumn(out, desc[:4])
		if j < 0 { // stored column the caller does not need
			continue
		}
		if stored := ColumnType(desc[4]); out[j].Type != stored {
			return nil, &TypeMismatchError{Name: out[j].Name, Declared: out[j].Type, Stored: stored}
		}
		out[j].srcUnit = Unit(binary.LittleEndian.Uint32(desc[8:]))
		out[j].start = int(int32(binary.LittleEndian.Uint32(desc[12:])))
		out[j].size = int(int32(binary.LittleEndian.Uint32(desc[16:])))
		resolved[j] = true
	}

	for j, ok := range resolved {
		if !ok {
			return nil, &MissingColumnError{Name: out[j].Name}
		}
	}
	if err := checkColumnBounds(out, int(stride)); err != nil {
		return nil, err
	}

	rows, err := b.Next(int(nrows) * int(stride))
	if err != nil {
		return nil, err
	}
	if flags&tableFlagShuffled != 0 {
		Deinterleave(rows, int(stride), int(nrows))
	}

	return &Table{cols: out, rowSize: int(stride), nrows: int(nrows), rows: rows}, nil
}

// The legacy generation trusts the declared columns: offsets are assigned
// sequentially in declaration order, sizes default by type, and stored
// units are assumed to equal the requested ones (no conversion).
func newLegacyTable(data []byte, rowSize int, cols []Column) (*Table, error) {
	if rowSize <= 0 {
		return nil, ErrBadTable
	}
	nrows := len(data) / rowSize

	if rowSize != legacyPlainRowSize {
		Deinterleave(data[:nrows*rowSize], rowSize, nrows)
	}

	out := make([]Column, len(cols))
	copy(out, cols)

	start := 0
	for j := range out {
		out[j].start = start
		out[j].srcUnit = out[j].Unit
		out[j].size = out[j].Size
		if out[j].size == 0 {
			out[j].size = out[j].Type.defaultSize()
		}
		start += out[j].size
	}
	if err := checkColumnBounds(out, rowSize); err != nil {
		return nil, err
	}

	return &Table{cols: out, rowSize: rowSize, nrows: nrows, rows: data[:nrows*rowSize]}, nil
}

// findColumn returns the index of the declared column matching a 4-byte
// on-disk name, or -1. Stored names shorter than 4 bytes are NUL-padded.
func findColumn(cols []Column, name []byte) int {
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	for j := range cols {
		if cols[j].Name == string(name) {
			return j
		}
	}
	return -1
}

func checkColumnBounds(cols []Column, stride int) error {
	for j := range cols {
		width := cols[j].Type.defaultSize()
		if cols[j].Type == Bytes {
			width = cols[j].size
		}
		if width <= 0 || cols[j].start < 0 || cols[j].start+width > stride {
			return ErrBadTable
		}
	}
	return nil
}

// --------------------------------------------------------------------

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int { return t.nrows }

// RowSize returns the row stride in bytes.
func (t *Table) RowSize() int { return t.rowSize }

// Rows returns an iterator positioned before the first row.
func (t *Table) Rows() *RowIter { return &RowIter{t: t, row: -1} }

// RowIter iterates over a table's rows, exposing the current row's
// fields through typed accessors indexed by the caller's column
// declaration order.
type RowIter struct {
	t   *Table
	row int
}

// Next advances the cursor to the next row and returns true if one
// exists.
func (it *RowIter) Next() bool {
	if it.row+1 >= it.t.nrows {
		return false
	}
	it.row++
	return true
}

// Row returns the current row index.
func (it *RowIter) Row() int { return it.row }

// Int32 returns column i of the current row. The column must be
// declared as Int32.
func (it *RowIter) Int32(i int) int32 {
	c := it.col(i, Int32)
	return int32(binary.LittleEndian.Uint32(it.field(c)))
}

// Float64 returns column i of the current row, converted from the
// stored unit to the declared one. The column must be declared as
// Float32.
func (it *RowIter) Float64(i int) float64 {
	c := it.col(i, Float32)
	v := math.Float32frombits(binary.LittleEndian.Uint32(it.field(c)))
	return Convert(c.srcUnit, c.Unit, float64(v))
}

// Uint64 returns column i of the current row. The column must be
// declared as Uint64.
func (it *RowIter) Uint64(i int) uint64 {
	c := it.col(i, Uint64)
	return binary.LittleEndian.Uint64(it.field(c))
}

// Bytes returns column i of the current row verbatim. The column must be
// declared as Bytes. The returned slice is a temporary view and must be
// copied if used beyond the next cursor move.
func (it *RowIter) Bytes(i int) []byte {
	c := it.col(i, Bytes)
	return it.field(c)
}

func (it *RowIter) col(i int, want ColumnType) *Column {
	c := &it.t.cols[i]
	if c.Type != want {
		panic(fmt.Sprintf("ephtile: column %q accessed as '%c' but declared as '%c'",
			c.Name, want, c.Type))
	}
	return c
}

func (it *RowIter) field(c *Column) []byte {
	base := it.row*it.t.rowSize + c.start
	width := c.Type.defaultSize()
	if c.Type == Bytes {
		width = c.size
	}
	return it.t.rows[base : base+width]
}
