package ephtile

import (
	"errors"
	"fmt"
)

var magic = []byte{'E', 'P', 'H', 'E'}

// FileVersion is the only supported container format version.
const FileVersion = 2

// tableVersionCurrent is the first table format generation carrying an
// embedded schema. Older tiles are decoded through the legacy path.
const tableVersionCurrent = 3

var (
	ErrBadMagic   = errors.New("ephtile: bad magic byte sequence")
	ErrBadVersion = errors.New("ephtile: unsupported file version")
	ErrTruncated  = errors.New("ephtile: unexpected end of buffer")
	ErrChecksum   = errors.New("ephtile: chunk checksum mismatch")
	ErrBadNuniq   = errors.New("ephtile: invalid nuniq tile position")
	ErrDecompress = errors.New("ephtile: cannot uncompress data")
	ErrBadTable   = errors.New("ephtile: malformed table header")
)

// --------------------------------------------------------------------

// ColumnType is a table column type tag as stored on disk.
type ColumnType byte

// Supported column type tags.
const (
	Int32   ColumnType = 'i' // 32-bit signed integer
	Float32 ColumnType = 'f' // 32-bit float, unit-convertible
	Uint64  ColumnType = 'Q' // 64-bit unsigned integer
	Bytes   ColumnType = 's' // fixed-size opaque bytes
)

// The on-disk field width implied by the type when a column declaration
// carries no explicit size. Bytes columns must always declare one.
func (t ColumnType) defaultSize() int {
	switch t {
	case Int32, Float32:
		return 4
	case Uint64:
		return 8
	}
	return 0
}

// --------------------------------------------------------------------

// MissingColumnError is returned by NewTable when a declared column
// cannot be found in the on-disk schema.
type MissingColumnError struct {
	Name string // the declared column name
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("ephtile: cannot find column %q", e.Name)
}

// TypeMismatchError is returned by NewTable when an on-disk column's
// type tag differs from the declared one.
type TypeMismatchError struct {
	Name     string
	Declared ColumnType
	Stored   ColumnType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("ephtile: column %q declared as '%c' but stored as '%c'",
		e.Name, e.Declared, e.Stored)
}
