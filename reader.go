package ephtile

import (
	"bytes"
	"hash/crc32"
	"io"
	"math/bits"

	"github.com/klauspost/compress/zlib"
)

// ReaderOptions define reader specific options.
type ReaderOptions struct {
	// VerifyChecksums enables CRC-32 (IEEE) verification of each chunk's
	// trailer against its payload. Producers commonly leave the trailer
	// unverified, so this is off by default.
	VerifyChecksums bool
}

func (o *ReaderOptions) norm() *ReaderOptions {
	var oo ReaderOptions
	if o != nil {
		oo = *o
	}
	return &oo
}

// WalkFunc is invoked once per chunk with the chunk's 4-byte type tag and
// its payload. The payload is a view into the reader's buffer, valid for
// the duration of the walk. Returning a non-nil error aborts the walk and
// surfaces the error to the Walk caller; tile-local failures the caller
// wants to skip should be handled inside the callback instead.
type WalkFunc func(typ string, data []byte) error

// Reader walks the chunks of an EPHE container held in memory.
type Reader struct {
	data []byte // chunk records, past the container header
	o    *ReaderOptions
}

// NewReader validates the container header of p and returns a Reader over
// its chunks. The reader borrows p for its lifetime.
func NewReader(p []byte, o *ReaderOptions) (*Reader, error) {
	b := NewBuffer(p)

	m, err := b.Next(4)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(m, magic) {
		return nil, ErrBadMagic
	}

	version, err := b.Int32()
	if err != nil {
		return nil, err
	}
	if version != FileVersion {
		return nil, ErrBadVersion
	}

	return &Reader{data: p[b.Offset():], o: o.norm()}, nil
}

// Walk invokes fn for every chunk in order. The chunk records must account
// for the remaining buffer exactly; any remainder or truncation fails with
// ErrTruncated.
func (r *Reader) Walk(fn WalkFunc) error {
	b := NewBuffer(r.data)
	for b.Remaining() > 0 {
		typ, err := b.Next(4)
		if err != nil {
			return err
		}
		size, err := b.Int32()
		if err != nil {
			return err
		}
		data, err := b.Next(int(size))
		if err != nil {
			return err
		}
		sum, err := b.Uint32()
		if err != nil {
			return err
		}

		if r.o.VerifyChecksums && crc32.ChecksumIEEE(data) != sum {
			return ErrChecksum
		}
		if err := fn(string(typ), data); err != nil {
			return err
		}
	}
	return nil
}

// --------------------------------------------------------------------

// TileHeader is the fixed 12-byte header prefixing a tile's payload.
type TileHeader struct {
	Version int32 // table format generation of the tile
	Order   int   // HEALPix subdivision order
	Pix     int64 // pixel index within the order
}

// ReadTileHeader consumes a tile header from b. The HEALPix position is
// decoded from its NUNIQ form: order = floor(log2(nuniq/4) / 2) and
// pix = nuniq - 4*4^order.
func ReadTileHeader(b *Buffer) (TileHeader, error) {
	version, err := b.Int32()
	if err != nil {
		return TileHeader{}, err
	}
	nuniq, err := b.Uint64()
	if err != nil {
		return TileHeader{}, err
	}
	if nuniq < 4 {
		return TileHeader{}, ErrBadNuniq
	}

	order := (bits.Len64(nuniq>>2) - 1) / 2
	return TileHeader{
		Version: version,
		Order:   order,
		Pix:     int64(nuniq) - 4<<(2*order),
	}, nil
}

// ReadCompressedBlock consumes a compressed block from b and returns its
// inflated contents as a freshly allocated buffer owned by the caller.
// The cursor is advanced past the block even when inflation fails, so the
// caller may skip the chunk and keep walking the container.
func ReadCompressedBlock(b *Buffer) ([]byte, error) {
	size, err := b.Int32()
	if err != nil {
		return nil, err
	}
	compSize, err := b.Int32()
	if err != nil {
		return nil, err
	}
	comp, err := b.Next(int(compSize))
	if err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, ErrDecompress
	}

	zr, err := zlib.NewReader(bytes.NewReader(comp))
	if err != nil {
		return nil, ErrDecompress
	}
	defer zr.Close()

	plain := make([]byte, size)
	if _, err := io.ReadFull(zr, plain); err != nil {
		return nil, ErrDecompress
	}

	// The stream must end exactly at the declared size. Draining to EOF
	// also forces the trailing checksum to be verified.
	if n, err := io.Copy(io.Discard, zr); err != nil || n != 0 {
		return nil, ErrDecompress
	}
	return plain, nil
}
