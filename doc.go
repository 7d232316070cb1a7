/*
Package ephtile implements a reader for EPHE ephemeris tile files: chunked
containers of HEALPix-indexed sky-catalog tiles, each tile carrying a
compressed, optionally byte-shuffled, columnar table of astronomical
measurements.

Data Structure Documentation

Container

A container starts with a fixed header followed by a series of chunks.
All integers are little-endian.

    Container layout:
    +--------------+----------------+---------+-------+---------+
    | magic "EPHE" |  version (i32) | chunk 1 |  ...  | chunk n |
    +--------------+----------------+---------+-------+---------+

    Chunk:
    +----------------+-------------+--------------+---------------+
    | type (4 bytes) |  len (i32)  | payload[len] | crc (4 bytes) |
    +----------------+-------------+--------------+---------------+

Chunk type tags are caller-defined; the container layer only carries the
payloads. A typical tile payload is itself composed of:

    Tile header:
    +---------------+---------------+
    | version (i32) |  nuniq (u64)  |
    +---------------+---------------+

    Compressed block:
    +--------------------+------------------+-------------+
    | uncompressed (i32) | compressed (i32) | zlib stream |
    +--------------------+------------------+-------------+

Table

A decompressed tile block holds a columnar row table. Table versions >= 3
embed a self-describing schema; older versions rely entirely on the columns
declared by the caller.

    Table (version >= 3):
    +-------------+-----------------+-------------+-------------+-----------------+------------------------+
    | flags (i32) | row size (i32)  | ncols (i32) | nrows (i32) | ncols * ColDesc | rows[nrows * row size] |
    +-------------+-----------------+-------------+-------------+-----------------+------------------------+

    ColDesc:
    +----------------+----------------+------------+--------------+------------+
    | name (4 bytes) | type (4 bytes) | unit (i32) | offset (i32) | size (i32) |
    +----------------+----------------+------------+--------------+------------+

Bit 0 of the table flags marks the row region as byte-shuffled: same-offset
bytes of all rows are grouped together to improve compression, and the
region must be de-interleaved before rows can be decoded.
*/
package ephtile
