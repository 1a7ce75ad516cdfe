/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reader.go
Description: Bounds-checked binary reader for minidump buffers. Maintains an
explicit cursor and exposes fixed-width little-endian reads that report success
instead of panicking or zero-filling, advancing only when the full value fits.
*/

package minidump

import "encoding/binary"

// Reader walks a byte buffer with an explicit cursor. Every read checks the
// remaining length and advances the cursor only on success; a short read
// never yields a zero-filled value.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Seek moves the cursor to an absolute byte offset.
func (r *Reader) Seek(pos int) {
	r.pos = pos
}

// Pos returns the current cursor offset.
func (r *Reader) Pos() int {
	return r.pos
}

// ReadUint32 reads a little-endian uint32 at the cursor. The second return
// is false when fewer than 4 bytes remain, and the cursor does not move.
func (r *Reader) ReadUint32() (uint32, bool) {
	if r.pos < 0 || r.pos+4 > len(r.data) {
		return 0, false
	}
	value := binary.LittleEndian.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4
	return value, true
}

// ReadUint64 reads a little-endian uint64 at the cursor, advancing only
// when 8 bytes remain.
func (r *Reader) ReadUint64() (uint64, bool) {
	if r.pos < 0 || r.pos+8 > len(r.data) {
		return 0, false
	}
	value := binary.LittleEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return value, true
}

// ReadBytes reads count bytes at the cursor, advancing only when the full
// count remains.
func (r *Reader) ReadBytes(count int) ([]byte, bool) {
	if count < 0 || r.pos < 0 || r.pos+count > len(r.data) {
		return nil, false
	}
	value := r.data[r.pos : r.pos+count]
	r.pos += count
	return value, true
}
