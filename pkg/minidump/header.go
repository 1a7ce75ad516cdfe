/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: header.go
Description: Shallow minidump header parser. Extracts the version, stream count,
and stream directory offset from a buffer carrying the MDMP signature. Each field
is independently optional on truncation; the stream directory itself is located
but never walked.
*/

package minidump

// headerFieldsOffset is where the header fields start, right after the
// 4-byte MDMP signature.
const headerFieldsOffset = 4

// Header holds the fixed-layout minidump header fields. A nil field means
// the buffer ended before that field could be fully read.
type Header struct {
	Version            *uint32 `json:"version,omitempty"`
	StreamCount        *uint32 `json:"stream_count,omitempty"`
	StreamDirectoryRVA *uint32 `json:"stream_directory_rva,omitempty"`
}

// ParseHeader reads the three consecutive little-endian uint32 header
// fields starting after the signature. A truncated field is omitted and
// the remaining fields are still attempted from the advancing cursor, so
// a partially captured dump yields a partial header rather than an error.
// The stream directory offset is reported as-is, never validated against
// the buffer length.
func ParseHeader(data []byte) *Header {
	r := NewReader(data)
	r.Seek(headerFieldsOffset)

	header := &Header{}
	if version, ok := r.ReadUint32(); ok {
		header.Version = &version
	}
	if count, ok := r.ReadUint32(); ok {
		header.StreamCount = &count
	}
	if rva, ok := r.ReadUint32(); ok {
		header.StreamDirectoryRVA = &rva
	}

	return header
}
