/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sniffer.go
Description: Container-format sniffer for decoded crash-dump buffers. Tests the
leading bytes against a priority-ordered signature table (minidump, ELF, ZIP/APK,
PNG, GIF, JPEG) and returns the first matching tag. Prefix tests only, so short
buffers still match signatures shorter than themselves.
*/

package sniffer

import "bytes"

// Signature identifies a known binary container format.
type Signature string

const (
	SignatureMinidump Signature = "MINIDUMP"
	SignatureELF      Signature = "ELF"
	SignatureZip      Signature = "ZIP"
	SignaturePNG      Signature = "PNG"
	SignatureGIF      Signature = "GIF"
	SignatureJPEG     Signature = "JPEG"
	SignatureUnknown  Signature = "UNKNOWN"
)

// Description returns the human-readable name of the container format.
func (s Signature) Description() string {
	switch s {
	case SignatureMinidump:
		return "Windows Minidump"
	case SignatureELF:
		return "ELF executable"
	case SignatureZip:
		return "ZIP/APK archive"
	case SignaturePNG:
		return "PNG image"
	case SignatureGIF:
		return "GIF image"
	case SignatureJPEG:
		return "JPEG image"
	default:
		return "Unknown binary format"
	}
}

// signatureEntry pairs a leading-byte sequence with its container tag.
type signatureEntry struct {
	prefix []byte
	tag    Signature
}

// signatureTable is tested in declaration order; first match wins. The
// 4-byte ELF magic must stay ahead of the bare "ELF" ASCII form.
var signatureTable = []signatureEntry{
	{[]byte("MDMP"), SignatureMinidump},
	{[]byte{0x7F, 'E', 'L', 'F'}, SignatureELF},
	{[]byte("ELF"), SignatureELF},
	{[]byte("PK"), SignatureZip},
	{[]byte{0x89, 'P', 'N', 'G'}, SignaturePNG},
	{[]byte("GIF8"), SignatureGIF},
	{[]byte{0xFF, 0xD8, 0xFF}, SignatureJPEG},
}

// Sniff returns the container signature of a decoded buffer, or
// SignatureUnknown when no table entry is a byte prefix of the buffer.
func Sniff(data []byte) Signature {
	for _, entry := range signatureTable {
		if bytes.HasPrefix(data, entry.prefix) {
			return entry.tag
		}
	}
	return SignatureUnknown
}
