/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sniffer_test.go
Description: Tests for the container-format sniffer. Covers the full signature
table, priority between the two ELF forms, short-buffer prefix matching, and
the unknown fallback.
*/

package sniffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kleascm/crashlens/pkg/sniffer"
)

func TestSniffSignatures(t *testing.T) {
	testCases := []struct {
		name     string
		data     []byte
		expected sniffer.Signature
	}{
		{
			name:     "Minidump",
			data:     []byte{0x4D, 0x44, 0x4D, 0x50, 0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00},
			expected: sniffer.SignatureMinidump,
		},
		{
			name:     "ELF with magic byte",
			data:     []byte{0x7F, 'E', 'L', 'F', 0x02, 0x01},
			expected: sniffer.SignatureELF,
		},
		{
			name:     "Bare ELF prefix",
			data:     []byte("ELF executable"),
			expected: sniffer.SignatureELF,
		},
		{
			name:     "Two-byte ZIP buffer",
			data:     []byte{0x50, 0x4B},
			expected: sniffer.SignatureZip,
		},
		{
			name:     "PNG",
			data:     []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A},
			expected: sniffer.SignaturePNG,
		},
		{
			name:     "GIF",
			data:     []byte("GIF89a"),
			expected: sniffer.SignatureGIF,
		},
		{
			name:     "JPEG",
			data:     []byte{0xFF, 0xD8, 0xFF, 0xE0},
			expected: sniffer.SignatureJPEG,
		},
		{
			name:     "Unknown",
			data:     []byte{0xDE, 0xAD, 0xBE, 0xEF},
			expected: sniffer.SignatureUnknown,
		},
		{
			name:     "Empty buffer",
			data:     nil,
			expected: sniffer.SignatureUnknown,
		},
		{
			name:     "Buffer shorter than every signature",
			data:     []byte{0x4D},
			expected: sniffer.SignatureUnknown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, sniffer.Sniff(tc.data))
		})
	}
}

func TestSniffDescriptions(t *testing.T) {
	assert.Equal(t, "Windows Minidump", sniffer.SignatureMinidump.Description())
	assert.Equal(t, "ZIP/APK archive", sniffer.SignatureZip.Description())
	assert.Equal(t, "Unknown binary format", sniffer.SignatureUnknown.Description())
}
