/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine_test.go
Description: Tests for the binary forensics engine. Covers Shannon entropy
bounds, repeating-pattern mining and ranking, printable-string extraction,
candidate-address scanning, and crash-keyword search.
*/

package forensics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/crashlens/pkg/forensics"
)

func TestEntropyBounds(t *testing.T) {
	testCases := []struct {
		name     string
		data     []byte
		expected float64
	}{
		{
			name:     "Empty buffer",
			data:     nil,
			expected: 0.0,
		},
		{
			name:     "Single repeated byte",
			data:     []byte{0x41, 0x41, 0x41, 0x41, 0x41},
			expected: 0.0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, forensics.Entropy(tc.data), 1e-9)
		})
	}
}

func TestEntropyAllByteValues(t *testing.T) {
	// 256 distinct byte values, each exactly once, is maximal entropy.
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	assert.InDelta(t, 8.0, forensics.Entropy(data), 1e-9)
}

func TestEntropyRange(t *testing.T) {
	buffers := [][]byte{
		[]byte("hello world"),
		{0x00, 0xFF, 0x00, 0xFF},
		[]byte("SIGSEGV at 0xdeadbeef"),
	}
	for _, data := range buffers {
		e := forensics.Entropy(data)
		assert.GreaterOrEqual(t, e, 0.0)
		assert.LessOrEqual(t, e, 8.0)
	}
}

func TestMinePatterns(t *testing.T) {
	// "ABAB" windows: AB x2, BA x1, ABA x1, BAB x1, ABAB x1.
	patterns := forensics.MinePatterns([]byte("ABAB"), 2, 4)
	require.Len(t, patterns, 1)
	assert.Equal(t, []byte("AB"), patterns[0].Bytes)
	assert.Equal(t, 2, patterns[0].Count)
}

func TestMinePatternsRanking(t *testing.T) {
	// "AAAA": AA x3, AAA x2, AAAA x1. Count descending, then length.
	patterns := forensics.MinePatterns([]byte("AAAA"), 2, 4)
	require.Len(t, patterns, 2)
	assert.Equal(t, []byte("AA"), patterns[0].Bytes)
	assert.Equal(t, 3, patterns[0].Count)
	assert.Equal(t, []byte("AAA"), patterns[1].Bytes)
	assert.Equal(t, 2, patterns[1].Count)
}

func TestMinePatternsEmpty(t *testing.T) {
	assert.Empty(t, forensics.MinePatterns(nil, 2, 4))
	assert.Empty(t, forensics.MinePatterns([]byte("ABCDEF"), 2, 4))
}

func TestExtractStrings(t *testing.T) {
	data := []byte("ab\x00libc.so\x01xy\x02main_thread")
	strings := forensics.ExtractStrings(data, 4)

	// Runs shorter than the minimum are dropped; buffer order is kept and
	// the trailing run is flushed.
	require.Len(t, strings, 2)
	assert.Equal(t, "libc.so", strings[0])
	assert.Equal(t, "main_thread", strings[1])
}

func TestExtractStringsNoDeduplication(t *testing.T) {
	data := []byte("heap\x00heap\x00heap")
	strings := forensics.ExtractStrings(data, 4)
	assert.Equal(t, []string{"heap", "heap", "heap"}, strings)
}

func TestExtractStringsEmpty(t *testing.T) {
	assert.Empty(t, forensics.ExtractStrings(nil, 4))
	assert.Empty(t, forensics.ExtractStrings([]byte{0x00, 0x01, 0x02}, 4))
}

func TestIsPrintable(t *testing.T) {
	assert.True(t, forensics.IsPrintable(' '))
	assert.True(t, forensics.IsPrintable('A'))
	assert.True(t, forensics.IsPrintable('~'))
	assert.False(t, forensics.IsPrintable(0x1F))
	assert.False(t, forensics.IsPrintable(0x7F))
	assert.False(t, forensics.IsPrintable(0x00))
}

func TestScanAddressesLowerBound(t *testing.T) {
	// 0x10000000 little-endian: the inclusive lower bound is kept.
	addresses := forensics.ScanAddresses([]byte{0x00, 0x00, 0x00, 0x10})
	assert.Equal(t, []uint64{0x10000000}, addresses)
}

func TestScanAddressesAllOnes(t *testing.T) {
	// 0xFFFFFFFFFFFFFFFF exceeds the 64-bit upper bound, but the same
	// offset still yields the 32-bit candidate 0xFFFFFFFF.
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	addresses := forensics.ScanAddresses(data)
	assert.Equal(t, []uint64{0xFFFFFFFF}, addresses)
}

func TestScanAddressesBelowRange(t *testing.T) {
	// Small values are not plausible addresses.
	addresses := forensics.ScanAddresses([]byte{0x01, 0x00, 0x00, 0x00})
	assert.Empty(t, addresses)
}

func TestScanAddresses64Bit(t *testing.T) {
	// 0x7F0000001000 LE sits inside the 64-bit range; its low half
	// 0x00001000 is below the 32-bit range, so only one candidate results.
	data := []byte{0x00, 0x10, 0x00, 0x00, 0x00, 0x7F, 0x00, 0x00}
	addresses := forensics.ScanAddresses(data)
	assert.Equal(t, []uint64{0x7F0000001000}, addresses)
}

func TestScanAddressesDeduplicates(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x10,
		0x00, 0x00, 0x00, 0x10,
		0x00, 0x00, 0x00, 0x10,
	}
	addresses := forensics.ScanAddresses(data)
	assert.Equal(t, []uint64{0x10000000}, addresses)
}

func TestSearchKeywordsFirstOccurrence(t *testing.T) {
	engine := forensics.NewEngine(nil, nil)
	data := []byte("....libc.so....libc.so....")

	hits := engine.SearchKeywords(data)
	require.Len(t, hits, 1)
	assert.Equal(t, "libc.so", hits[0].Keyword)
	assert.Equal(t, 4, hits[0].Offset)
}

func TestSearchKeywordsContextClamped(t *testing.T) {
	engine := forensics.NewEngine(nil, nil)
	data := []byte("SIGSEGV")

	hits := engine.SearchKeywords(data)
	require.Len(t, hits, 1)
	assert.Equal(t, 0, hits[0].Offset)
	// Context cannot reach before the buffer start or past its end.
	assert.Equal(t, []byte("SIGSEGV"), hits[0].Context)
}

func TestSearchKeywordsDictionaryOrder(t *testing.T) {
	engine := forensics.NewEngine(&forensics.EngineConfig{
		Keywords: []string{"heap", "stack"},
	}, nil)

	// "stack" appears before "heap" in the buffer, but output follows
	// dictionary declaration order.
	hits := engine.SearchKeywords([]byte("stack then heap"))
	require.Len(t, hits, 2)
	assert.Equal(t, "heap", hits[0].Keyword)
	assert.Equal(t, "stack", hits[1].Keyword)
}

func TestAnalyzeEmptyBuffer(t *testing.T) {
	engine := forensics.NewEngine(nil, nil)
	findings := engine.Analyze(nil)

	require.NotNil(t, findings)
	assert.Zero(t, findings.Entropy)
	assert.Empty(t, findings.Patterns)
	assert.Empty(t, findings.Strings)
	assert.Empty(t, findings.Addresses)
	assert.Empty(t, findings.KeywordHits)
	assert.False(t, findings.LikelyCompressed())
}

func TestKeywordHitContextString(t *testing.T) {
	hit := forensics.KeywordHit{Context: []byte{0x00, 'a', 0xFF, 'b'}}
	assert.Equal(t, ".a.b", hit.ContextString())
}

func TestHexDump(t *testing.T) {
	dump := forensics.HexDump([]byte{0xDE, 0xAD, 0xBE, 0xEF}, 256)
	assert.Equal(t, "0000: de ad be ef\n", dump)
}

func TestHexDumpTruncates(t *testing.T) {
	data := make([]byte, 64)
	dump := forensics.HexDump(data, 16)
	assert.Equal(t, "0000: 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00\n", dump)
}
