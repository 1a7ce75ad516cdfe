/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Binary forensics engine for Crashlens. Provides format-agnostic analysis
of decoded crash-dump buffers including Shannon entropy, repeating byte-pattern mining,
printable-string extraction, candidate memory-address scanning, and crash-keyword
dictionary search. Runs on every decoded buffer regardless of detected container type.
*/

package forensics

import (
	"bytes"
	"encoding/binary"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultMinStringLength is the minimum run of printable bytes kept
	// as a recovered string.
	DefaultMinStringLength = 4

	// Pattern mining window bounds (inclusive).
	minPatternLength = 2
	maxPatternLength = 4

	// Candidate address ranges. 32-bit and 64-bit scans run independently
	// over the same 4-byte-aligned offsets.
	addr32Min = 0x10000000
	addr32Max = 0xFFFFFFFF
	addr64Min = 0x100000000
	addr64Max = 0x7FFFFFFFFFFF

	// Bytes of surrounding context captured around a keyword hit.
	keywordContextBytes = 10

	// EntropyCompressedThreshold is the advisory bits-per-byte level above
	// which a buffer is likely compressed or encrypted.
	EntropyCompressedThreshold = 7.0
)

// Pattern is a repeating byte sequence and its occurrence count.
type Pattern struct {
	Bytes []byte `json:"bytes"`
	Count int    `json:"count"`
}

// KeywordHit records the first occurrence of a crash-dictionary keyword.
type KeywordHit struct {
	Keyword string `json:"keyword"`
	Offset  int    `json:"offset"`
	Context []byte `json:"context"`
}

// Findings aggregates every forensic signal extracted from one buffer.
type Findings struct {
	Entropy     float64      `json:"entropy"`
	Patterns    []Pattern    `json:"patterns,omitempty"`
	Strings     []string     `json:"strings,omitempty"`
	Addresses   []uint64     `json:"addresses,omitempty"`
	KeywordHits []KeywordHit `json:"keyword_hits,omitempty"`
}

// LikelyCompressed reports whether the entropy suggests compressed or
// encrypted content. Advisory only, not a hard classification.
func (f *Findings) LikelyCompressed() bool {
	return f.Entropy >= EntropyCompressedThreshold
}

// EngineConfig holds the tunable parameters of the forensics engine.
type EngineConfig struct {
	MinStringLength int      `json:"min_string_length"`
	Keywords        []string `json:"keywords"`
}

// Engine performs format-agnostic binary forensics on decoded buffers.
type Engine struct {
	minStringLength int
	keywords        [][]byte
	logger          *logrus.Logger
}

// NewEngine creates a forensics engine. A nil config selects the default
// minimum string length and the built-in crash-keyword dictionary.
func NewEngine(config *EngineConfig, logger *logrus.Logger) *Engine {
	minLen := DefaultMinStringLength
	keywords := DefaultKeywords()
	if config != nil {
		if config.MinStringLength > 0 {
			minLen = config.MinStringLength
		}
		if len(config.Keywords) > 0 {
			keywords = config.Keywords
		}
	}

	e := &Engine{
		minStringLength: minLen,
		keywords:        make([][]byte, 0, len(keywords)),
		logger:          logger,
	}
	for _, kw := range keywords {
		e.keywords = append(e.keywords, []byte(kw))
	}
	return e
}

// Analyze runs the full forensic pass over a buffer and returns the findings.
// Every stage degrades to an empty result on empty input; it never fails.
func (e *Engine) Analyze(data []byte) *Findings {
	findings := &Findings{
		Entropy:     Entropy(data),
		Patterns:    MinePatterns(data, minPatternLength, maxPatternLength),
		Strings:     ExtractStrings(data, e.minStringLength),
		Addresses:   ScanAddresses(data),
		KeywordHits: e.SearchKeywords(data),
	}

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"size":      len(data),
			"entropy":   findings.Entropy,
			"patterns":  len(findings.Patterns),
			"strings":   len(findings.Strings),
			"addresses": len(findings.Addresses),
			"keywords":  len(findings.KeywordHits),
		}).Info("Forensic analysis complete")
	}

	return findings
}

// IsPrintable reports whether b is printable ASCII (space through tilde).
// Shared by string extraction and character-class statistics so the two
// call sites cannot drift apart.
func IsPrintable(b byte) bool {
	return b >= 32 && b <= 126
}

// Entropy computes the Shannon entropy of data in bits per byte over the
// full 256-bucket byte histogram. An empty buffer has entropy 0.0.
func Entropy(data []byte) float64 {
	if len(data) == 0 {
		return 0.0
	}

	var freq [256]int
	for _, b := range data {
		freq[b]++
	}

	entropy := 0.0
	total := float64(len(data))
	for _, count := range freq {
		if count > 0 {
			p := float64(count) / total
			entropy -= p * math.Log2(p)
		}
	}
	return entropy
}

// MinePatterns counts every contiguous byte slice of length minLen..maxLen
// across the buffer, overlapping windows included, and returns those seen
// more than once sorted by count descending, then length descending, then
// byte order for a stable result.
func MinePatterns(data []byte, minLen, maxLen int) []Pattern {
	counts := make(map[string]int)
	for length := minLen; length <= maxLen; length++ {
		for i := 0; i+length <= len(data); i++ {
			counts[string(data[i:i+length])]++
		}
	}

	patterns := make([]Pattern, 0)
	for pat, count := range counts {
		if count > 1 {
			patterns = append(patterns, Pattern{Bytes: []byte(pat), Count: count})
		}
	}

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Count != patterns[j].Count {
			return patterns[i].Count > patterns[j].Count
		}
		if len(patterns[i].Bytes) != len(patterns[j].Bytes) {
			return len(patterns[i].Bytes) > len(patterns[j].Bytes)
		}
		return bytes.Compare(patterns[i].Bytes, patterns[j].Bytes) < 0
	})

	return patterns
}

// ExtractStrings scans the buffer left to right and returns every run of
// printable ASCII bytes of at least minLength, in buffer order, without
// deduplication.
func ExtractStrings(data []byte, minLength int) []string {
	strings := make([]string, 0)
	var current []byte

	for _, b := range data {
		if IsPrintable(b) {
			current = append(current, b)
			continue
		}
		if len(current) >= minLength {
			strings = append(strings, string(current))
		}
		current = current[:0]
	}

	// Flush the trailing run.
	if len(current) >= minLength {
		strings = append(strings, string(current))
	}

	return strings
}

// ScanAddresses walks every 4-byte-aligned offset and collects values that
// are structurally plausible memory addresses: little-endian uint32 within
// [0x10000000, 0xFFFFFFFF] and, independently at the same offsets where 8
// bytes remain, little-endian uint64 within [0x100000000, 0x7FFFFFFFFFFF].
// The two scans deliberately overlap; the result is deduplicated and sorted.
func ScanAddresses(data []byte) []uint64 {
	seen := make(map[uint64]struct{})

	for i := 0; i+4 <= len(data); i += 4 {
		addr32 := uint64(binary.LittleEndian.Uint32(data[i : i+4]))
		if addr32 >= addr32Min && addr32 <= addr32Max {
			seen[addr32] = struct{}{}
		}

		if i+8 <= len(data) {
			addr64 := binary.LittleEndian.Uint64(data[i : i+8])
			if addr64 >= addr64Min && addr64 <= addr64Max {
				seen[addr64] = struct{}{}
			}
		}
	}

	addresses := make([]uint64, 0, len(seen))
	for addr := range seen {
		addresses = append(addresses, addr)
	}
	sort.Slice(addresses, func(i, j int) bool { return addresses[i] < addresses[j] })

	return addresses
}

// SearchKeywords looks up each dictionary keyword in the buffer and records
// the first occurrence with a clamped context window of surrounding bytes.
// Output order follows dictionary declaration order, not offset order.
func (e *Engine) SearchKeywords(data []byte) []KeywordHit {
	hits := make([]KeywordHit, 0)

	for _, kw := range e.keywords {
		pos := bytes.Index(data, kw)
		if pos < 0 {
			continue
		}

		start := pos - keywordContextBytes
		if start < 0 {
			start = 0
		}
		end := pos + len(kw) + keywordContextBytes
		if end > len(data) {
			end = len(data)
		}

		context := make([]byte, end-start)
		copy(context, data[start:end])

		hits = append(hits, KeywordHit{
			Keyword: string(kw),
			Offset:  pos,
			Context: context,
		})
	}

	return hits
}
