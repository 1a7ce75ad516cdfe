/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rawanalysis.go
Description: Raw structural analysis of encoded payloads that resisted every
decode strategy. Computes character-class distribution and mines repeating
alphanumeric substrings so a corrupted capture still produces findings.
*/

package decoder

import (
	"sort"
	"strings"

	"github.com/kleascm/crashlens/pkg/forensics"
)

const (
	// Substring mining window bounds (inclusive), character counterpart of
	// the binary pattern miner's byte windows.
	minSubstringLength = 3
	maxSubstringLength = 10

	// Characters of the payload quoted verbatim at each end.
	excerptChars = 100
)

// TextPattern is a repeating alphanumeric substring and its occurrence count.
type TextPattern struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// RawAnalysis describes the structure of an undecodable payload: how long it
// is, what its ends look like, how its characters distribute across classes,
// and which substrings repeat.
type RawAnalysis struct {
	Length         int           `json:"length"`
	Head           string        `json:"head"`
	Tail           string        `json:"tail"`
	PrintableCount int           `json:"printable_count"`
	DigitCount     int           `json:"digit_count"`
	LetterCount    int           `json:"letter_count"`
	SpecialCount   int           `json:"special_count"`
	Patterns       []TextPattern `json:"patterns,omitempty"`
}

// Percent converts a character-class count to a percentage of the payload
// length. Zero-length payloads yield 0 rather than dividing by zero.
func (r *RawAnalysis) Percent(count int) float64 {
	if r.Length == 0 {
		return 0
	}
	return float64(count) / float64(r.Length) * 100
}

// AnalyzeRaw runs the structural analysis. It always succeeds; an empty
// payload produces an all-zero result.
func AnalyzeRaw(data string) *RawAnalysis {
	analysis := &RawAnalysis{
		Length: len(data),
		Head:   head(data, excerptChars),
		Tail:   tail(data, excerptChars),
	}

	for i := 0; i < len(data); i++ {
		c := data[i]
		if forensics.IsPrintable(c) {
			analysis.PrintableCount++
		}
		switch {
		case isDigit(c):
			analysis.DigitCount++
		case isLetter(c):
			analysis.LetterCount++
		}
		if !isDigit(c) && !isLetter(c) && !isSpace(c) {
			analysis.SpecialCount++
		}
	}

	analysis.Patterns = mineSubstrings(data)
	return analysis
}

// mineSubstrings counts every alphanumeric substring of length 3..10 across
// the payload, overlapping windows included, keeping those seen more than
// once. Ranking matches the binary pattern miner: count descending, then
// length descending, then lexical order for stability.
func mineSubstrings(data string) []TextPattern {
	counts := make(map[string]int)
	for length := minSubstringLength; length <= maxSubstringLength; length++ {
		for i := 0; i+length <= len(data); i++ {
			sub := data[i : i+length]
			if isAlphanumeric(sub) {
				counts[sub]++
			}
		}
	}

	patterns := make([]TextPattern, 0)
	for sub, count := range counts {
		if count > 1 {
			patterns = append(patterns, TextPattern{Value: sub, Count: count})
		}
	}

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Count != patterns[j].Count {
			return patterns[i].Count > patterns[j].Count
		}
		if len(patterns[i].Value) != len(patterns[j].Value) {
			return len(patterns[i].Value) > len(patterns[j].Value)
		}
		return strings.Compare(patterns[i].Value, patterns[j].Value) < 0
	})

	return patterns
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) && !isLetter(s[i]) {
			return false
		}
	}
	return true
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
