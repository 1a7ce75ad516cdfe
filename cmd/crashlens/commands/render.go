/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: render.go
Description: Text renderer for Crashlens reports. Formats the structured
CrashReport produced by the pipeline into readable console output: crash
context, decode outcome, container format, minidump header fields, hex dump,
and forensic findings.
*/

package commands

import (
	"fmt"
	"io"

	"github.com/kleascm/crashlens/pkg/report"
	"github.com/kleascm/crashlens/pkg/sniffer"
)

const (
	maxStringsShown   = 10
	maxAddressesShown = 10
)

// RenderReport writes the crash report as readable text.
func RenderReport(w io.Writer, r *report.CrashReport, maxPatterns int) {
	fmt.Fprintln(w, "🔍 Crashlens Crash Analysis")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "   • Report ID: %s\n", r.ID)

	renderContext(w, r)
	renderDecode(w, r)

	if r.Raw != nil {
		renderRawAnalysis(w, r, maxPatterns)
		return
	}
	if !r.PayloadFound || r.DecodedSize == 0 {
		return
	}

	renderBinary(w, r, maxPatterns)
}

// renderContext prints the crash context recovered from the log text.
func renderContext(w io.Writer, r *report.CrashReport) {
	fmt.Fprintln(w, "\n🕐 Crash Context:")
	if r.Timestamp != "" {
		fmt.Fprintf(w, "   • Crash time: %s\n", r.Timestamp)
	}
	if r.ProcessID != 0 {
		fmt.Fprintf(w, "   • Process ID: %d\n", r.ProcessID)
	}
	if len(r.ContextLines) > 0 {
		fmt.Fprintln(w, "   • Log lines before crash:")
		for _, line := range r.ContextLines {
			fmt.Fprintf(w, "     %s\n", line)
		}
	}
	if r.Timestamp == "" && r.ProcessID == 0 && len(r.ContextLines) == 0 {
		fmt.Fprintln(w, "   • No crash context found")
	}
}

// renderDecode prints the payload extraction and decode outcome.
func renderDecode(w io.Writer, r *report.CrashReport) {
	fmt.Fprintln(w, "\n📦 Crashpad Payload:")
	if !r.PayloadFound {
		fmt.Fprintln(w, "   ❌ No Crashpad minidump data found in the crash log")
		return
	}

	fmt.Fprintf(w, "   • Encoded data length: %d characters\n", r.EncodedLength)
	if r.DecodedSize > 0 {
		fmt.Fprintf(w, "   ✅ Decoded %d bytes via %s\n", r.DecodedSize, r.DecodeMethod)
	} else {
		fmt.Fprintln(w, "   ❌ Could not fully decode the payload, falling back to raw analysis")
	}
}

// renderRawAnalysis prints the structural analysis of an undecodable payload.
func renderRawAnalysis(w io.Writer, r *report.CrashReport, maxPatterns int) {
	raw := r.Raw

	fmt.Fprintln(w, "\n📋 Raw data analysis:")
	fmt.Fprintf(w, "   • Length: %d characters\n", raw.Length)
	fmt.Fprintf(w, "   • First %d chars: %s...\n", len(raw.Head), raw.Head)
	fmt.Fprintf(w, "   • Last %d chars: ...%s\n", len(raw.Tail), raw.Tail)

	fmt.Fprintln(w, "📊 Character distribution:")
	fmt.Fprintf(w, "   • Printable ASCII: %d (%.1f%%)\n", raw.PrintableCount, raw.Percent(raw.PrintableCount))
	fmt.Fprintf(w, "   • Digits: %d (%.1f%%)\n", raw.DigitCount, raw.Percent(raw.DigitCount))
	fmt.Fprintf(w, "   • Letters: %d (%.1f%%)\n", raw.LetterCount, raw.Percent(raw.LetterCount))
	fmt.Fprintf(w, "   • Special chars: %d (%.1f%%)\n", raw.SpecialCount, raw.Percent(raw.SpecialCount))

	if len(raw.Patterns) > 0 {
		fmt.Fprintln(w, "🔄 Common patterns found:")
		for i, p := range raw.Patterns {
			if i >= maxPatterns {
				break
			}
			fmt.Fprintf(w, "   • '%s' appears %d times\n", p.Value, p.Count)
		}
	}
}

// renderBinary prints the container format, header, hex dump, and findings
// for a successfully decoded buffer.
func renderBinary(w io.Writer, r *report.CrashReport, maxPatterns int) {
	fmt.Fprintf(w, "\n🔍 Binary data analysis (%d bytes):\n", r.DecodedSize)
	if r.Signature == sniffer.SignatureUnknown {
		fmt.Fprintln(w, "   ❓ Unknown binary format")
	} else {
		fmt.Fprintf(w, "   ✅ Detected file type: %s\n", r.Signature.Description())
	}

	if r.Header != nil {
		fmt.Fprintln(w, "\n🧾 Minidump header:")
		if r.Header.Version != nil {
			fmt.Fprintf(w, "   • Version: 0x%08x\n", *r.Header.Version)
		}
		if r.Header.StreamCount != nil {
			fmt.Fprintf(w, "   • Stream count: %d\n", *r.Header.StreamCount)
		}
		if r.Header.StreamDirectoryRVA != nil {
			fmt.Fprintf(w, "   • Stream directory RVA: 0x%08x\n", *r.Header.StreamDirectoryRVA)
		}
	}

	if r.HexDump != "" {
		fmt.Fprintln(w, "\n📋 Hex dump:")
		fmt.Fprint(w, indent(r.HexDump, "   "))
	}

	renderFindings(w, r, maxPatterns)
}

// renderFindings prints the forensic findings section.
func renderFindings(w io.Writer, r *report.CrashReport, maxPatterns int) {
	f := r.Findings

	fmt.Fprintln(w, "\n📊 Forensic findings:")
	fmt.Fprintf(w, "   • Entropy: %.3f bits/byte\n", f.Entropy)
	if f.LikelyCompressed() {
		fmt.Fprintln(w, "   • Data appears to be: compressed/encrypted")
	} else {
		fmt.Fprintln(w, "   • Data appears to be: uncompressed")
	}

	if len(f.Patterns) > 0 {
		fmt.Fprintln(w, "   • Repeating patterns found:")
		for i, p := range f.Patterns {
			if i >= maxPatterns {
				break
			}
			fmt.Fprintf(w, "     - %x: %d occurrences\n", p.Bytes, p.Count)
		}
	}

	if len(f.Strings) > 0 {
		fmt.Fprintf(w, "   • Found %d printable strings:\n", len(f.Strings))
		for i, s := range f.Strings {
			if i >= maxStringsShown {
				fmt.Fprintf(w, "     ... and %d more\n", len(f.Strings)-maxStringsShown)
				break
			}
			fmt.Fprintf(w, "     - '%s'\n", s)
		}
	}

	if len(f.Addresses) > 0 {
		fmt.Fprintf(w, "   • Found %d potential addresses:\n", len(f.Addresses))
		for i, addr := range f.Addresses {
			if i >= maxAddressesShown {
				fmt.Fprintf(w, "     ... and %d more\n", len(f.Addresses)-maxAddressesShown)
				break
			}
			fmt.Fprintf(w, "     - 0x%x\n", addr)
		}
	}

	if len(f.KeywordHits) > 0 {
		fmt.Fprintf(w, "   • Found %d crash-related keywords:\n", len(f.KeywordHits))
		for _, hit := range f.KeywordHits {
			fmt.Fprintf(w, "     - '%s' at position %d (%s)\n", hit.Keyword, hit.Offset, hit.ContextString())
		}
	}
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	var out string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '\n' {
			if i > start {
				out += prefix + s[start:i] + "\n"
			}
			start = i + 1
		}
	}
	return out
}
