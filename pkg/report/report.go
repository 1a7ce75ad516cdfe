/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Crash report aggregate and assembler for Crashlens. Merges crash
context, decode outcome, container signature, minidump header, and forensic
findings into one immutable report value for the presentation layer. Missing
optional fields stay absent; assembly never fails.
*/

package report

import (
	"github.com/google/uuid"

	"github.com/kleascm/crashlens/pkg/decoder"
	"github.com/kleascm/crashlens/pkg/extractor"
	"github.com/kleascm/crashlens/pkg/forensics"
	"github.com/kleascm/crashlens/pkg/minidump"
	"github.com/kleascm/crashlens/pkg/sniffer"
)

// CrashReport is the result of one analysis invocation. Constructed once,
// immutable after assembly, and always fully formed: a sparse report with
// empty findings is the degraded outcome, never an error.
type CrashReport struct {
	ID            string               `json:"id"`
	Timestamp     string               `json:"timestamp,omitempty"`
	ProcessID     int                  `json:"process_id,omitempty"`
	ContextLines  []string             `json:"context_lines,omitempty"`
	PayloadFound  bool                 `json:"payload_found"`
	EncodedLength int                  `json:"encoded_length,omitempty"`
	DecodeMethod  string               `json:"decode_method,omitempty"`
	DecodedSize   int                  `json:"decoded_size,omitempty"`
	Signature     sniffer.Signature    `json:"signature"`
	Header        *minidump.Header     `json:"header,omitempty"`
	HexDump       string               `json:"hex_dump,omitempty"`
	Findings      *forensics.Findings  `json:"findings"`
	Raw           *decoder.RawAnalysis `json:"raw_analysis,omitempty"`
}

// reportNamespace seeds the deterministic report ID so identical input text
// always yields a field-for-field identical report.
var reportNamespace = uuid.MustParse("7c9e2f0a-4b31-4d8e-9f4a-1c6d2e8b5a90")

// Assemble merges the pipeline stage outputs into one CrashReport. A nil
// decode result (no payload found) produces a context-only report with
// empty findings; a raw-analysis fallback produces a report whose decode
// method records that the payload could not be fully decoded. The report ID
// is a UUIDv5 of the input text, so reassembling the same log reproduces
// the same report. hexDumpBytes bounds the rendered hex dump of the decoded
// buffer; zero or less dumps the whole buffer.
func Assemble(logText string, ctx extractor.Context, encodedLength int, result *decoder.Result,
	signature sniffer.Signature, header *minidump.Header, findings *forensics.Findings,
	hexDumpBytes int) *CrashReport {

	r := &CrashReport{
		ID:            uuid.NewSHA1(reportNamespace, []byte(logText)).String(),
		Timestamp:     ctx.Timestamp,
		ProcessID:     ctx.ProcessID,
		ContextLines:  ctx.Lines,
		EncodedLength: encodedLength,
		Signature:     signature,
		Header:        header,
		Findings:      findings,
	}

	if r.Findings == nil {
		r.Findings = &forensics.Findings{}
	}
	if r.Signature == "" {
		r.Signature = sniffer.SignatureUnknown
	}

	if result != nil {
		r.PayloadFound = true
		r.DecodeMethod = result.Method
		r.DecodedSize = len(result.Data)
		r.Raw = result.Raw
		if len(result.Data) > 0 {
			r.HexDump = forensics.HexDump(result.Data, hexDumpBytes)
		}
	}

	return r
}
