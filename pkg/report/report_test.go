/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_test.go
Description: Tests for the crash report assembler. Covers deterministic report
IDs, defaulting of absent pipeline outputs, and hex dump attachment.
*/

package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/crashlens/pkg/decoder"
	"github.com/kleascm/crashlens/pkg/extractor"
	"github.com/kleascm/crashlens/pkg/report"
	"github.com/kleascm/crashlens/pkg/sniffer"
)

func TestAssembleDefaults(t *testing.T) {
	r := report.Assemble("some log", extractor.Context{}, 0, nil, "", nil, nil, 256)
	require.NotNil(t, r)

	// Absent outputs become zero values, never nil aggregates.
	assert.False(t, r.PayloadFound)
	assert.Equal(t, sniffer.SignatureUnknown, r.Signature)
	require.NotNil(t, r.Findings)
	assert.Zero(t, r.Findings.Entropy)
	assert.Empty(t, r.HexDump)
}

func TestAssembleDeterministicID(t *testing.T) {
	a := report.Assemble("identical log", extractor.Context{}, 0, nil, sniffer.SignatureUnknown, nil, nil, 256)
	b := report.Assemble("identical log", extractor.Context{}, 0, nil, sniffer.SignatureUnknown, nil, nil, 256)
	c := report.Assemble("different log", extractor.Context{}, 0, nil, sniffer.SignatureUnknown, nil, nil, 256)

	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestAssembleDecodedResult(t *testing.T) {
	result := &decoder.Result{Method: "base64", Data: []byte{0xDE, 0xAD}}
	ctx := extractor.Context{Timestamp: "07-15 10:23:45.100", ProcessID: 42}

	r := report.Assemble("log", ctx, 8, result, sniffer.SignatureUnknown, nil, nil, 256)

	assert.True(t, r.PayloadFound)
	assert.Equal(t, "base64", r.DecodeMethod)
	assert.Equal(t, 2, r.DecodedSize)
	assert.Equal(t, 8, r.EncodedLength)
	assert.Equal(t, "07-15 10:23:45.100", r.Timestamp)
	assert.Equal(t, 42, r.ProcessID)
	assert.Equal(t, "0000: de ad\n", r.HexDump)
}

func TestAssembleRawResult(t *testing.T) {
	result := &decoder.Result{Method: "raw", Raw: decoder.AnalyzeRaw("zzz")}

	r := report.Assemble("log", extractor.Context{}, 3, result, sniffer.SignatureUnknown, nil, nil, 256)

	assert.True(t, r.PayloadFound)
	assert.Zero(t, r.DecodedSize)
	assert.Empty(t, r.HexDump)
	require.NotNil(t, r.Raw)
	assert.Equal(t, 3, r.Raw.Length)
}
