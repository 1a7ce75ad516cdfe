/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: extractor_test.go
Description: Tests for the crashpad payload extractor. Covers marker-line
scanning, sentinel stripping, multi-line concatenation, the not-found outcome,
crash-context recovery, and HTML log-export flattening.
*/

package extractor_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/crashlens/pkg/extractor"
)

const crashLog = `07-15 10:23:44.998  1234  5678 I ActivityManager: Displayed com.example.app
07-15 10:23:45.050  1234  5678 W libEGL: context lost

07-15 10:23:45.100  1234  5678 E AndroidRuntime: native crash incoming
07-15 10:23:45.123  1234  5678 F crashpad: -----BEGIN CRASHPAD MINIDUMP-----
07-15 10:23:45.124  1234  5678 F crashpad: TURNUAEAAAAC
07-15 10:23:45.125  1234  5678 F crashpad: AAAAEAAAAA==
07-15 10:23:45.126  1234  5678 F crashpad: -----END CRASHPAD MINIDUMP-----
07-15 10:23:45.200  1234  5678 I Zygote: process died
`

func TestExtractPayload(t *testing.T) {
	payload, err := extractor.ExtractPayload(crashLog)
	require.NoError(t, err)

	// Sentinels are stripped and line remainders concatenate in file order.
	assert.Equal(t, "TURNUAEAAAACAAAAEAAAAA==", payload)
	assert.NotContains(t, payload, "BEGIN")
	assert.NotContains(t, payload, "END")
}

func TestExtractPayloadNotFound(t *testing.T) {
	_, err := extractor.ExtractPayload("07-15 10:00:00.000  1 2 I Boot: hello\n")
	assert.ErrorIs(t, err, extractor.ErrNoPayload)
}

func TestExtractPayloadEmptyInput(t *testing.T) {
	_, err := extractor.ExtractPayload("")
	assert.ErrorIs(t, err, extractor.ErrNoPayload)
}

func TestExtractPayloadSingleLine(t *testing.T) {
	log := "01-02 03:04:05.678  99  11 F crashpad: aGVsbG8=\n"
	payload, err := extractor.ExtractPayload(log)
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", payload)
}

func TestExtractContext(t *testing.T) {
	ctx := extractor.ExtractContext(crashLog)

	assert.Equal(t, "07-15 10:23:44.998", ctx.Timestamp)
	assert.Equal(t, 1234, ctx.ProcessID)

	// The non-empty lines before the first crashpad line, in order.
	require.Len(t, ctx.Lines, 3)
	assert.Contains(t, ctx.Lines[0], "ActivityManager")
	assert.Contains(t, ctx.Lines[2], "native crash incoming")
}

func TestExtractContextAbsentFields(t *testing.T) {
	ctx := extractor.ExtractContext("no structured data here")
	assert.Empty(t, ctx.Timestamp)
	assert.Zero(t, ctx.ProcessID)
	assert.Empty(t, ctx.Lines)
}

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, extractor.LooksLikeHTML("<!DOCTYPE html><html></html>"))
	assert.True(t, extractor.LooksLikeHTML("  <html lang=\"en\">"))
	assert.False(t, extractor.LooksLikeHTML(crashLog))
	assert.False(t, extractor.LooksLikeHTML(""))
}

func TestFromHTML(t *testing.T) {
	html := "<html><body><h1>Log export</h1><pre>" +
		"07-15 10:23:45.124  1234  5678 F crashpad: aGVsbG8=\n" +
		"</pre></body></html>"

	text, err := extractor.FromHTML(strings.NewReader(html))
	require.NoError(t, err)

	payload, err := extractor.ExtractPayload(text)
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", payload)
}

func TestFromHTMLWithoutPre(t *testing.T) {
	html := "<html><body><div>plain text capture</div></body></html>"
	text, err := extractor.FromHTML(strings.NewReader(html))
	require.NoError(t, err)
	assert.Contains(t, text, "plain text capture")
}
