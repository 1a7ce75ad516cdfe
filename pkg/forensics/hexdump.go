/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: hexdump.go
Description: Hex dump formatting for decoded crash-dump buffers. Renders the
leading bytes of a buffer as offset-prefixed rows of space-separated hex pairs
for the analysis report.
*/

package forensics

import (
	"fmt"
	"strings"
)

// hexDumpRowBytes is the number of bytes rendered per dump row.
const hexDumpRowBytes = 16

// HexDump renders up to max leading bytes of data as rows of hex pairs,
// each row prefixed with its byte offset. A max of 0 or less dumps the
// whole buffer.
func HexDump(data []byte, max int) string {
	if max > 0 && len(data) > max {
		data = data[:max]
	}

	var out strings.Builder
	for i := 0; i < len(data); i += hexDumpRowBytes {
		end := i + hexDumpRowBytes
		if end > len(data) {
			end = len(data)
		}

		pairs := make([]string, 0, hexDumpRowBytes)
		for _, b := range data[i:end] {
			pairs = append(pairs, fmt.Sprintf("%02x", b))
		}

		out.WriteString(fmt.Sprintf("%04x: %s\n", i, strings.Join(pairs, " ")))
	}

	return out.String()
}
