/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: extractor.go
Description: Crashpad payload extractor for Android crash logs. Scans logcat text
for the fatal crashpad marker lines, concatenates their payload remainders, and
strips the BEGIN/END minidump sentinels. Also recovers crash context (timestamp,
process id, preceding log lines) from the surrounding log text.
*/

package extractor

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Logcat conventions the extractor must match exactly: the fatal crashpad
// marker, the sentinels delimiting the encoded minidump block, the logcat
// timestamp shape, and the pid column preceding the marker.
const (
	payloadMarker = "F crashpad:"
	beginSentinel = "-----BEGIN CRASHPAD MINIDUMP-----"
	endSentinel   = "-----END CRASHPAD MINIDUMP-----"
)

var (
	payloadPattern   = regexp.MustCompile(`F crashpad: ([^$\n]+)`)
	timestampPattern = regexp.MustCompile(`(\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3})`)
	pidPattern       = regexp.MustCompile(`(\d+)\s+\d+\s+F crashpad:`)
)

// ErrNoPayload reports that the log text carries no crashpad payload line.
// A normal outcome for logs without an embedded dump, not a failure.
var ErrNoPayload = errors.New("no crashpad payload found in log")

// contextLineCount is how many preceding log lines are kept as context.
const contextLineCount = 5

// Context is what the surrounding log text says about the crash,
// independent of whether the payload decodes.
type Context struct {
	Timestamp string   `json:"timestamp,omitempty"`
	ProcessID int      `json:"process_id,omitempty"`
	Lines     []string `json:"lines,omitempty"`
}

// ExtractPayload collects the payload remainder of every crashpad marker
// line in file order, concatenated with no separator, with the BEGIN/END
// sentinels stripped and surrounding whitespace trimmed. Returns
// ErrNoPayload when no marker line exists.
func ExtractPayload(logText string) (string, error) {
	matches := payloadPattern.FindAllStringSubmatch(logText, -1)
	if len(matches) == 0 {
		return "", ErrNoPayload
	}

	var payload strings.Builder
	for _, m := range matches {
		payload.WriteString(m[1])
	}

	data := payload.String()
	data = strings.ReplaceAll(data, beginSentinel, "")
	data = strings.ReplaceAll(data, endSentinel, "")
	return strings.TrimSpace(data), nil
}

// ExtractContext recovers the crash timestamp, the crashing process id, and
// the non-empty log lines immediately preceding the first crashpad line.
// Every field is best-effort; absent patterns leave zero values.
func ExtractContext(logText string) Context {
	ctx := Context{}

	if m := timestampPattern.FindStringSubmatch(logText); m != nil {
		ctx.Timestamp = m[1]
	}

	if m := pidPattern.FindStringSubmatch(logText); m != nil {
		if pid, err := strconv.Atoi(m[1]); err == nil {
			ctx.ProcessID = pid
		}
	}

	lines := strings.Split(logText, "\n")
	for i, line := range lines {
		if !strings.Contains(line, payloadMarker) {
			continue
		}
		start := i - contextLineCount
		if start < 0 {
			start = 0
		}
		for _, prev := range lines[start:i] {
			if strings.TrimSpace(prev) != "" {
				ctx.Lines = append(ctx.Lines, prev)
			}
		}
		break
	}

	return ctx
}
