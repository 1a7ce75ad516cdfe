/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: decoder.go
Description: Byte-decoding strategy chain for extracted crash payloads. Tries a
fixed, ordered list of decoding strategies (Base64, then hex) and stops at the
first one that yields bytes; when every strategy declines, falls back to raw
structural analysis of the encoded text, which always succeeds. Malformed input
is the common case, so a strategy failure is a decline, never an abort.
*/

package decoder

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"regexp"

	"github.com/sirupsen/logrus"
)

// Strategy is one byte-decoding attempt. Decode returns an error to decline;
// a successful decode must yield at least one byte.
type Strategy interface {
	// Name identifies the strategy in logs and in the report's decode method.
	Name() string
	// Decode transforms the encoded payload into bytes, or declines.
	Decode(data string) ([]byte, error)
}

// Result is the outcome of running the strategy chain. Exactly one of Data
// or Raw is set: Data when a strategy produced bytes, Raw when the fallback
// structural analysis ran instead.
type Result struct {
	Method string       `json:"method"`
	Data   []byte       `json:"data,omitempty"`
	Raw    *RawAnalysis `json:"raw,omitempty"`
}

// Decoded reports whether a strategy produced a byte buffer.
func (r *Result) Decoded() bool {
	return len(r.Data) > 0
}

var (
	nonBase64 = regexp.MustCompile(`[^A-Za-z0-9+/=]`)
	nonHex    = regexp.MustCompile(`[^0-9A-Fa-f]`)
)

// Base64Strategy decodes standard Base64 after stripping every character
// outside the Base64 alphabet, padding included.
type Base64Strategy struct{}

// Name returns the strategy identifier.
func (Base64Strategy) Name() string { return "base64" }

// Decode strips non-alphabet characters and decodes. Empty output declines.
func (Base64Strategy) Decode(data string) ([]byte, error) {
	clean := nonBase64.ReplaceAllString(data, "")
	decoded, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("base64 decode failed: %w", err)
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("base64 decode produced no bytes")
	}
	return decoded, nil
}

// HexStrategy decodes hexadecimal after stripping every non-hex-digit
// character. The cleaned string must have even length.
type HexStrategy struct{}

// Name returns the strategy identifier.
func (HexStrategy) Name() string { return "hex" }

// Decode strips non-hex characters and decodes digit pairs to bytes.
func (HexStrategy) Decode(data string) ([]byte, error) {
	clean := nonHex.ReplaceAllString(data, "")
	if len(clean) == 0 {
		return nil, fmt.Errorf("no hex digits in payload")
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("odd-length hex payload (%d digits)", len(clean))
	}
	decoded, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("hex decode failed: %w", err)
	}
	return decoded, nil
}

// Decoder folds an encoded payload over the strategy chain.
type Decoder struct {
	strategies []Strategy
	logger     *logrus.Logger
}

// NewDecoder creates a decoder with the standard strategy order:
// Base64, then hex, then the raw structural-analysis fallback.
func NewDecoder(logger *logrus.Logger) *Decoder {
	return &Decoder{
		strategies: []Strategy{Base64Strategy{}, HexStrategy{}},
		logger:     logger,
	}
}

// Decode tries each strategy in order and returns the first success. When
// every strategy declines it runs the raw structural analysis, so the result
// is never nil and the pipeline never aborts on undecodable payloads.
func (d *Decoder) Decode(blob string) *Result {
	for _, strategy := range d.strategies {
		decoded, err := strategy.Decode(blob)
		if err != nil {
			if d.logger != nil {
				d.logger.WithFields(logrus.Fields{
					"strategy": strategy.Name(),
					"reason":   err.Error(),
				}).Debug("Decode strategy declined")
			}
			continue
		}

		if d.logger != nil {
			d.logger.WithFields(logrus.Fields{
				"strategy": strategy.Name(),
				"bytes":    len(decoded),
			}).Info("Payload decoded")
		}
		return &Result{Method: strategy.Name(), Data: decoded}
	}

	if d.logger != nil {
		d.logger.WithField("length", len(blob)).Warn("All decode strategies declined, analyzing raw text")
	}
	return &Result{Method: "raw", Raw: AnalyzeRaw(blob)}
}
