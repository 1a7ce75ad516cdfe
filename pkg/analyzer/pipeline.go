/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pipeline.go
Description: Analysis pipeline for Crashlens. Drives extraction, decoding,
format sniffing, minidump header parsing, and binary forensics over one crash
log capture and assembles the resulting CrashReport. Every stage degrades to a
partial report instead of aborting; the pipeline is a pure function of the
input text.
*/

package analyzer

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/crashlens/pkg/decoder"
	"github.com/kleascm/crashlens/pkg/extractor"
	"github.com/kleascm/crashlens/pkg/forensics"
	"github.com/kleascm/crashlens/pkg/minidump"
	"github.com/kleascm/crashlens/pkg/report"
	"github.com/kleascm/crashlens/pkg/sniffer"
)

// defaultHexDumpBytes matches the original capture tooling's 256-byte dump.
const defaultHexDumpBytes = 256

// Config holds the pipeline's tunable parameters.
type Config struct {
	// MinStringLength is the minimum printable run kept as a recovered
	// string. Zero selects the default.
	MinStringLength int
	// KeywordsFile optionally replaces the built-in crash-keyword
	// dictionary with a YAML file.
	KeywordsFile string
	// HexDumpBytes bounds the report's hex dump of the decoded buffer.
	// Zero selects the default.
	HexDumpBytes int
}

// Analyzer runs the full decode-and-analyze pipeline. It holds no state
// across invocations; each Analyze call is independent.
type Analyzer struct {
	decoder      *decoder.Decoder
	engine       *forensics.Engine
	logger       *logrus.Logger
	hexDumpBytes int
}

// New creates an analyzer from config. Loading a configured keyword
// dictionary is the only construction step that can fail.
func New(config *Config, logger *logrus.Logger) (*Analyzer, error) {
	if config == nil {
		config = &Config{}
	}

	engineConfig := &forensics.EngineConfig{MinStringLength: config.MinStringLength}
	if config.KeywordsFile != "" {
		keywords, err := forensics.LoadDictionary(config.KeywordsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load keyword dictionary: %w", err)
		}
		engineConfig.Keywords = keywords
	}

	hexDumpBytes := config.HexDumpBytes
	if hexDumpBytes == 0 {
		hexDumpBytes = defaultHexDumpBytes
	}

	return &Analyzer{
		decoder:      decoder.NewDecoder(logger),
		engine:       forensics.NewEngine(engineConfig, logger),
		logger:       logger,
		hexDumpBytes: hexDumpBytes,
	}, nil
}

// Analyze runs the pipeline over one captured log and returns its report.
// HTML log exports are flattened to plain text first. There are no fatal
// outcomes: a log without a payload, or a payload no strategy can decode,
// still yields a fully formed (if sparse) report.
func (a *Analyzer) Analyze(logText string) *report.CrashReport {
	if extractor.LooksLikeHTML(logText) {
		if plain, err := extractor.FromHTML(strings.NewReader(logText)); err == nil {
			logText = plain
		} else if a.logger != nil {
			a.logger.WithError(err).Warn("HTML capture could not be flattened, scanning as-is")
		}
	}

	ctx := extractor.ExtractContext(logText)

	payload, err := extractor.ExtractPayload(logText)
	if err != nil {
		if a.logger != nil {
			a.logger.Info("No crashpad payload in log, reporting context only")
		}
		return report.Assemble(logText, ctx, 0, nil, sniffer.SignatureUnknown, nil, nil, a.hexDumpBytes)
	}

	if a.logger != nil {
		a.logger.WithField("length", len(payload)).Info("Crashpad payload extracted")
	}

	result := a.decoder.Decode(payload)
	if !result.Decoded() {
		return report.Assemble(logText, ctx, len(payload), result, sniffer.SignatureUnknown, nil, nil, a.hexDumpBytes)
	}

	signature := sniffer.Sniff(result.Data)
	if a.logger != nil {
		a.logger.WithFields(logrus.Fields{
			"signature": signature,
			"format":    signature.Description(),
		}).Info("Container format sniffed")
	}

	var header *minidump.Header
	if signature == sniffer.SignatureMinidump {
		header = minidump.ParseHeader(result.Data)
	}

	// Forensics always runs, whatever the container, to surface suspicious
	// content in non-minidump payloads too.
	findings := a.engine.Analyze(result.Data)

	return report.Assemble(logText, ctx, len(payload), result, signature, header, findings, a.hexDumpBytes)
}
