/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyze.go
Description: Analyze command for Crashlens. Reads a captured crash log from a
file or standard input, runs the decode-and-analyze pipeline, and renders the
resulting crash report as text or JSON with optional debugging suggestions.
*/

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/crashlens/pkg/analyzer"
)

// RunAnalyze executes the analyze command
func RunAnalyze(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return err
	}

	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	logText, err := readCrashLog(args)
	if err != nil {
		return err
	}
	if len(logText) == 0 {
		return fmt.Errorf("crash log input is empty")
	}

	config := &analyzer.Config{
		MinStringLength: viper.GetInt("forensics.min_string_length"),
		KeywordsFile:    viper.GetString("forensics.keywords_file"),
		HexDumpBytes:    viper.GetInt("analysis.hex_dump_bytes"),
	}

	a, err := analyzer.New(config, logger.Logrus())
	if err != nil {
		return err
	}

	crashReport := a.Analyze(logText)

	if viper.GetBool("analysis.json_output") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(crashReport)
	}

	RenderReport(os.Stdout, crashReport, viper.GetInt("analysis.max_patterns"))

	if viper.GetBool("analysis.suggestions") {
		PrintSuggestions(os.Stdout)
	}

	return nil
}

// readCrashLog reads the capture from the argument path, or from standard
// input when no argument (or "-") is given.
func readCrashLog(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read crash log: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read crash log from stdin: %w", err)
	}
	return string(data), nil
}
