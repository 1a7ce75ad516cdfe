/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for Crashlens. Provides command-line
options and configuration management for analyzing Crashpad minidump payloads
embedded in Android crash logs.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/crashlens/cmd/crashlens/commands"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Logging configuration
	logDir    string
	logFormat string

	// Analysis configuration
	minStringLength int
	keywordsFile    string
	hexDumpBytes    int
	maxPatterns     int
	jsonOutput      bool
	suggestions     bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "crashlens",
		Short: "Crashlens - Forensic analyzer for log-embedded Android crash dumps",
		Long: `Crashlens decodes and forensically analyzes Crashpad minidump payloads embedded
as encoded text inside Android application logs. It locates the payload, tries multiple
byte-level decodings, sniffs the container format, parses the minidump header, and mines
the buffer for entropy, repeating patterns, printable strings, candidate memory addresses,
and crash keywords.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log output directory (empty = console only)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add analyze command
	analyzeCmd := &cobra.Command{
		Use:   "analyze [logfile]",
		Short: "Analyze a captured crash log for an embedded minidump",
		Long: `Analyze a captured Android crash log. Pass the log file path, or "-" (or no
argument) to read the capture from standard input. HTML logcat exports are
flattened automatically before scanning.`,
		Args: cobra.MaximumNArgs(1),
		RunE: commands.RunAnalyze,
	}

	analyzeCmd.Flags().IntVar(&minStringLength, "min-string-length", 4, "Minimum printable run kept as a recovered string")
	analyzeCmd.Flags().StringVar(&keywordsFile, "keywords-file", "", "YAML file replacing the built-in crash-keyword dictionary")
	analyzeCmd.Flags().IntVar(&hexDumpBytes, "hex-dump-bytes", 256, "Leading bytes shown in the hex dump")
	analyzeCmd.Flags().IntVar(&maxPatterns, "max-patterns", 5, "Repeating patterns shown in the report")
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON instead of text")
	analyzeCmd.Flags().BoolVar(&suggestions, "suggestions", true, "Print debugging suggestions after the report")

	viper.BindPFlag("forensics.min_string_length", analyzeCmd.Flags().Lookup("min-string-length"))
	viper.BindPFlag("forensics.keywords_file", analyzeCmd.Flags().Lookup("keywords-file"))
	viper.BindPFlag("analysis.hex_dump_bytes", analyzeCmd.Flags().Lookup("hex-dump-bytes"))
	viper.BindPFlag("analysis.max_patterns", analyzeCmd.Flags().Lookup("max-patterns"))
	viper.BindPFlag("analysis.json_output", analyzeCmd.Flags().Lookup("json"))
	viper.BindPFlag("analysis.suggestions", analyzeCmd.Flags().Lookup("suggestions"))

	// Add keywords command
	keywordsCmd := &cobra.Command{
		Use:   "keywords",
		Short: "List the crash-keyword dictionary used by the forensics engine",
		Run:   commands.ListKeywords,
	}
	keywordsCmd.Flags().StringVar(&keywordsFile, "keywords-file", "", "YAML file replacing the built-in crash-keyword dictionary")

	// Add commands to root
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(keywordsCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
