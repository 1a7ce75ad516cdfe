/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: suggestions.go
Description: Debugging-suggestion output and keyword dictionary listing for
Crashlens. The suggestion blocks are fixed text rendered after the report;
the analysis core never depends on them.
*/

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/crashlens/pkg/forensics"
)

// analysisSuggestions is the fixed checklist printed after a report.
var analysisSuggestions = []string{
	"Check if this is a known issue in the project's tracker",
	"Look at recent changes in the codebase that might have caused this",
	"Check the crash-reporting dashboard for similar crashes",
	"Verify if the crash is reproducible",
	"Check device-specific information (Android version, architecture)",
	"Review memory usage and potential memory leaks",
	"Check for issues in native components and JNI boundaries",
	"Verify the integrity of bundled native filesystems and assets",
}

// debuggingSteps is the fixed list of deeper debugging steps.
var debuggingSteps = []string{
	"Enable debug builds with more verbose logging",
	"Use Android Studio's native debugging tools",
	"Check for stack overflow or memory corruption",
	"Review JNI interactions between native code and Android",
	"Test on different Android devices/versions",
	"Enable native debugging symbols in the build",
}

// PrintSuggestions writes the fixed debugging-suggestion blocks.
func PrintSuggestions(w io.Writer) {
	fmt.Fprintln(w, "\n💡 Crash Analysis Suggestions:")
	for i, s := range analysisSuggestions {
		fmt.Fprintf(w, "   %d. %s\n", i+1, s)
	}

	fmt.Fprintln(w, "\n🔧 Debugging Steps:")
	for i, s := range debuggingSteps {
		fmt.Fprintf(w, "   %d. %s\n", i+1, s)
	}
}

// ListKeywords prints the active crash-keyword dictionary
func ListKeywords(cmd *cobra.Command, args []string) {
	keywords := forensics.DefaultKeywords()
	source := "built-in"

	if path, _ := cmd.Flags().GetString("keywords-file"); path != "" {
		loaded, err := forensics.LoadDictionary(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		keywords = loaded
		source = path
	} else if path := viper.GetString("forensics.keywords_file"); path != "" {
		loaded, err := forensics.LoadDictionary(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		keywords = loaded
		source = path
	}

	fmt.Println("🔑 Crashlens - Crash Keyword Dictionary")
	fmt.Println("=======================================")
	fmt.Printf("Source: %s\n\n", source)
	for _, kw := range keywords {
		fmt.Printf("   • %s\n", kw)
	}
}
