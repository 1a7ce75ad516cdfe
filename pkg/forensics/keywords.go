/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: keywords.go
Description: Crash-keyword dictionary for the forensics engine. Ships the built-in
dictionary of signal names and Android subsystem libraries, and supports loading a
user-supplied YAML dictionary to replace it.
*/

package forensics

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultKeywords is the built-in crash dictionary: POSIX signal names,
// crash vocabulary, and the Android native libraries that show up in
// minidump module lists. Declaration order is the report order.
var defaultKeywords = []string{
	"SIGSEGV", "SIGABRT", "SIGBUS", "SIGFPE", "SIGILL",
	"segfault", "abort", "crash", "exception", "fault",
	"stack", "heap", "memory", "null", "access",
	"libandroid", "libc.so", "libm.so", "liblog.so",
}

// DefaultKeywords returns a copy of the built-in crash-keyword dictionary.
func DefaultKeywords() []string {
	keywords := make([]string, len(defaultKeywords))
	copy(keywords, defaultKeywords)
	return keywords
}

// Dictionary is the YAML shape of a user-supplied keyword dictionary.
type Dictionary struct {
	Keywords []string `yaml:"keywords"`
}

// LoadDictionary reads a YAML keyword dictionary from path. The file must
// declare at least one keyword; declaration order is preserved.
func LoadDictionary(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword dictionary: %w", err)
	}

	var dict Dictionary
	if err := yaml.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("failed to parse keyword dictionary: %w", err)
	}
	if len(dict.Keywords) == 0 {
		return nil, fmt.Errorf("keyword dictionary %s declares no keywords", path)
	}

	return dict.Keywords, nil
}

// ContextString renders a keyword hit's context window as readable text,
// replacing non-printable bytes with '.' instead of failing the report.
func (h KeywordHit) ContextString() string {
	rendered := make([]byte, len(h.Context))
	for i, b := range h.Context {
		if IsPrintable(b) {
			rendered[i] = b
		} else {
			rendered[i] = '.'
		}
	}
	return string(rendered)
}
