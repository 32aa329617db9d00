package main

import (
	"strings"
)

// resolveLanguages returns the flag-provided language codes, lowercased, or
// the mode's configured default when the flag was not used.
func resolveLanguages(flagValues, defaults []string) []string {
	cleaned := make([]string, 0, len(flagValues))
	for _, value := range flagValues {
		value = strings.ToLower(strings.TrimSpace(value))
		if value == "" {
			continue
		}
		cleaned = append(cleaned, value)
	}
	if len(cleaned) == 0 {
		return append([]string(nil), defaults...)
	}
	return cleaned
}
