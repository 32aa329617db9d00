package main

import (
	"strings"
	"testing"
)

func TestResolveLanguagesFallsBackToDefaults(t *testing.T) {
	got := resolveLanguages(nil, []string{"rus", "eng", "zho"})
	if strings.Join(got, ",") != "rus,eng,zho" {
		t.Fatalf("unexpected defaults %v", got)
	}
}

func TestResolveLanguagesCleansFlagValues(t *testing.T) {
	got := resolveLanguages([]string{" ENG ", "", "jpn"}, []string{"rus"})
	if strings.Join(got, ",") != "eng,jpn" {
		t.Fatalf("unexpected languages %v", got)
	}
}

func TestResolveLanguagesDoesNotAliasDefaults(t *testing.T) {
	defaults := []string{"rus", "eng"}
	got := resolveLanguages(nil, defaults)
	got[0] = "jpn"
	if defaults[0] != "rus" {
		t.Fatal("resolveLanguages must copy the default slice")
	}
}
