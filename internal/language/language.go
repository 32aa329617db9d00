package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// bibliographic holds the ISO 639-2/B spellings that differ from the 639-2/T
// codes the x/text index understands.
var bibliographic = map[string]string{
	"alb": "sqi",
	"arm": "hye",
	"baq": "eus",
	"bur": "mya",
	"chi": "zho",
	"cze": "ces",
	"dut": "nld",
	"fre": "fra",
	"geo": "kat",
	"ger": "deu",
	"gre": "ell",
	"ice": "isl",
	"mac": "mkd",
	"mao": "mri",
	"may": "msa",
	"per": "fas",
	"rum": "ron",
	"slo": "slk",
	"tib": "bod",
	"wel": "cym",
}

// Normalize lowercases and trims a language code. Empty input stays empty.
func Normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// DisplayName returns the English name for a language code, or "" when the
// code is empty or unrecognized. Codes are treated as opaque elsewhere; an
// unrecognized code still matches and extracts, it just has no display name.
func DisplayName(code string) string {
	normalized := Normalize(code)
	if normalized == "" {
		return ""
	}
	if terminology, ok := bibliographic[normalized]; ok {
		normalized = terminology
	}
	base, err := language.ParseBase(normalized)
	if err != nil {
		return ""
	}
	return display.English.Languages().Name(base)
}
