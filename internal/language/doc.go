// Package language normalizes subtitle language codes for display.
//
// Matching against wanted-language lists stays an opaque case-insensitive
// token comparison; this package only maps codes to human-readable names for
// tables and logs, folding the ISO 639-2 bibliographic spellings (fre, ger,
// chi, ...) onto their terminology equivalents first.
package language
