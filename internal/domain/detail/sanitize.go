package detail

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// legacyReplacements run over descriptions in this exact order. "quot;" turns
// into the word "undefined", which the pass two steps later removes again; the
// "nbsp" pass in between sees that word, not an empty string.
var legacyReplacements = [][2]string{
	{"&amp;", ""},
	{"#10;", ""},
	{"hellip", ""},
	{"ndash", ""},
	{"ldquo;", ""},
	{"rdquo;", ""},
	{"mdash;", ""},
	{"quot;", "undefined"},
	{"nbsp", ""},
	{"undefined", ""},
	{"rsquo", ""},
	{"#", ""},
}

// trailingEntity matches a semicolon and the run of non-space characters after
// it. The class lists the Unicode spaces explicitly because RE2's \s is ASCII only.
var trailingEntity = regexp.MustCompile(`;[^\s\x{000B}\x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}]*`)

// LegacySanitize strips entity debris from a raw description. It is a fixed
// sequence of literal replacements followed by a regex pass, not an HTML decoder,
// and its output is what the detail panel has always shown.
func LegacySanitize(raw string) string {
	s := raw
	for _, r := range legacyReplacements {
		s = strings.ReplaceAll(s, r[0], r[1])
	}
	return trailingEntity.ReplaceAllString(s, "")
}

// Description text scales.
const (
	ScaleLarge  = "1.2rem"
	ScaleMedium = "0.97rem"
	ScaleSmall  = "0.82rem"
)

// FontScale picks the text scale from the description length, measured in
// UTF-16 code units: under 1000, 1000 to 1999, and 2000 or more.
func FontScale(description string) string {
	n := len(utf16.Encode([]rune(description)))
	switch {
	case n < 1000:
		return ScaleLarge
	case n < 2000:
		return ScaleMedium
	default:
		return ScaleSmall
	}
}
