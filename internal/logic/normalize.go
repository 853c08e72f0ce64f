package logic

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// glyphs maps the accepted operator spellings onto the ASCII token set.
var glyphs = strings.NewReplacer(
	"¬", "!",
	"~", "!",
	"∧", "&",
	"∨", "|",
	"→", "->",
	"↔", "<->",
)

// Normalize rewrites raw input into the canonical token stream accepted by
// Compile.
//
// Steps, in order:
//  1. remove all whitespace
//  2. map ¬ ~ ∧ ∨ → ↔ onto ! & | -> <->
//  3. lower-case
//  4. NFC compose
//
// Unrecognized characters pass through untouched; the parser rejects them.
// Compatibility forms (full-width, circled, superscript letters) are not
// folded. Normalize is idempotent.
func Normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = glyphs.Replace(s)
	// Casers are stateful; one per call.
	s = cases.Lower(language.Und).String(s)
	return norm.NFC.String(s)
}
