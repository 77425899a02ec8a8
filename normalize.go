package knacks

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacritics is the set of runes removed after canonical decomposition.
var diacritics = runes.In(unicode.Diacritic)

// Normalize returns the canonical comparison form of s: decomposed (NFD),
// stripped of diacritical marks, and lowercased. Both indexed text and
// queries go through Normalize before they are compared.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// Chained transformers carry buffers, so each call builds its own.
	t := transform.Chain(norm.NFD, runes.Remove(diacritics))
	stripped, _, err := transform.String(t, s)
	if err != nil {
		return NormalizeFallback(s)
	}
	return strings.ToLower(stripped)
}

// fallbackReplacer maps the accented Latin vowels and ñ to their base letter.
var fallbackReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "ä", "a", "â", "a", "ã", "a", "å", "a",
	"Á", "a", "À", "a", "Ä", "a", "Â", "a", "Ã", "a", "Å", "a",
	"é", "e", "è", "e", "ë", "e", "ê", "e",
	"É", "e", "È", "e", "Ë", "e", "Ê", "e",
	"í", "i", "ì", "i", "ï", "i", "î", "i",
	"Í", "i", "Ì", "i", "Ï", "i", "Î", "i",
	"ó", "o", "ò", "o", "ö", "o", "ô", "o", "õ", "o",
	"Ó", "o", "Ò", "o", "Ö", "o", "Ô", "o", "Õ", "o",
	"ú", "u", "ù", "u", "ü", "u", "û", "u",
	"Ú", "u", "Ù", "u", "Ü", "u", "Û", "u",
	"ñ", "n", "Ñ", "n",
)

// NormalizeFallback is the table-driven variant of Normalize. It only knows
// the accented vowels and ñ/Ñ; any other diacritic is kept. On ASCII input
// and on the characters of its table it agrees with Normalize.
func NormalizeFallback(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToLower(fallbackReplacer.Replace(s))
}
