package phonology

import "strings"

// runeDigraphs are transliterated before single letters; order matters.
var runeDigraphs = []string{"th", "ng", "ae", "oe", "ea", "eo", "ei", "au", "aa", "ks"}

var runeMap = map[string]string{
	"th": "ᚦ",
	"ng": "ᛜ",
	"ae": "ᚫ",
	"oe": "ᛟ",
	"ea": "ᛠ",
	"eo": "ᛇ",
	"ei": "ᛇ",
	"au": "ᚢ",
	"aa": "ᚪ",
	"ks": "ᛉ",
	"a":  "ᚨ",
	"b":  "ᛒ",
	"c":  "ᚲ",
	"d":  "ᛞ",
	"e":  "ᛖ",
	"f":  "ᚠ",
	"g":  "ᚷ",
	"h":  "ᚺ",
	"i":  "ᛁ",
	"j":  "ᛃ",
	"k":  "ᚲ",
	"l":  "ᛚ",
	"m":  "ᛗ",
	"n":  "ᚾ",
	"o":  "ᛟ",
	"p":  "ᛈ",
	"r":  "ᚱ",
	"s":  "ᛋ",
	"t":  "ᛏ",
	"u":  "ᚢ",
	"v":  "ᚠ",
	"w":  "ᚹ",
	"y":  "ᛃ",
	"z":  "ᛉ",
}

// ToRunes transliterates a generated wordform into its runic display form.
// Digraphs representing a single rune are replaced first, then single
// letters. Characters without a rune equivalent (connectors, digits) pass
// through unchanged.
func ToRunes(word string) string {
	out := strings.ToLower(word)
	for _, dg := range runeDigraphs {
		out = strings.ReplaceAll(out, dg, runeMap[dg])
	}
	var b strings.Builder
	b.Grow(len(out) * 3)
	for _, r := range out {
		if r >= 'a' && r <= 'z' {
			b.WriteString(runeMap[string(r)])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
