package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// token is a single word or number pulled out of the normalized text.
// Punctuation never produces tokens, so "sep?" tokenizes like "sep".
type token struct {
	word    string
	num     int
	digits  int
	ordinal bool
	number  bool
	used    bool
}

var tokenPattern = regexp.MustCompile(`([0-9]+)(?:(st|nd|rd|th)\b)?|([a-z]+)`)

func tokenize(text string) []token {
	var toks []token
	for _, m := range tokenPattern.FindAllStringSubmatch(text, -1) {
		if m[3] != "" {
			toks = append(toks, token{word: m[3]})
			continue
		}
		v, err := strconv.Atoi(m[1])
		if err != nil {
			// Digit run too long for an int; nothing date-like anyway.
			continue
		}
		toks = append(toks, token{
			num:     v,
			digits:  len(m[1]),
			ordinal: m[2] != "",
			number:  true,
		})
	}
	return toks
}

// normalize strips diacritics and lower-cases, so month names typed with
// stray accents still hit the month table. A fresh transform chain is
// built per call to keep Extract safe for concurrent use.
func normalize(text string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(chain, text)
	if err == nil {
		text = folded
	}
	return strings.ToLower(text)
}
