package extractor

import "strings"

// monthNames is the recognized vocabulary, in month order. Three letters
// is the minimum distinguishing prefix length in this set, so any prefix
// of at least three letters identifies at most one month.
var monthNames = []string{
	"january",
	"february",
	"march",
	"april",
	"may",
	"june",
	"july",
	"august",
	"september",
	"october",
	"november",
	"december",
}

const minMonthPrefix = 3

// monthFromPrefix maps a lower-case word to its month number, or 0 when
// the word is not a month name or abbreviation. The word must be a prefix
// of the full name ("sep", "sept", "september"), at least three letters
// long ("se" is ambiguous noise, "octopus" is not October).
func monthFromPrefix(word string) int {
	if len(word) < minMonthPrefix {
		return 0
	}
	for i, name := range monthNames {
		if strings.HasPrefix(name, word) {
			return i + 1
		}
	}
	return 0
}
