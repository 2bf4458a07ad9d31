// Package extractor pulls partial date information out of unstructured
// free text. Extraction never fails: text that yields nothing produces a
// date with every field absent. Fields are matched by an ordered chain of
// independent matchers, so a fragment carrying only one recognizable field
// still degrades gracefully to a one-field date.
package extractor

import (
	"regexp"
	"strconv"

	"flexdate/internal/date"
)

// DefaultCenturyPivot decides the century of a 1-2 digit year inside a
// fully numeric date pattern: values above the pivot map to the 1900s,
// values at or below map to the 2000s. Bare 2-digit numbers outside such a
// pattern never get a century invented for them.
const DefaultCenturyPivot = 30

// Extractor extracts partial dates from text. It is stateless beyond its
// options and safe for concurrent use.
type Extractor struct {
	centuryPivot int
}

// New creates an extractor with the default century pivot.
func New() *Extractor {
	return NewWithPivot(DefaultCenturyPivot)
}

// NewWithPivot creates an extractor using the given century pivot for
// 2-digit years in numeric date patterns.
func NewWithPivot(pivot int) *Extractor {
	return &Extractor{centuryPivot: pivot}
}

var defaultExtractor = New()

// Extract parses text with the default extractor.
func Extract(text string) date.PartialDate {
	return defaultExtractor.Extract(text)
}

// Extract runs the matcher chain over the text. A fully numeric delimited
// triple is matched first and takes priority over free-text scanning; the
// remaining matchers each fill only a field still absent, in order: month
// name, 4-digit year, ordinal day, bare day, bare month next to the day.
func (e *Extractor) Extract(text string) date.PartialDate {
	normalized := normalize(text)

	if d, ok := e.numericTriple(normalized); ok {
		return d
	}

	toks := tokenize(normalized)
	var day, month, year *int

	// Month name or distinguishing prefix.
	for i := range toks {
		if toks[i].number {
			continue
		}
		if m := monthFromPrefix(toks[i].word); m != 0 {
			month = date.Ptr(m)
			toks[i].used = true
			break
		}
	}

	// A free-standing 4-digit number is a year.
	for i := range toks {
		if toks[i].number && !toks[i].used && toks[i].digits == 4 {
			year = date.Ptr(toks[i].num)
			toks[i].used = true
			break
		}
	}

	// An ordinal like "21st" is a day regardless of position.
	dayIdx := -1
	for i := range toks {
		t := toks[i]
		if t.number && !t.used && t.ordinal && t.num >= date.MinDay && t.num <= date.MaxDay {
			day = date.Ptr(t.num)
			toks[i].used = true
			dayIdx = i
			break
		}
	}

	// Otherwise the first unconsumed short number in day range.
	if day == nil {
		for i := range toks {
			t := toks[i]
			if t.number && !t.used && t.digits <= 2 && t.num >= date.MinDay && t.num <= date.MaxDay {
				day = date.Ptr(t.num)
				toks[i].used = true
				dayIdx = i
				break
			}
		}
	}

	// A bare numeric month is only trusted next to the day token.
	if month == nil && dayIdx >= 0 {
		for _, i := range []int{dayIdx - 1, dayIdx + 1} {
			if i < 0 || i >= len(toks) {
				continue
			}
			t := toks[i]
			if t.number && !t.used && t.digits <= 2 && t.num >= date.MinMonth && t.num <= date.MaxMonth {
				month = date.Ptr(t.num)
				toks[i].used = true
				break
			}
		}
	}

	d, err := date.New(day, month, year)
	if err != nil {
		// Matchers already range-check, but a pathological year outside
		// the sanity bound still degrades to an empty date.
		return date.PartialDate{}
	}
	return d
}

// numericTriple matches a fully numeric delimited date such as 21/9/1900,
// 1900-9-21 or 21.09.00. Field order is day-month-year unless the first
// group exceeds 31, which forces year-first. An out-of-range group is left
// absent rather than guessed at.
var triplePattern = regexp.MustCompile(`\b([0-9]{1,4})[/.-]([0-9]{1,2})[/.-]([0-9]{1,4})\b`)

func (e *Extractor) numericTriple(text string) (date.PartialDate, bool) {
	m := triplePattern.FindStringSubmatch(text)
	if m == nil {
		return date.PartialDate{}, false
	}

	first, _ := strconv.Atoi(m[1])

	var day, month, year *int
	if first > date.MaxDay {
		year = e.yearSlot(m[1])
		month = monthSlot(m[2])
		day = daySlot(m[3])
	} else {
		day = daySlot(m[1])
		month = monthSlot(m[2])
		year = e.yearSlot(m[3])
	}

	d, err := date.New(day, month, year)
	if err != nil {
		return date.PartialDate{}, true
	}
	return d, true
}

// yearSlot interprets a numeric group sitting in the year position. One
// and two digit values get the century pivot applied; longer values are
// taken literally.
func (e *Extractor) yearSlot(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	if len(s) <= 2 {
		if v > e.centuryPivot {
			v += 1900
		} else {
			v += 2000
		}
	}
	return &v
}

func monthSlot(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil || v < date.MinMonth || v > date.MaxMonth {
		return nil
	}
	return &v
}

func daySlot(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil || v < date.MinDay || v > date.MaxDay {
		return nil
	}
	return &v
}
