package extractor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flexdate/internal/date"
)

func mustDate(t *testing.T, day, month, year *int) date.PartialDate {
	t.Helper()
	d, err := date.New(day, month, year)
	require.NoError(t, err)
	return d
}

func TestExtract_OrdinalDayAndMonthName(t *testing.T) {
	got := Extract("Do you remember the 21st night of sep?")
	want := mustDate(t, date.Ptr(21), date.Ptr(9), nil)
	assert.True(t, got.Equal(want), "got %+v", got)
}

func TestExtract_FieldPresenceCombinations(t *testing.T) {
	cases := []struct {
		name             string
		text             string
		day, month, year *int
	}{
		{"day only", "the 21st", date.Ptr(21), nil, nil},
		{"month only", "sometime in September", nil, date.Ptr(9), nil},
		{"year only", "born in 1984", nil, nil, date.Ptr(1984)},
		{"day and month", "21 Octo", date.Ptr(21), date.Ptr(10), nil},
		{"day and year", "the 21st of 1984", date.Ptr(21), nil, date.Ptr(1984)},
		{"month and year", "September 1984", nil, date.Ptr(9), date.Ptr(1984)},
		{"all three", "22 September 2024", date.Ptr(22), date.Ptr(9), date.Ptr(2024)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Extract(tc.text)
			want := mustDate(t, tc.day, tc.month, tc.year)
			assert.True(t, got.Equal(want), "extract(%q) = %+v", tc.text, got)
		})
	}
}

func ordinalSuffix(d int) string {
	switch {
	case d%100 >= 11 && d%100 <= 13:
		return "th"
	case d%10 == 1:
		return "st"
	case d%10 == 2:
		return "nd"
	case d%10 == 3:
		return "rd"
	default:
		return "th"
	}
}

func TestExtract_OrdinalDayWithEveryMonthName(t *testing.T) {
	names := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	days := []int{1, 2, 3, 4, 11, 12, 13, 21, 22, 23, 30, 31}
	for m, name := range names {
		for _, d := range days {
			text := fmt.Sprintf("the %d%s of %s", d, ordinalSuffix(d), name)
			got := Extract(text)
			want := mustDate(t, date.Ptr(d), date.Ptr(m+1), nil)
			assert.True(t, got.Equal(want), "extract(%q) = %+v", text, got)
		}
	}
}

func TestExtract_GarbageYieldsEmptyDate(t *testing.T) {
	for _, text := range []string{"", "hello world", "no dates here!", "///---"} {
		got := Extract(text)
		assert.True(t, got.IsEmpty(), "extract(%q) should be empty, got %+v", text, got)
	}
}

func TestExtract_OrdinalSuffixes(t *testing.T) {
	cases := map[string]int{
		"the 1st":  1,
		"the 2nd":  2,
		"the 3rd":  3,
		"the 4th":  4,
		"the 22nd": 22,
		"the 31st": 31,
	}
	for text, want := range cases {
		got := Extract(text)
		d, ok := got.Day()
		require.True(t, ok, "extract(%q) should find a day", text)
		assert.Equal(t, want, d)
	}
}

func TestExtract_DayRangeEnforced(t *testing.T) {
	// A number outside [1,31] in a day position is not a day.
	got := Extract("the 40th of September")
	want := mustDate(t, nil, date.Ptr(9), nil)
	assert.True(t, got.Equal(want), "got %+v", got)

	got = Extract("45 September")
	assert.True(t, got.Equal(want), "got %+v", got)
}

func TestExtract_MonthPrefixes(t *testing.T) {
	cases := map[string]int{
		"jan":       1,
		"JANUARY":   1,
		"feb":       2,
		"mar":       3,
		"MAY":       5,
		"jun":       6,
		"jul":       7,
		"sep":       9,
		"Sept":      9,
		"september": 9,
		"Octo":      10,
		"dec":       12,
	}
	for word, want := range cases {
		got := Extract(word)
		m, ok := got.Month()
		require.True(t, ok, "extract(%q) should find a month", word)
		assert.Equal(t, want, m)
	}

	// Too short or not a prefix: no month.
	for _, word := range []string{"ju", "ma", "se", "octopus", "janitor"} {
		got := Extract(word)
		_, ok := got.Month()
		assert.False(t, ok, "extract(%q) should not find a month", word)
	}
}

func TestExtract_DiacriticsFolded(t *testing.T) {
	got := Extract("21 Séptember")
	want := mustDate(t, date.Ptr(21), date.Ptr(9), nil)
	assert.True(t, got.Equal(want), "got %+v", got)
}

func TestExtract_BareNumericMonthNeedsAdjacentDay(t *testing.T) {
	// Next to the day token, a short number in [1,12] is a month.
	got := Extract("21 9")
	want := mustDate(t, date.Ptr(21), date.Ptr(9), nil)
	assert.True(t, got.Equal(want), "got %+v", got)

	// Separated from the day token, it is not trusted.
	got = Extract("21st place after 9 laps")
	d, ok := got.Day()
	require.True(t, ok)
	assert.Equal(t, 21, d)
	_, ok = got.Month()
	assert.False(t, ok, "non-adjacent bare number must not become a month")
}

func TestExtract_NoCenturyForBareTwoDigitNumbers(t *testing.T) {
	// "99" alone is ambiguous: too big for a day, not a 4-digit year.
	got := Extract("99")
	assert.True(t, got.IsEmpty(), "got %+v", got)
}

func TestExtract_NumericTriples(t *testing.T) {
	cases := []struct {
		text             string
		day, month, year *int
	}{
		{"21/9/1900", date.Ptr(21), date.Ptr(9), date.Ptr(1900)},
		{"21-9-1900", date.Ptr(21), date.Ptr(9), date.Ptr(1900)},
		{"21.9.1900", date.Ptr(21), date.Ptr(9), date.Ptr(1900)},
		// First group over 31 forces year-first order.
		{"1900-9-21", date.Ptr(21), date.Ptr(9), date.Ptr(1900)},
		// Century pivot for short year slots: above 30 is prior century.
		{"21/9/99", date.Ptr(21), date.Ptr(9), date.Ptr(1999)},
		{"21/9/24", date.Ptr(21), date.Ptr(9), date.Ptr(2024)},
		{"21/9/00", date.Ptr(21), date.Ptr(9), date.Ptr(2000)},
		// Three-digit years are literal, no century invented.
		{"3/4/987", date.Ptr(3), date.Ptr(4), date.Ptr(987)},
		// Ambiguous month slot is left absent, not guessed.
		{"21/13/1900", date.Ptr(21), nil, date.Ptr(1900)},
		{"1900-13-21", date.Ptr(21), nil, date.Ptr(1900)},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got := Extract(tc.text)
			want := mustDate(t, tc.day, tc.month, tc.year)
			assert.True(t, got.Equal(want), "extract(%q) = %+v", tc.text, got)
		})
	}
}

func TestExtract_TriplePriorityOverFreeText(t *testing.T) {
	// The numeric pattern wins even when a month name is also present.
	got := Extract("received December 21/9/1900")
	want := mustDate(t, date.Ptr(21), date.Ptr(9), date.Ptr(1900))
	assert.True(t, got.Equal(want), "got %+v", got)
}

func TestExtract_ConfigurablePivot(t *testing.T) {
	ext := NewWithPivot(50)
	got := ext.Extract("1/1/40")
	y, ok := got.Year()
	require.True(t, ok)
	assert.Equal(t, 2040, y)

	got = ext.Extract("1/1/60")
	y, ok = got.Year()
	require.True(t, ok)
	assert.Equal(t, 1960, y)
}
