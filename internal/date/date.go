package date

import "fmt"

// Field bounds enforced at construction. Years are signed; BC is negative.
const (
	MinDay   = 1
	MaxDay   = 31
	MinMonth = 1
	MaxMonth = 12
	MinYear  = -100_000
	MaxYear  = 100_000
)

// InvalidFieldError reports a field value outside its allowed range.
type InvalidFieldError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("date: %s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
}

type optInt struct {
	v   int
	set bool
}

// PartialDate is a date where day, month and year are each independently
// either present or absent. Absence is a first-class state, never a
// sentinel value. The zero value has all fields absent.
type PartialDate struct {
	day   optInt
	month optInt
	year  optInt
}

// New builds a PartialDate from optional field values. A nil pointer means
// the field is absent. This is the single validation boundary: day must be
// in [1,31], month in [1,12], year in [-100000,100000]. Downstream
// consumers trust values validated here.
func New(day, month, year *int) (PartialDate, error) {
	var d PartialDate
	if day != nil {
		if *day < MinDay || *day > MaxDay {
			return PartialDate{}, &InvalidFieldError{Field: "day", Value: *day, Min: MinDay, Max: MaxDay}
		}
		d.day = optInt{v: *day, set: true}
	}
	if month != nil {
		if *month < MinMonth || *month > MaxMonth {
			return PartialDate{}, &InvalidFieldError{Field: "month", Value: *month, Min: MinMonth, Max: MaxMonth}
		}
		d.month = optInt{v: *month, set: true}
	}
	if year != nil {
		if *year < MinYear || *year > MaxYear {
			return PartialDate{}, &InvalidFieldError{Field: "year", Value: *year, Min: MinYear, Max: MaxYear}
		}
		d.year = optInt{v: *year, set: true}
	}
	return d, nil
}

// Ptr is a convenience for building the optional arguments of New.
func Ptr(v int) *int {
	return &v
}

// Day returns the day and whether it is present.
func (d PartialDate) Day() (int, bool) {
	return d.day.v, d.day.set
}

// Month returns the month and whether it is present.
func (d PartialDate) Month() (int, bool) {
	return d.month.v, d.month.set
}

// Year returns the year and whether it is present.
func (d PartialDate) Year() (int, bool) {
	return d.year.v, d.year.set
}

// IsEmpty reports whether all three fields are absent.
func (d PartialDate) IsEmpty() bool {
	return !d.day.set && !d.month.set && !d.year.set
}

// Equal compares field-wise. Absent equals absent; absent never equals a
// present value.
func (d PartialDate) Equal(o PartialDate) bool {
	return d.day == o.day && d.month == o.month && d.year == o.year
}
