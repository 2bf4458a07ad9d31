// Package render is the display collaborator for partial dates. Downstream
// tooling depends on the exact year-month-day ordering and the literal
// absence token, so the format here is a contract, not a convenience.
package render

import (
	"fmt"
	"strconv"

	"flexdate/internal/date"
)

// Absent is the literal token printed in place of a missing field.
const Absent = "None"

// Format renders a partial date as "<year>-<month>-<day>", with Absent
// standing in for each missing component, e.g. "None-9-21".
func Format(d date.PartialDate) string {
	year, yok := d.Year()
	month, mok := d.Month()
	day, dok := d.Day()
	return fmt.Sprintf("%s-%s-%s", part(year, yok), part(month, mok), part(day, dok))
}

func part(v int, ok bool) string {
	if !ok {
		return Absent
	}
	return strconv.Itoa(v)
}
