// Package xldate implements Excel's 1900-based date serial number system, including
// the historical 1900-leap-year bug the format preserves for compatibility.
//
// Grounded on other_examples/8a29c8b4_psmithuk-xlsx__xlsx.go.go's OADate, cross-checked
// against epoch definition: "whole days since 1899-12-30". Using plain
// calendar day differences from that epoch (no special-casing of 1900) reproduces the
// historical bug for every date from 1900-03-01 onward without any conditional logic,
// because the real (non-leap) February 1900 is one day shorter than Excel's fictitious
// one — the same epoch every mainstream implementation (openpyxl, xlrd, Apache POI)
// uses, and it is what the spec's own formula literally computes.
package xldate

import (
	"math"
	"time"
)

var epoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ToSerial converts an absolute instant, resolved in zone, to its Excel serial
// number: whole days since the epoch plus the fractional day within zone.
func ToSerial(t time.Time, zone *time.Location) float64 {
	if zone == nil {
		zone = time.Local
	}
	local := t.In(zone)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	days := dayStart.Sub(epoch).Hours() / 24
	fraction := (time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second +
		time.Duration(local.Nanosecond())).Seconds() / 86400
	return days + fraction
}

// FromSerial converts an Excel serial number back to an absolute instant in zone.
// Round-trips ToSerial to within the spec's one-second tolerance.
func FromSerial(serial float64, zone *time.Location) time.Time {
	if zone == nil {
		zone = time.Local
	}
	wholeDays := int(serial)
	fraction := serial - float64(wholeDays)
	day := epoch.AddDate(0, 0, wholeDays)
	// The fraction is wall-clock time within the day (as ToSerial computes it), so
	// it is rebuilt as wall-clock seconds rather than added as elapsed time.
	seconds := int(math.Round(fraction * 86400))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, seconds, 0, zone)
}
