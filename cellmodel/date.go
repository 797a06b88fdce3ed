package cellmodel

import (
	"strconv"
	"time"

	"github.com/turgutahmet/xlsxstream/xldate"
)

// Date is the Date(timestamp?, timezone) cell kind: stored as an absolute instant,
// rendered as an Excel serial number resolved in the given zone.
type Date struct {
	Value *time.Time
	Zone *time.Location
}

func NewDate(t time.Time, zone *time.Location) Date {
	if zone == nil {
		zone = time.Local
	}
	return Date{Value: &t, Zone: zone}
}

func NullDate(zone *time.Location) Date {
	if zone == nil {
		zone = time.Local
	}
	return Date{Zone: zone}
}

func (d Date) Render(Interner) Rendered {
	if d.Value == nil {
		return Rendered{}
	}
	serial := xldate.ToSerial(*d.Value, d.Zone)
	return Rendered{Value: strconv.FormatFloat(serial, 'g', -1, 64)}
}

func (d Date) NumberFormat() NumberFormat { return NumberFormat{Class: NumFmtDate} }
