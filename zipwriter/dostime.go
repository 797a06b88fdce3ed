package zipwriter

import "time"

// dosDateTime converts t into the packed MS-DOS date/time fields the ZIP format
// uses, 2-second resolution, years clamped to the [1980, 2107] range the format can
// represent.
func dosDateTime(t time.Time) (dosTime, dosDate uint16) {
	year := t.Year()
	if year < 1980 {
		year = 1980
	}
	if year > 2107 {
		year = 2107
	}
	dosDate = uint16((year-1980)<<9 | int(t.Month())<<5 | t.Day())
	dosTime = uint16(t.Hour()<<11 | t.Minute()<<5 | t.Second()/2)
	return
}
