package hotelapi

import (
	"time"
)

// wireTimeLayout matches the upstream's millisecond ISO-8601 with a Z suffix.
const wireTimeLayout = "2006-01-02T15:04:05.000Z"

const dateOnlyLayout = "2006-01-02"

// FormatWireTime emits the wall-clock time of t in loc stamped as if it were
// UTC. The upstream interprets incoming instants this way; sending true UTC
// shifts stays by the zone offset and books the wrong day.
func FormatWireTime(t time.Time, loc *time.Location) string {
	local := t.In(loc)
	_, offset := local.Zone()
	return local.Add(time.Duration(offset) * time.Second).UTC().Format(wireTimeLayout)
}

// ParseWireTime reads an upstream instant back into the zone loc, undoing the
// FormatWireTime convention.
func ParseWireTime(s string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse(wireTimeLayout, s)
		if err != nil {
			return time.Time{}, err
		}
	}
	utc := t.UTC()
	wall := time.Date(utc.Year(), utc.Month(), utc.Day(), utc.Hour(), utc.Minute(), utc.Second(), utc.Nanosecond(), loc)
	return wall, nil
}

// FormatWireDate emits a date-only value (guest date of birth).
func FormatWireDate(t time.Time) string {
	return t.Format(dateOnlyLayout)
}
