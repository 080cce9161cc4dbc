package model

import "time"

// EpochDay is a calendar date expressed as the number of days since
// 1970-01-01. All dates cross the API boundary in this form so that
// serialization stays timezone-neutral.
type EpochDay int

const secondsPerDay = 86400

// EpochDayFromTime truncates a time to its UTC calendar date
func EpochDayFromTime(t time.Time) EpochDay {
	return EpochDay(t.UTC().Unix() / secondsPerDay)
}

// Time returns midnight UTC of the date
func (d EpochDay) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

// String formats the date as YYYY-MM-DD
func (d EpochDay) String() string {
	return d.Time().Format(time.DateOnly)
}
