package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEpochDayFromTime(t *testing.T) {
	assert.Equal(t, EpochDay(0), EpochDayFromTime(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, EpochDay(0), EpochDayFromTime(time.Date(1970, 1, 1, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, EpochDay(19723), EpochDayFromTime(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
}

func TestEpochDayFromTimeNormalizesZone(t *testing.T) {
	zone := time.FixedZone("UTC+10", 10*3600)
	// 2024-01-02 08:00 +10:00 is still 2024-01-01 in UTC
	assert.Equal(t, EpochDay(19723), EpochDayFromTime(time.Date(2024, 1, 2, 8, 0, 0, 0, zone)))
}

func TestEpochDayString(t *testing.T) {
	assert.Equal(t, "1970-01-01", EpochDay(0).String())
	assert.Equal(t, "2024-01-01", EpochDay(19723).String())
}

func TestEpochDayTimeRoundTrip(t *testing.T) {
	d := EpochDay(19723)
	assert.Equal(t, d, EpochDayFromTime(d.Time()))
}
