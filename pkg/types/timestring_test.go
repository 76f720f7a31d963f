package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30am")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 7, 14, 5, 0, 0, time.UTC))
	assert.Equal(t, "14:05", ts.String())
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(570)
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrBeyondDayBoundary)

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrBeyondDayBoundary)
}

func TestIsBeforeIsAfter(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.False(t, TimeString("10:00").IsBefore("09:30"))

	assert.True(t, TimeString("10:00").IsAfter("09:30"))
	assert.False(t, TimeString("09:30").IsAfter("09:30"))

	// Некорректные значения несравнимы
	assert.False(t, TimeString("bogus").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsAfter("bogus"))
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "10:15", ts.String())

	// Выход за границу суток
	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrBeyondDayBoundary)
}

func TestMinutesOfDay(t *testing.T) {
	minutes, err := TimeString("09:30").MinutesOfDay()
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)

	_, err = TimeString("").MinutesOfDay()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
