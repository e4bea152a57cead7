package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	cases := []struct {
		input   string
		want    TimeString
		wantErr bool
	}{
		{"06:30", "06:30", false},
		{"00:00", "00:00", false},
		{"23:59", "23:59", false},
		{"24:00", "", true},
		{"6:30", "", true},
		{"0630", "", true},
		{"", "", true},
	}

	for _, c := range cases {
		got, err := NewTimeStringFromString(c.input)
		if c.wantErr {
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", c.input)
			continue
		}
		require.NoError(t, err, "input %q", c.input)
		assert.Equal(t, c.want, got)
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 6, 14, 9, 5, 42, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestMinutes(t *testing.T) {
	m, err := TimeString("06:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 390, m)

	_, err = TimeString("garbage").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	// Однозначный час не проходит: контракт строго "HH:MM"
	_, err = TimeString("6:30").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestValueRejectsLaxFormat(t *testing.T) {
	v, err := TimeString("06:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "06:30", v)

	_, err = TimeString("6:30").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestAddMinutes(t *testing.T) {
	got, err := TimeString("15:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("16:30"), got)

	_, err = TimeString("23:50").AddMinutes(20)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestIsBeforeIsAfter(t *testing.T) {
	assert.True(t, TimeString("06:30").IsBefore("16:30"))
	assert.False(t, TimeString("16:30").IsBefore("06:30"))
	assert.True(t, TimeString("16:30").IsAfter("15:00"))
	assert.False(t, TimeString("15:00").IsAfter("15:00"))
}

func TestScan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("10:20"))
	assert.Equal(t, TimeString("10:20"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 6, 14, 7, 40, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("07:40"), ts)

	assert.Error(t, ts.Scan(42))
}
