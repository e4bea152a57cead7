package get_tee_sheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildRangeDay(t *testing.T) {
	r := BuildRange(time.Date(2024, 3, 14, 13, 45, 12, 0, time.UTC), PeriodDay)
	require.NotNil(t, r)

	// Время внутри опорной даты отбрасывается
	assert.Equal(t, date(2024, 3, 14), r.Start)
	assert.Equal(t, date(2024, 3, 15), r.End)
}

func TestBuildRangeWeek(t *testing.T) {
	cases := []struct {
		name      string
		input     time.Time
		wantStart time.Time
	}{
		{"thursday", date(2024, 3, 14), date(2024, 3, 11)},
		{"monday", date(2024, 3, 11), date(2024, 3, 11)},
		{"sunday", date(2024, 3, 17), date(2024, 3, 11)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := BuildRange(c.input, PeriodWeek)
			require.NotNil(t, r)
			assert.Equal(t, c.wantStart, r.Start)
			assert.Equal(t, c.wantStart.AddDate(0, 0, 7), r.End)
		})
	}
}

func TestBuildRangeMonth(t *testing.T) {
	r := BuildRange(date(2024, 3, 14), PeriodMonth)
	require.NotNil(t, r)
	assert.Equal(t, date(2024, 3, 1), r.Start)
	assert.Equal(t, date(2024, 4, 1), r.End)

	// Декабрь переходит в январь следующего года
	r = BuildRange(date(2024, 12, 31), PeriodMonth)
	require.NotNil(t, r)
	assert.Equal(t, date(2024, 12, 1), r.Start)
	assert.Equal(t, date(2025, 1, 1), r.End)
}

func TestBuildRangeUnknownPeriod(t *testing.T) {
	assert.Nil(t, BuildRange(date(2024, 3, 14), "year"))
	assert.Nil(t, BuildRange(date(2024, 3, 14), ""))
}
