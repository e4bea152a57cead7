package get_tee_sheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCC-TeeSheetService/internal/domain"
	"github.com/m04kA/GCC-TeeSheetService/internal/integrations/clubservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func record(id int64, teeTime, tee string, capacity int, bookings ...clubservice.BookingRecord) clubservice.TeeTimeRecord {
	return clubservice.TeeTimeRecord{
		ID:       id,
		TeeTime:  teeTime,
		Hole:     tee,
		Capacity: capacity,
		Status:   "open",
		Bookings: bookings,
	}
}

func booking(id int64, name, status string) clubservice.BookingRecord {
	return clubservice.BookingRecord{ID: id, PlayerName: name, Status: status}
}

func defaultWindow() nineHoleWindow {
	startMin, _ := domain.NineHoleStart.Minutes()
	endMin, _ := domain.NineHoleEnd.Minutes()
	return nineHoleWindow{startMin: startMin, endMin: endMin}
}

func TestMergeRecordsGroupsDuplicates(t *testing.T) {
	records := []clubservice.TeeTimeRecord{
		record(1, "2024-03-14T10:00:00", "1", 4, booking(100, "Smith", "booked")),
		record(2, "2024-03-14T10:00:30", "1", 3, booking(101, "Jones", "booked"), booking(102, "Brown", "checked_in")),
	}

	rows := mergeRecords(records, domain.Holes18, defaultWindow(), nopLogger{})

	require.Len(t, rows, 1)
	row := rows[0]
	// ID и вместимость берутся из первой записи группы
	assert.Equal(t, int64(1), row.TeeTimeID)
	assert.Equal(t, 4, row.Capacity)
	// Бронирования конкатенируются в порядке записей
	require.Len(t, row.Bookings, 3)
	assert.Equal(t, "Smith", row.Bookings[0].PlayerName)
	assert.Equal(t, "Jones", row.Bookings[1].PlayerName)
	assert.Equal(t, "Brown", row.Bookings[2].PlayerName)
	assert.False(t, row.OverCapacity)
}

func TestMergeRecordsOrdering(t *testing.T) {
	records := []clubservice.TeeTimeRecord{
		record(3, "2024-03-14T10:10:00", "1", 4),
		record(2, "2024-03-14T10:00:00", "10", 4),
		record(1, "2024-03-14T10:00:00", "2", 4),
		record(4, "2024-03-14T10:00:00", "1", 4),
	}

	rows := mergeRecords(records, domain.Holes18, defaultWindow(), nopLogger{})

	require.Len(t, rows, 4)
	// Номера ти сравниваются численно: 1 < 2 < 10
	assert.Equal(t, "1", rows[0].Tee)
	assert.Equal(t, "2", rows[1].Tee)
	assert.Equal(t, "10", rows[2].Tee)
	assert.Equal(t, "1", rows[3].Tee)
	assert.True(t, rows[2].TeeTime.Before(rows[3].TeeTime))
}

func TestMergeRecordsDropsNonOccupying(t *testing.T) {
	records := []clubservice.TeeTimeRecord{
		record(1, "2024-03-14T10:00:00", "1", 4,
			booking(100, "Smith", "booked"),
			booking(101, "Gone", "cancelled"),
			booking(102, "Away", "no_show"),
			booking(103, "Done", "completed"),
		),
	}

	rows := mergeRecords(records, domain.Holes18, defaultWindow(), nopLogger{})

	require.Len(t, rows, 1)
	require.Len(t, rows[0].Bookings, 2)
	assert.Equal(t, "Smith", rows[0].Bookings[0].PlayerName)
	assert.Equal(t, "Done", rows[0].Bookings[1].PlayerName)
}

func TestMergeRecordsDropsUnparseableTime(t *testing.T) {
	records := []clubservice.TeeTimeRecord{
		record(1, "not-a-time", "1", 4, booking(100, "Smith", "booked")),
		record(2, "2024-03-14T10:00:00", "1", 4),
	}

	rows := mergeRecords(records, domain.Holes18, defaultWindow(), nopLogger{})

	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].TeeTimeID)
}

func TestMergeRecordsOverCapacity(t *testing.T) {
	records := []clubservice.TeeTimeRecord{
		record(1, "2024-03-14T10:00:00", "1", 2,
			booking(100, "A", "booked"), booking(101, "B", "booked"), booking(102, "C", "booked")),
	}

	rows := mergeRecords(records, domain.Holes18, defaultWindow(), nopLogger{})

	require.Len(t, rows, 1)
	assert.True(t, rows[0].OverCapacity)
	assert.Len(t, rows[0].Bookings, 3)
}

func TestMergeRecordsNineHoleWindow(t *testing.T) {
	records := []clubservice.TeeTimeRecord{
		record(1, "2024-03-14T10:00:00", "1", 4),
		record(2, "2024-03-14T14:50:00", "1", 4),
		record(3, "2024-03-14T15:00:00", "1", 4),
		record(4, "2024-03-14T16:30:00", "1", 4),
		record(5, "2024-03-14T16:40:00", "1", 4),
	}

	rows := mergeRecords(records, domain.Holes9, defaultWindow(), nopLogger{})

	require.Len(t, rows, 2)
	assert.Equal(t, int64(3), rows[0].TeeTimeID)
	assert.Equal(t, int64(4), rows[1].TeeTimeID)
}

func TestMergeRecordsIdempotent(t *testing.T) {
	records := []clubservice.TeeTimeRecord{
		record(1, "2024-03-14T10:00:00", "1", 4, booking(100, "Smith", "booked")),
		record(2, "2024-03-14T10:00:00", "10", 4),
	}

	first := mergeRecords(records, domain.Holes18, defaultWindow(), nopLogger{})
	second := mergeRecords(records, domain.Holes18, defaultWindow(), nopLogger{})

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].TeeTimeID, second[i].TeeTimeID)
		assert.Equal(t, first[i].Tee, second[i].Tee)
		assert.True(t, first[i].TeeTime.Equal(second[i].TeeTime))
		assert.Equal(t, len(first[i].Bookings), len(second[i].Bookings))
	}
}

func TestMergeRecordsTruncatesSeconds(t *testing.T) {
	rows := mergeRecords([]clubservice.TeeTimeRecord{
		record(1, "2024-03-14T10:00:45", "1", 4),
	}, domain.Holes18, defaultWindow(), nopLogger{})

	require.Len(t, rows, 1)
	assert.True(t, rows[0].TeeTime.Equal(time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)))
}
