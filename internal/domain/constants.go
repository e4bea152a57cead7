package domain

import "github.com/m04kA/GCC-TeeSheetService/pkg/types"

// Default tee sheet parameters
const (
	DefaultIntervalMinutes = 10
	DefaultCapacity        = 4

	Holes18 = 18
	Holes9  = 9
)

// DefaultTees starting tees used when generating a day
var DefaultTees = []string{"1", "10"}

// Default generation windows
const (
	DayStart      types.TimeString = "06:30"
	DayEnd        types.TimeString = "16:30"
	NineHoleStart types.TimeString = "15:00"
	NineHoleEnd   types.TimeString = "16:30"
)

// Business validation constants (mirror the club backend's generate limits)
const (
	MinIntervalMinutes = 1
	MaxIntervalMinutes = 60
	MinCapacity        = 1
	MaxCapacity        = 6
)

// MaxReportedFailures ограничивает сводку отказов для оператора:
// перечисляются первые N причин плюс счётчик остальных
const MaxReportedFailures = 3

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// NonOccupyingStatuses статусы бронирований, не занимающих слот на ти-листе
var NonOccupyingStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}
