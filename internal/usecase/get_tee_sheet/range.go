package get_tee_sheet

import "time"

// DateRange полуоткрытый интервал дат [Start, End)
type DateRange struct {
	Start time.Time
	End   time.Time
}

// BuildRange строит интервал выборки вокруг опорной даты.
// Возвращает nil при неизвестном периоде
func BuildRange(date time.Time, period string) *DateRange {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	switch period {
	case PeriodDay:
		return &DateRange{Start: day, End: day.AddDate(0, 0, 1)}
	case PeriodWeek:
		// Неделя начинается с понедельника
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return &DateRange{Start: start, End: start.AddDate(0, 0, 7)}
	case PeriodMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return &DateRange{Start: start, End: start.AddDate(0, 1, 0)}
	default:
		return nil
	}
}
