package get_tee_sheet

import (
	"sort"
	"strconv"
	"time"

	"github.com/m04kA/GCC-TeeSheetService/internal/domain"
	"github.com/m04kA/GCC-TeeSheetService/internal/integrations/clubservice"
)

// wireTimeLayout формат времени старта в ответах бэкенда клуба
const wireTimeLayout = "2006-01-02T15:04:05"

// nineHoleWindow границы вечернего окна девяти лунок в минутах от начала суток
type nineHoleWindow struct {
	startMin int
	endMin   int
}

// mergeRecords сводит сырые записи расписания в строки отображения.
//
// Записи с одинаковой парой (время с точностью до минуты, номер ти)
// склеиваются в одну строку: бэкенд клуба может вернуть дубликаты слота
// после повторной генерации дня. Вместимость строки берётся из первой
// записи группы, бронирования конкатенируются в порядке записей.
// Записи с нечитаемым временем отбрасываются с ошибкой в лог
func mergeRecords(records []clubservice.TeeTimeRecord, holes int, window nineHoleWindow, logger Logger) []*domain.MergedRow {
	type parsed struct {
		record  clubservice.TeeTimeRecord
		instant time.Time
	}

	items := make([]parsed, 0, len(records))
	for _, rec := range records {
		instant, err := time.Parse(wireTimeLayout, rec.TeeTime)
		if err != nil {
			logger.Error("mergeRecords: unparseable tee_time %q for record id=%d: %v", rec.TeeTime, rec.ID, err)
			continue
		}
		items = append(items, parsed{record: rec, instant: instant.Truncate(time.Minute)})
	}

	// Стабильная сортировка сохраняет исходный порядок записей внутри группы
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].instant.Equal(items[j].instant) {
			return items[i].instant.Before(items[j].instant)
		}
		return teeLess(items[i].record.Hole, items[j].record.Hole)
	})

	var rows []*domain.MergedRow
	for _, item := range items {
		last := lastRow(rows)
		if last != nil && last.TeeTime.Equal(item.instant) && last.Tee == item.record.Hole {
			appendBookings(last, item.record)
			continue
		}

		row := &domain.MergedRow{
			TeeTimeID: item.record.ID,
			TeeTime:   item.instant,
			Tee:       item.record.Hole,
			Capacity:  item.record.Capacity,
		}
		appendBookings(row, item.record)
		rows = append(rows, row)
	}

	for _, row := range rows {
		if len(row.Bookings) > row.Capacity {
			row.OverCapacity = true
			logger.Warn("mergeRecords: row tee_time=%s tee=%s holds %d bookings over capacity %d",
				row.TeeTime.Format(wireTimeLayout), row.Tee, len(row.Bookings), row.Capacity)
		}
	}

	if holes == domain.Holes9 {
		rows = filterNineHoleWindow(rows, window)
	}

	return rows
}

// appendBookings добавляет к строке только бронирования, занимающие слот
func appendBookings(row *domain.MergedRow, rec clubservice.TeeTimeRecord) {
	for _, b := range rec.Bookings {
		summary := domain.BookingSummary{
			ID:             b.ID,
			PlayerName:     b.PlayerName,
			PlayerEmail:    b.PlayerEmail,
			Status:         domain.BookingStatus(b.Status),
			Price:          b.Price,
			MemberID:       b.MemberID,
			HandicapNumber: b.HandicapNumber,
		}
		if summary.Occupies() {
			row.Bookings = append(row.Bookings, summary)
		}
	}
}

// filterNineHoleWindow оставляет только строки вечернего окна девяти лунок.
// Окно то же, что уходит в запрос генерации: строки сгенерированного дня
// не должны отсекаться собственным фильтром
func filterNineHoleWindow(rows []*domain.MergedRow, window nineHoleWindow) []*domain.MergedRow {
	filtered := rows[:0]
	for _, row := range rows {
		minute := row.TeeTime.Hour()*60 + row.TeeTime.Minute()
		if minute >= window.startMin && minute <= window.endMin {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// teeLess сравнивает номера ти численно, нечисловые метки идут после числовых
func teeLess(a, b string) bool {
	an, aerr := strconv.Atoi(a)
	bn, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		return an < bn
	case aerr == nil:
		return true
	case berr == nil:
		return false
	default:
		return a < b
	}
}

func lastRow(rows []*domain.MergedRow) *domain.MergedRow {
	if len(rows) == 0 {
		return nil
	}
	return rows[len(rows)-1]
}
