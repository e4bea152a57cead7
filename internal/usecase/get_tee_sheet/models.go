package get_tee_sheet

import (
	"time"

	"github.com/m04kA/GCC-TeeSheetService/internal/domain"
)

// Периоды выборки расписания
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// Request модель запроса расписания стартов
type Request struct {
	Date   time.Time // Опорная дата внутри запрашиваемого периода
	Period string    // Период выборки: day, week или month
	Holes  int       // Режим отображения: 9 или 18 лунок
}

// Response модель ответа с объединённым расписанием стартов
type Response struct {
	StartDate time.Time // Начало периода (включительно)
	EndDate   time.Time // Конец периода (исключительно)
	Generated int       // Количество слотов, созданных автогенерацией (0, если не запускалась)
	Rows      []Row     // Строки расписания, упорядоченные по (времени, номеру ти)
}

// Row строка расписания: один стартовый слот со всеми его бронированиями
type Row struct {
	TeeTimeID    int64     // ID слота на бэкенде клуба
	TeeTime      time.Time // Время старта
	Tee          string    // Номер стартового ти
	Capacity     int       // Вместимость слота
	OverCapacity bool      // Признак переполнения (бронирований больше вместимости)
	Slots        []Slot    // Ячейки слота: занятые, свободные и закрытые
}

// Slot ячейка стартового слота
type Slot struct {
	State   domain.SlotState       // booked, open или closed
	Booking *domain.BookingSummary // Заполнено только для занятых ячеек
}

func toRows(merged []*domain.MergedRow, now time.Time, intervalMinutes int) []Row {
	rows := make([]Row, 0, len(merged))
	for _, m := range merged {
		slots := m.Slots(now, intervalMinutes)
		viewSlots := make([]Slot, 0, len(slots))
		for _, s := range slots {
			viewSlots = append(viewSlots, Slot{State: s.State, Booking: s.Booking})
		}
		rows = append(rows, Row{
			TeeTimeID:    m.TeeTimeID,
			TeeTime:      m.TeeTime,
			Tee:          m.Tee,
			Capacity:     m.Capacity,
			OverCapacity: m.OverCapacity,
			Slots:        viewSlots,
		})
	}
	return rows
}
