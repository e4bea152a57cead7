package submit_draft

import (
	"fmt"
	"strings"

	"github.com/m04kA/GCC-TeeSheetService/internal/domain"
)

// Request модель запроса на отправку черновика
type Request struct {
	DraftID int64
}

// Response итог отправки черновика: каждая строка отправляется независимо,
// отказ одной не откатывает уже созданные бронирования
type Response struct {
	DraftID  int64
	Created  int          // Количество созданных бронирований
	Failed   int          // Количество строк с отказом
	Failures []RowFailure // Отказы в порядке строк формы
	Summary  string       // Человекочитаемая сводка отказов, пустая при полном успехе
}

// RowFailure отказ отправки одной строки
type RowFailure struct {
	RowID    int64
	Position int
	Name     string
	Reason   string
}

// buildFailureSummary собирает сводку для оператора: первые
// MaxReportedFailures причин и счётчик остальных
func buildFailureSummary(failures []RowFailure) string {
	if len(failures) == 0 {
		return ""
	}

	limit := domain.MaxReportedFailures
	if len(failures) < limit {
		limit = len(failures)
	}

	parts := make([]string, 0, limit)
	for _, f := range failures[:limit] {
		name := f.Name
		if name == "" {
			name = fmt.Sprintf("row %d", f.Position+1)
		}
		parts = append(parts, fmt.Sprintf("%s: %s", name, f.Reason))
	}

	summary := strings.Join(parts, "; ")
	if rest := len(failures) - limit; rest > 0 {
		summary = fmt.Sprintf("%s; and %d more", summary, rest)
	}
	return summary
}
