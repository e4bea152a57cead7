package get_tee_sheet

import (
	"context"
	"time"

	"github.com/m04kA/GCC-TeeSheetService/internal/integrations/clubservice"
)

// TeeSheetClient интерфейс клиента бэкенда клуба
type TeeSheetClient interface {
	GetTeeTimeRange(ctx context.Context, start, end time.Time) ([]clubservice.TeeTimeRecord, error)
	GenerateTeeSheet(ctx context.Context, req clubservice.GenerateRequest) (int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
