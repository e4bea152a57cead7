package submit_draft

import (
	"context"

	"github.com/m04kA/GCC-TeeSheetService/internal/domain"
	"github.com/m04kA/GCC-TeeSheetService/internal/integrations/clubservice"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetDraft(ctx context.Context, id int64) (*domain.BookingDraft, error)
	GetRows(ctx context.Context, draftID int64) ([]*domain.DraftRow, error)
	CloseDraft(ctx context.Context, id int64, createdBookings int) error
}

// ClubServiceClient интерфейс клиента бэкенда клуба
type ClubServiceClient interface {
	CreateBooking(ctx context.Context, req clubservice.CreateBookingRequest) (*clubservice.BookingRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
