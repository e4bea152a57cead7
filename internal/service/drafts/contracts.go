package drafts

import (
	"context"

	"github.com/m04kA/GCC-TeeSheetService/internal/domain"
	"github.com/m04kA/GCC-TeeSheetService/internal/integrations/clubservice"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	CreateDraft(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error)
	GetDraft(ctx context.Context, id int64) (*domain.BookingDraft, error)
	AddRow(ctx context.Context, row *domain.DraftRow) (*domain.DraftRow, error)
	UpdateRow(ctx context.Context, row *domain.DraftRow) error
	RemoveRow(ctx context.Context, draftID, rowID int64) error
	GetRow(ctx context.Context, draftID, rowID int64) (*domain.DraftRow, error)
	GetRows(ctx context.Context, draftID int64) ([]*domain.DraftRow, error)
	NextPosition(ctx context.Context, draftID int64) (int, error)
	IssueSuggestionSeq(ctx context.Context, draftID, rowID int64) (int64, error)
	ApplyFeeSuggestion(ctx context.Context, rowID, seq int64, feeID *int64, price *float64, description *string, unavailable bool) error
	ApplyCartSuggestion(ctx context.Context, rowID, seq int64, price *float64, description *string, unavailable bool) error
}

// ClubServiceClient интерфейс клиента бэкенда клуба
type ClubServiceClient interface {
	SuggestGolfFee(ctx context.Context, req clubservice.GolfFeeSuggestRequest) (*clubservice.FeeSuggestion, error)
	SuggestCartFee(ctx context.Context, req clubservice.CartFeeSuggestRequest) (*clubservice.FeeSuggestion, error)
	ListGolfFees(ctx context.Context) ([]clubservice.FeeCategoryRecord, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
