package submit_draft

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/GCC-TeeSheetService/internal/domain"
	draftRepo "github.com/m04kA/GCC-TeeSheetService/internal/infra/storage/draft"
	"github.com/m04kA/GCC-TeeSheetService/internal/integrations/clubservice"
)

// UseCase use case отправки черновика: построчное создание бронирований
type UseCase struct {
	draftRepo  DraftRepository
	clubClient ClubServiceClient
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(draftRepo DraftRepository, clubClient ClubServiceClient, logger Logger) *UseCase {
	return &UseCase{
		draftRepo:  draftRepo,
		clubClient: clubClient,
		logger:     logger,
	}
}

// Execute выполняет use case отправки черновика.
//
// Каждая строка отправляется отдельным запросом к бэкенду клуба: отказ
// одной строки не мешает остальным и не откатывает уже созданные
// бронирования. Черновик закрывается в любом исходе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitDraft: draft=%d", req.DraftID)

	// 1. Загружаем черновик и проверяем, что он открыт
	draft, err := uc.draftRepo.GetDraft(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("SubmitDraft: draft=%d not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("SubmitDraft: failed to get draft=%d: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}
	if !draft.IsOpen() {
		uc.logger.Warn("SubmitDraft: draft=%d is already closed", req.DraftID)
		return nil, ErrDraftClosed
	}

	// 2. Загружаем строки игроков
	rows, err := uc.draftRepo.GetRows(ctx, req.DraftID)
	if err != nil {
		uc.logger.Error("SubmitDraft: failed to get rows for draft=%d: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to get rows: %v", ErrInternal, err)
	}
	if len(rows) == 0 {
		uc.logger.Warn("SubmitDraft: draft=%d has no rows", req.DraftID)
		return nil, ErrEmptyDraft
	}

	// 3. Создаем бронирования построчно
	created := 0
	var failures []RowFailure
	for _, row := range rows {
		if strings.TrimSpace(row.Name) == "" {
			failures = append(failures, RowFailure{
				RowID:    row.ID,
				Position: row.Position,
				Reason:   "player name is required",
			})
			continue
		}

		booking, err := uc.clubClient.CreateBooking(ctx, buildBookingRequest(draft, row))
		if err != nil {
			uc.logger.Warn("SubmitDraft: row=%d (%s) rejected: %v", row.ID, row.Name, err)
			failures = append(failures, RowFailure{
				RowID:    row.ID,
				Position: row.Position,
				Name:     row.Name,
				Reason:   failureReason(err),
			})
			continue
		}

		uc.logger.Info("SubmitDraft: row=%d booked as booking=%d", row.ID, booking.ID)
		created++
	}

	// 4. Закрываем черновик независимо от исхода: созданные бронирования
	// уже существуют на бэкенде клуба, повторная отправка их задвоит
	if err := uc.draftRepo.CloseDraft(ctx, req.DraftID, created); err != nil {
		uc.logger.Error("SubmitDraft: failed to close draft=%d: %v", req.DraftID, err)
	}

	uc.logger.Info("SubmitDraft: draft=%d done, created=%d, failed=%d", req.DraftID, created, len(failures))

	return &Response{
		DraftID:  req.DraftID,
		Created:  created,
		Failed:   len(failures),
		Failures: failures,
		Summary:  buildFailureSummary(failures),
	}, nil
}

// buildBookingRequest собирает запрос бронирования из строки черновика.
// Тариф: ручной выбор приоритетнее автоподбора; без тарифа бэкенд клуба
// подберёт цену сам. Возраст передается только для пенсионного тарифа
func buildBookingRequest(draft *domain.BookingDraft, row *domain.DraftRow) clubservice.CreateBookingRequest {
	req := clubservice.CreateBookingRequest{
		TeeTimeID:      draft.TeeTimeID,
		PlayerName:     row.Name,
		PlayerEmail:    row.Email,
		HandicapNumber: row.HandicapNumber,
		PlayerType:     string(row.PlayerType),
		Holes:          draft.Holes,
		Prepaid:        row.Prepaid,
		Cart:           row.CartRequested,
		PushCart:       row.PushCart,
		Caddy:          row.Caddy,
		MemberID:       row.MemberID,
	}

	if row.SelectedFeeID != nil {
		req.FeeCategoryID = row.SelectedFeeID
	} else if row.AutoFeeID != nil {
		req.FeeCategoryID = row.AutoFeeID
	}

	if row.Senior {
		req.Age = row.Age
	}

	return req
}

// failureReason извлекает причину отказа без служебных префиксов обёрток
func failureReason(err error) string {
	if errors.Is(err, clubservice.ErrBookingRejected) {
		msg := err.Error()
		if idx := strings.Index(msg, ": "); idx >= 0 {
			return msg[idx+2:]
		}
		return msg
	}
	return err.Error()
}
