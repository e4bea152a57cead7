package drafts

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/GCC-TeeSheetService/internal/domain"
	draftRepo "github.com/m04kA/GCC-TeeSheetService/internal/infra/storage/draft"
	"github.com/m04kA/GCC-TeeSheetService/internal/integrations/clubservice"
	"github.com/m04kA/GCC-TeeSheetService/internal/service/drafts/models"
)

// Service сервис черновиков бронирований
//
// Черновик - это открытая форма "забронировать слот" про-шопа: строки игроков,
// автоподбор тарифов, разбиение платы за кары и живой пересчёт итога.
// Итог никогда не хранится - он выводится из строк при каждом чтении,
// поэтому отображаемая сумма всегда согласована с последней мутацией
type Service struct {
	draftRepo  DraftRepository
	clubClient ClubServiceClient
	txManager  TransactionManager
	logger     Logger

	// Тарифная таблица кэшируется на время жизни одного черновика
	feeMu    sync.Mutex
	feeCache map[int64][]domain.FeeCategory
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(
	draftRepo DraftRepository,
	clubClient ClubServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		draftRepo:  draftRepo,
		clubClient: clubClient,
		txManager:  txManager,
		logger:     logger,
		feeCache:   make(map[int64][]domain.FeeCategory),
	}
}

// CreateDraft открывает новый черновик для свободного слота
func (s *Service) CreateDraft(ctx context.Context, req *models.CreateDraftRequest) (*models.DraftResponse, error) {
	s.logger.Info("CreateDraft: tee_time_id=%d, holes=%d", req.TeeTimeID, req.Holes)

	if req.TeeTimeID <= 0 {
		return nil, fmt.Errorf("%w: teeTimeId must be positive", ErrInvalidInput)
	}
	if req.TeeTime.IsZero() {
		return nil, fmt.Errorf("%w: teeTime is required", ErrInvalidInput)
	}
	if req.Holes != domain.Holes9 && req.Holes != domain.Holes18 {
		return nil, fmt.Errorf("%w: holes must be 9 or 18", ErrInvalidInput)
	}

	draft, err := s.draftRepo.CreateDraft(ctx, &domain.BookingDraft{
		TeeTimeID: req.TeeTimeID,
		TeeTime:   req.TeeTime,
		Holes:     req.Holes,
		Status:    domain.DraftOpen,
	})
	if err != nil {
		s.logger.Error("CreateDraft: failed to create draft: %v", err)
		return nil, fmt.Errorf("%w: failed to create draft: %v", ErrInternal, err)
	}

	// Тарифная таблица нужна для выпадающего списка ручного выбора;
	// недоступность справочника не блокирует открытие формы
	fees, err := s.feeCategories(ctx, draft.ID)
	if err != nil {
		s.logger.Warn("CreateDraft: fee categories unavailable for draft=%d: %v", draft.ID, err)
		fees = nil
	}

	s.logger.Info("CreateDraft: draft id=%d created for tee_time_id=%d", draft.ID, req.TeeTimeID)
	return models.FromDomainDraft(draft, nil, nil, fees), nil
}

// GetDraft возвращает черновик со строками и пересчитанным итогом
func (s *Service) GetDraft(ctx context.Context, draftID int64) (*models.DraftResponse, error) {
	draft, rows, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if !draft.IsOpen() {
		s.dropFeeCache(draftID)
	}

	fees, err := s.feeCategories(ctx, draftID)
	if err != nil {
		s.logger.Warn("GetDraft: fee categories unavailable for draft=%d: %v", draftID, err)
		fees = nil
	}

	return models.FromDomainDraft(draft, rows, ComputeCartSplits(rows), fees), nil
}

// AddRow добавляет строку игрока и запускает автоподбор цен для неё
func (s *Service) AddRow(ctx context.Context, draftID int64, input *models.RowInput) (*models.DraftResponse, error) {
	s.logger.Info("AddRow: draft=%d, player_type=%s, cart=%t", draftID, input.PlayerType, input.CartRequested)

	row, err := s.buildRow(ctx, draftID, input)
	if err != nil {
		return nil, err
	}

	var created *domain.DraftRow
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		draft, err := s.getOpenDraft(txCtx, draftID)
		if err != nil {
			return err
		}

		position, err := s.draftRepo.NextPosition(txCtx, draft.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to get next position: %v", ErrInternal, err)
		}
		row.Position = position

		created, err = s.draftRepo.AddRow(txCtx, row)
		if err != nil {
			return fmt.Errorf("%w: failed to add row: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сетевые вызовы автоподбора выполняются вне транзакции
	s.refreshSuggestions(ctx, draftID, created.ID, true, created.CartRequested)

	return s.GetDraft(ctx, draftID)
}

// UpdateRow обновляет строку игрока; при изменении ценообразующих полей
// запускается новый автоподбор с монотонным sequence-номером
func (s *Service) UpdateRow(ctx context.Context, draftID, rowID int64, input *models.RowInput) (*models.DraftResponse, error) {
	s.logger.Info("UpdateRow: draft=%d, row=%d", draftID, rowID)

	updated, err := s.buildRow(ctx, draftID, input)
	if err != nil {
		return nil, err
	}

	var feeKeyChanged, cartKeyChanged bool
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.getOpenDraft(txCtx, draftID); err != nil {
			return err
		}

		current, err := s.draftRepo.GetRow(txCtx, draftID, rowID)
		if err != nil {
			if errors.Is(err, draftRepo.ErrRowNotFound) {
				return ErrRowNotFound
			}
			return fmt.Errorf("%w: failed to get row: %v", ErrInternal, err)
		}

		feeKeyChanged = current.PlayerType != updated.PlayerType ||
			current.Senior != updated.Senior ||
			!equalIntPtr(current.Age, updated.Age)
		cartKeyChanged = (feeKeyChanged || !current.CartRequested) && updated.CartRequested

		updated.ID = rowID
		updated.DraftID = draftID
		updated.Position = current.Position

		if err := s.draftRepo.UpdateRow(txCtx, updated); err != nil {
			return fmt.Errorf("%w: failed to update row: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.refreshSuggestions(ctx, draftID, rowID, feeKeyChanged, cartKeyChanged)

	return s.GetDraft(ctx, draftID)
}

// RemoveRow удаляет строку игрока из черновика
func (s *Service) RemoveRow(ctx context.Context, draftID, rowID int64) (*models.DraftResponse, error) {
	s.logger.Info("RemoveRow: draft=%d, row=%d", draftID, rowID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.getOpenDraft(txCtx, draftID); err != nil {
			return err
		}

		if err := s.draftRepo.RemoveRow(txCtx, draftID, rowID); err != nil {
			if errors.Is(err, draftRepo.ErrRowNotFound) {
				return ErrRowNotFound
			}
			return fmt.Errorf("%w: failed to remove row: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetDraft(ctx, draftID)
}

// loadDraft читает черновик и его строки
func (s *Service) loadDraft(ctx context.Context, draftID int64) (*domain.BookingDraft, []*domain.DraftRow, error) {
	draft, err := s.draftRepo.GetDraft(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return nil, nil, ErrDraftNotFound
		}
		return nil, nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	rows, err := s.draftRepo.GetRows(ctx, draftID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to get rows: %v", ErrInternal, err)
	}

	return draft, rows, nil
}

func (s *Service) getOpenDraft(ctx context.Context, draftID int64) (*domain.BookingDraft, error) {
	draft, err := s.draftRepo.GetDraft(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}
	if !draft.IsOpen() {
		return nil, ErrDraftClosed
	}
	return draft, nil
}

// buildRow валидирует входные данные и собирает domain-строку
// Явно выбранный тариф разрешается в цену по кэшированной тарифной таблице
func (s *Service) buildRow(ctx context.Context, draftID int64, input *models.RowInput) (*domain.DraftRow, error) {
	playerType, ok := models.ToDomainPlayerType(input.PlayerType)
	if !ok {
		return nil, fmt.Errorf("%w: playerType must be %q or %q", ErrInvalidInput, domain.PlayerMember, domain.PlayerVisitor)
	}

	if input.Age != nil && (*input.Age < 0 || *input.Age > 130) {
		return nil, fmt.Errorf("%w: age out of range", ErrInvalidInput)
	}

	row := &domain.DraftRow{
		DraftID:        draftID,
		PlayerType:     playerType,
		Senior:         input.Senior,
		Name:           input.Name,
		Email:          input.Email,
		HandicapNumber: input.HandicapNumber,
		MemberID:       input.MemberID,
		Age:            input.Age,
		Prepaid:        input.Prepaid,
		CartRequested:  input.CartRequested,
		PushCart:       input.PushCart,
		Caddy:          input.Caddy,
	}

	if input.SelectedFeeID != nil {
		fees, err := s.feeCategories(ctx, draftID)
		if err != nil {
			return nil, fmt.Errorf("%w: fee categories unavailable: %v", ErrInternal, err)
		}

		found := false
		for _, fee := range fees {
			if fee.ID == *input.SelectedFeeID {
				price := fee.Price
				row.SelectedFeeID = input.SelectedFeeID
				row.SelectedFeePrice = &price
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: id=%d", ErrUnknownFeeCategory, *input.SelectedFeeID)
		}
	}

	return row, nil
}

// refreshSuggestions запрашивает автоподбор цен для строки
//
// Перед каждым сетевым вызовом строке выдается новый sequence-номер;
// результат применяется только если номер всё ещё последний. Поздний ответ
// устаревшего запроса молча отбрасывается - "применяется последний выданный",
// а не "последний пришедший"
func (s *Service) refreshSuggestions(ctx context.Context, draftID, rowID int64, fee, cart bool) {
	if !fee && !cart {
		return
	}

	draft, err := s.draftRepo.GetDraft(ctx, draftID)
	if err != nil {
		s.logger.Error("refreshSuggestions: failed to get draft=%d: %v", draftID, err)
		return
	}
	row, err := s.draftRepo.GetRow(ctx, draftID, rowID)
	if err != nil {
		s.logger.Error("refreshSuggestions: failed to get row=%d: %v", rowID, err)
		return
	}

	if fee {
		s.refreshFeeSuggestion(ctx, draft, row)
	}
	if cart && row.CartRequested {
		s.refreshCartSuggestion(ctx, draft, row)
	}
}

func (s *Service) refreshFeeSuggestion(ctx context.Context, draft *domain.BookingDraft, row *domain.DraftRow) {
	seq, err := s.draftRepo.IssueSuggestionSeq(ctx, draft.ID, row.ID)
	if err != nil {
		s.logger.Error("refreshFeeSuggestion: failed to issue seq for row=%d: %v", row.ID, err)
		return
	}

	req := clubservice.GolfFeeSuggestRequest{
		TeeTimeID:  draft.TeeTimeID,
		PlayerType: string(row.PlayerType),
		Holes:      draft.Holes,
	}
	// Возраст участвует в подборе только для пенсионного тарифа
	if row.Senior {
		req.Age = row.Age
	}

	suggestion, err := s.clubClient.SuggestGolfFee(ctx, req)
	if err != nil {
		// Любой отказ - "цена недоступна": строка даёт 0 в итог,
		// но оператор видит это явно
		s.logger.Warn("refreshFeeSuggestion: suggestion unavailable for row=%d: %v", row.ID, err)
		s.applyFeeSuggestion(ctx, row.ID, seq, nil, nil, nil, true)
		return
	}

	s.applyFeeSuggestion(ctx, row.ID, seq, &suggestion.ID, &suggestion.Price, &suggestion.Description, false)
}

func (s *Service) refreshCartSuggestion(ctx context.Context, draft *domain.BookingDraft, row *domain.DraftRow) {
	seq, err := s.draftRepo.IssueSuggestionSeq(ctx, draft.ID, row.ID)
	if err != nil {
		s.logger.Error("refreshCartSuggestion: failed to issue seq for row=%d: %v", row.ID, err)
		return
	}

	suggestion, err := s.clubClient.SuggestCartFee(ctx, clubservice.CartFeeSuggestRequest{
		TeeTimeID:  draft.TeeTimeID,
		PlayerType: string(row.PlayerType),
		Holes:      draft.Holes,
	})
	if err != nil {
		s.logger.Warn("refreshCartSuggestion: suggestion unavailable for row=%d: %v", row.ID, err)
		if err := s.draftRepo.ApplyCartSuggestion(ctx, row.ID, seq, nil, nil, true); err != nil && !errors.Is(err, draftRepo.ErrStaleSuggestion) {
			s.logger.Error("refreshCartSuggestion: failed to apply for row=%d: %v", row.ID, err)
		}
		return
	}

	if err := s.draftRepo.ApplyCartSuggestion(ctx, row.ID, seq, &suggestion.Price, &suggestion.Description, false); err != nil {
		if errors.Is(err, draftRepo.ErrStaleSuggestion) {
			s.logger.Info("refreshCartSuggestion: stale suggestion dropped for row=%d seq=%d", row.ID, seq)
			return
		}
		s.logger.Error("refreshCartSuggestion: failed to apply for row=%d: %v", row.ID, err)
	}
}

func (s *Service) applyFeeSuggestion(ctx context.Context, rowID, seq int64, feeID *int64, price *float64, description *string, unavailable bool) {
	if err := s.draftRepo.ApplyFeeSuggestion(ctx, rowID, seq, feeID, price, description, unavailable); err != nil {
		if errors.Is(err, draftRepo.ErrStaleSuggestion) {
			s.logger.Info("applyFeeSuggestion: stale suggestion dropped for row=%d seq=%d", rowID, seq)
			return
		}
		s.logger.Error("applyFeeSuggestion: failed to apply for row=%d: %v", rowID, err)
	}
}

// feeCategories возвращает тарифную таблицу из кэша черновика,
// при промахе загружает её с бэкенда клуба
func (s *Service) feeCategories(ctx context.Context, draftID int64) ([]domain.FeeCategory, error) {
	s.feeMu.Lock()
	cached, ok := s.feeCache[draftID]
	s.feeMu.Unlock()
	if ok {
		return cached, nil
	}

	records, err := s.clubClient.ListGolfFees(ctx)
	if err != nil {
		return nil, err
	}

	fees := make([]domain.FeeCategory, len(records))
	for i, rec := range records {
		fees[i] = domain.FeeCategory{
			ID:          rec.ID,
			Code:        rec.Code,
			Description: rec.Description,
			Price:       rec.Price,
		}
	}

	s.feeMu.Lock()
	s.feeCache[draftID] = fees
	s.feeMu.Unlock()

	return fees, nil
}

func (s *Service) dropFeeCache(draftID int64) {
	s.feeMu.Lock()
	delete(s.feeCache, draftID)
	s.feeMu.Unlock()
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
