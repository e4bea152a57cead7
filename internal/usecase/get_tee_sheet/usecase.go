package get_tee_sheet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/GCC-TeeSheetService/internal/domain"
	"github.com/m04kA/GCC-TeeSheetService/internal/integrations/clubservice"
	"github.com/m04kA/GCC-TeeSheetService/pkg/types"
)

// Params настройки расписания стартов
type Params struct {
	IntervalMinutes int
	Capacity        int
	Tees            []string

	// Окна генерации дня; нулевые значения заменяются дефолтами
	DayStart      types.TimeString
	DayEnd        types.TimeString
	NineHoleStart types.TimeString
	NineHoleEnd   types.TimeString
}

// UseCase use case для получения объединённого расписания стартов
type UseCase struct {
	client       TeeSheetClient
	timeProvider TimeProvider
	logger       Logger

	intervalMinutes int
	capacity        int
	tees            []string
	dayStart        types.TimeString
	dayEnd          types.TimeString
	nineHoleStart   types.TimeString
	nineHoleEnd     types.TimeString
	nineHole        nineHoleWindow

	// Автогенерация дня запускается не более одного раза на ключ
	// (дата, набор ти, режим лунок) за время жизни процесса
	guardMu   sync.Mutex
	attempted map[string]struct{}
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client TeeSheetClient, params Params, logger Logger) *UseCase {
	if params.IntervalMinutes < domain.MinIntervalMinutes || params.IntervalMinutes > domain.MaxIntervalMinutes {
		params.IntervalMinutes = domain.DefaultIntervalMinutes
	}
	if params.Capacity < domain.MinCapacity || params.Capacity > domain.MaxCapacity {
		params.Capacity = domain.DefaultCapacity
	}
	if len(params.Tees) == 0 {
		params.Tees = domain.DefaultTees
	}
	if _, err := params.DayStart.Minutes(); err != nil {
		params.DayStart = domain.DayStart
	}
	if _, err := params.DayEnd.Minutes(); err != nil {
		params.DayEnd = domain.DayEnd
	}
	nineStartMin, err := params.NineHoleStart.Minutes()
	if err != nil {
		params.NineHoleStart = domain.NineHoleStart
		nineStartMin, _ = params.NineHoleStart.Minutes()
	}
	nineEndMin, err := params.NineHoleEnd.Minutes()
	if err != nil || nineEndMin < nineStartMin {
		// Перевёрнутое окно заменяется дефолтным целиком
		params.NineHoleStart, params.NineHoleEnd = domain.NineHoleStart, domain.NineHoleEnd
		nineStartMin, _ = params.NineHoleStart.Minutes()
		nineEndMin, _ = params.NineHoleEnd.Minutes()
	}

	return &UseCase{
		client:          client,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		intervalMinutes: params.IntervalMinutes,
		capacity:        params.Capacity,
		tees:            params.Tees,
		dayStart:        params.DayStart,
		dayEnd:          params.DayEnd,
		nineHoleStart:   params.NineHoleStart,
		nineHoleEnd:     params.NineHoleEnd,
		nineHole:        nineHoleWindow{startMin: nineStartMin, endMin: nineEndMin},
		attempted:       make(map[string]struct{}),
	}
}

// Execute выполняет use case получения расписания стартов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTeeSheet: date=%s, period=%s, holes=%d",
		req.Date.Format(domain.DateFormat), req.Period, req.Holes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetTeeSheet: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим интервал выборки
	dateRange := BuildRange(req.Date, req.Period)
	if dateRange == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, req.Period)
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Загружаем сырые записи расписания
	records, err := uc.client.GetTeeTimeRange(ctx, dateRange.Start, dateRange.End)
	if err != nil {
		uc.logger.Error("GetTeeSheet: failed to fetch range: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch tee time range: %v", ErrInternal, err)
	}

	// 5. Сводим записи в строки отображения
	rows := mergeRecords(records, req.Holes, uc.nineHole, uc.logger)

	// 6. Пустой день на однодневной выборке - повод сгенерировать лист
	generated := 0
	if len(rows) == 0 && req.Period == PeriodDay {
		generated, rows = uc.maybeGenerate(ctx, req, dateRange)
	}

	uc.logger.Info("GetTeeSheet: %d rows for date=%s, period=%s, generated=%d",
		len(rows), req.Date.Format(domain.DateFormat), req.Period, generated)

	return &Response{
		StartDate: dateRange.Start,
		EndDate:   dateRange.End,
		Generated: generated,
		Rows:      toRows(rows, now, uc.intervalMinutes),
	}, nil
}

// maybeGenerate запускает автогенерацию дня и перечитывает расписание.
// Любой отказ генерации не фатален: пустой лист отображается как есть
func (uc *UseCase) maybeGenerate(ctx context.Context, req *Request, dateRange *DateRange) (int, []*domain.MergedRow) {
	key := uc.generationKey(req)
	if !uc.tryAcquire(key) {
		uc.logger.Info("GetTeeSheet: generation already attempted for %s", key)
		return 0, nil
	}

	startTime, endTime := uc.dayStart, uc.dayEnd
	if req.Holes == domain.Holes9 {
		startTime, endTime = uc.nineHoleStart, uc.nineHoleEnd
	}

	created, err := uc.client.GenerateTeeSheet(ctx, clubservice.GenerateRequest{
		Date:        dateRange.Start.Format(domain.DateFormat),
		Tees:        uc.tees,
		StartTime:   string(startTime),
		EndTime:     string(endTime),
		IntervalMin: uc.intervalMinutes,
		Capacity:    uc.capacity,
		Status:      "open",
	})
	if err != nil {
		if errors.Is(err, clubservice.ErrSheetClosed) {
			uc.logger.Info("GetTeeSheet: sheet is closed for %s, skipping generation", key)
		} else {
			uc.logger.Error("GetTeeSheet: generation failed for %s: %v", key, err)
		}
		return 0, nil
	}

	uc.logger.Info("GetTeeSheet: generated %d tee times for %s", created, key)

	records, err := uc.client.GetTeeTimeRange(ctx, dateRange.Start, dateRange.End)
	if err != nil {
		uc.logger.Error("GetTeeSheet: failed to re-fetch range after generation: %v", err)
		return created, nil
	}

	return created, mergeRecords(records, req.Holes, uc.nineHole, uc.logger)
}

func (uc *UseCase) generationKey(req *Request) string {
	return fmt.Sprintf("%s|%s|%d",
		req.Date.Format(domain.DateFormat), strings.Join(uc.tees, ","), req.Holes)
}

// tryAcquire возвращает true только при первом обращении с данным ключом
func (uc *UseCase) tryAcquire(key string) bool {
	uc.guardMu.Lock()
	defer uc.guardMu.Unlock()

	if _, ok := uc.attempted[key]; ok {
		return false
	}
	uc.attempted[key] = struct{}{}
	return true
}
