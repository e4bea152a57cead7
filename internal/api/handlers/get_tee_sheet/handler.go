package get_tee_sheet

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/GCC-TeeSheetService/internal/api/handlers"
	"github.com/m04kA/GCC-TeeSheetService/internal/domain"
	getTeeSheet "github.com/m04kA/GCC-TeeSheetService/internal/usecase/get_tee_sheet"
)

const (
	msgMissingDate   = "дата обязательна"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod = "некорректный период, ожидается day, week или month"
	msgInvalidHoles  = "некорректное число лунок, ожидается 9 или 18"
)

type Handler struct {
	useCase GetTeeSheetUseCase
	logger  Logger
}

func NewHandler(useCase GetTeeSheetUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tee-sheet
// Query params: date (required, YYYY-MM-DD), period (day|week|month, default day),
// holes (9|18, default 18)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tee-sheet - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	period := query.Get("period")
	if period == "" {
		period = getTeeSheet.PeriodDay
	}

	holes := domain.Holes18
	if holesStr := query.Get("holes"); holesStr != "" {
		parsed, err := strconv.Atoi(holesStr)
		if err != nil {
			h.logger.Warn("GET /tee-sheet - Invalid holes: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHoles)
			return
		}
		holes = parsed
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, period, holes)
	if err != nil {
		h.logger.Warn("GET /tee-sheet - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getTeeSheet.ErrInvalidPeriod):
			h.logger.Warn("GET /tee-sheet - Invalid period: %s", period)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, getTeeSheet.ErrInvalidHoles):
			h.logger.Warn("GET /tee-sheet - Invalid holes: %d", holes)
			handlers.RespondBadRequest(w, msgInvalidHoles)

		case errors.Is(err, getTeeSheet.ErrInvalidDate):
			h.logger.Warn("GET /tee-sheet - Invalid date: %s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /tee-sheet - Failed to get tee sheet: date=%s, period=%s, error=%v",
				dateStr, period, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tee-sheet - Sheet retrieved: date=%s, period=%s, rows=%d, generated=%d",
		dateStr, period, len(result.Rows), result.Generated)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
