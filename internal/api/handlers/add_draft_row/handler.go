package add_draft_row

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GCC-TeeSheetService/internal/api/handlers"
	"github.com/m04kA/GCC-TeeSheetService/internal/service/drafts"
	"github.com/m04kA/GCC-TeeSheetService/internal/service/drafts/models"
)

const (
	msgInvalidDraftID     = "некорректный ID черновика"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные строки"
	msgUnknownFeeCategory = "неизвестная тарифная категория"
	msgDraftNotFound      = "черновик не найден"
	msgDraftClosed        = "черновик уже закрыт"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/rows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	draftID, err := strconv.ParseInt(vars["draftId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/rows - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	var input models.RowInput
	if err := handlers.DecodeJSON(r, &input); err != nil {
		h.logger.Warn("POST /drafts/{id}/rows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddRow(r.Context(), draftID, &input)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/rows - Draft not found: draft_id=%d", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, drafts.ErrDraftClosed):
			h.logger.Warn("POST /drafts/{id}/rows - Draft closed: draft_id=%d", draftID)
			handlers.RespondError(w, http.StatusConflict, msgDraftClosed)

		case errors.Is(err, drafts.ErrUnknownFeeCategory):
			h.logger.Warn("POST /drafts/{id}/rows - Unknown fee category: draft_id=%d, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgUnknownFeeCategory)

		case errors.Is(err, drafts.ErrInvalidInput):
			h.logger.Warn("POST /drafts/{id}/rows - Invalid input: draft_id=%d, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /drafts/{id}/rows - Failed to add row: draft_id=%d, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/rows - Row added: draft_id=%d, rows=%d, total=%.2f",
		draftID, len(result.Rows), result.Total)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
