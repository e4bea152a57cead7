package update_draft_row

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
	msgInvalidRowID       = "некорректный ID строки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные строки"
	msgUnknownFeeCategory = "неизвестная тарифная категория"
	msgDraftNotFound      = "черновик не найден"
	msgRowNotFound        = "строка не найдена"
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

// Handle PUT /api/v1/drafts/{draftId}/rows/{rowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	draftID, err := strconv.ParseInt(vars["draftId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /drafts/{id}/rows/{id} - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	rowID, err := strconv.ParseInt(vars["rowId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /drafts/{id}/rows/{id} - Invalid row ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRowID)
		return
	}

	var input models.RowInput
	if err := handlers.DecodeJSON(r, &input); err != nil {
		h.logger.Warn("PUT /drafts/{id}/rows/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateRow(r.Context(), draftID, rowID, &input)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("PUT /drafts/{id}/rows/{id} - Draft not found: draft_id=%d", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, drafts.ErrRowNotFound):
			h.logger.Warn("PUT /drafts/{id}/rows/{id} - Row not found: draft_id=%d, row_id=%d", draftID, rowID)
			handlers.RespondNotFound(w, msgRowNotFound)

		case errors.Is(err, drafts.ErrDraftClosed):
			h.logger.Warn("PUT /drafts/{id}/rows/{id} - Draft closed: draft_id=%d", draftID)
			handlers.RespondError(w, http.StatusConflict, msgDraftClosed)

		case errors.Is(err, drafts.ErrUnknownFeeCategory):
			h.logger.Warn("PUT /drafts/{id}/rows/{id} - Unknown fee category: draft_id=%d, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgUnknownFeeCategory)

		case errors.Is(err, drafts.ErrInvalidInput):
			h.logger.Warn("PUT /drafts/{id}/rows/{id} - Invalid input: draft_id=%d, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /drafts/{id}/rows/{id} - Failed to update row: draft_id=%d, row_id=%d, error=%v",
				draftID, rowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /drafts/{id}/rows/{id} - Row updated: draft_id=%d, row_id=%d, total=%.2f",
		draftID, rowID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
