package remove_draft_row

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GCC-TeeSheetService/internal/api/handlers"
	"github.com/m04kA/GCC-TeeSheetService/internal/service/drafts"
)

const (
	msgInvalidDraftID = "некорректный ID черновика"
	msgInvalidRowID   = "некорректный ID строки"
	msgDraftNotFound  = "черновик не найден"
	msgRowNotFound    = "строка не найдена"
	msgDraftClosed    = "черновик уже закрыт"
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

// Handle DELETE /api/v1/drafts/{draftId}/rows/{rowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	draftID, err := strconv.ParseInt(vars["draftId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /drafts/{id}/rows/{id} - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	rowID, err := strconv.ParseInt(vars["rowId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /drafts/{id}/rows/{id} - Invalid row ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRowID)
		return
	}

	result, err := h.service.RemoveRow(r.Context(), draftID, rowID)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("DELETE /drafts/{id}/rows/{id} - Draft not found: draft_id=%d", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, drafts.ErrRowNotFound):
			h.logger.Warn("DELETE /drafts/{id}/rows/{id} - Row not found: draft_id=%d, row_id=%d", draftID, rowID)
			handlers.RespondNotFound(w, msgRowNotFound)

		case errors.Is(err, drafts.ErrDraftClosed):
			h.logger.Warn("DELETE /drafts/{id}/rows/{id} - Draft closed: draft_id=%d", draftID)
			handlers.RespondError(w, http.StatusConflict, msgDraftClosed)

		default:
			h.logger.Error("DELETE /drafts/{id}/rows/{id} - Failed to remove row: draft_id=%d, row_id=%d, error=%v",
				draftID, rowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /drafts/{id}/rows/{id} - Row removed: draft_id=%d, row_id=%d, rows=%d",
		draftID, rowID, len(result.Rows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
