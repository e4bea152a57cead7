package submit_draft

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GCC-TeeSheetService/internal/api/handlers"
	submitDraft "github.com/m04kA/GCC-TeeSheetService/internal/usecase/submit_draft"
)

const (
	msgInvalidDraftID = "некорректный ID черновика"
	msgDraftNotFound  = "черновик не найден"
	msgDraftClosed    = "черновик уже отправлен"
	msgEmptyDraft     = "в черновике нет строк игроков"
)

type Handler struct {
	useCase SubmitDraftUseCase
	logger  Logger
}

func NewHandler(useCase SubmitDraftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	draftID, err := strconv.ParseInt(vars["draftId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/submit - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitDraft.Request{DraftID: draftID})
	if err != nil {
		switch {
		case errors.Is(err, submitDraft.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/submit - Draft not found: draft_id=%d", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, submitDraft.ErrDraftClosed):
			h.logger.Warn("POST /drafts/{id}/submit - Draft already closed: draft_id=%d", draftID)
			handlers.RespondError(w, http.StatusConflict, msgDraftClosed)

		case errors.Is(err, submitDraft.ErrEmptyDraft):
			h.logger.Warn("POST /drafts/{id}/submit - Empty draft: draft_id=%d", draftID)
			handlers.RespondBadRequest(w, msgEmptyDraft)

		default:
			h.logger.Error("POST /drafts/{id}/submit - Failed to submit draft: draft_id=%d, error=%v",
				draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Частичный отказ - тоже 200: операция завершена, итог в теле ответа
	h.logger.Info("POST /drafts/{id}/submit - Draft submitted: draft_id=%d, created=%d, failed=%d",
		draftID, result.Created, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
