package create_draft

import (
	"errors"
	"net/http"

	"github.com/m04kA/GCC-TeeSheetService/internal/api/handlers"
	"github.com/m04kA/GCC-TeeSheetService/internal/service/drafts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTeeTime     = "некорректный формат времени старта, ожидается YYYY-MM-DDTHH:MM"
	msgInvalidInput       = "некорректные данные черновика"
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

// Handle POST /api/v1/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /drafts - Invalid tee time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTeeTime)
		return
	}

	result, err := h.service.CreateDraft(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, drafts.ErrInvalidInput):
			h.logger.Warn("POST /drafts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /drafts - Failed to create draft: tee_time_id=%d, error=%v",
				req.TeeTimeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts - Draft created: id=%d, tee_time_id=%d", result.ID, result.TeeTimeID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
