package search_members

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/GCC-TeeSheetService/internal/api/handlers"
)

const (
	msgMissingQuery = "строка поиска обязательна"
	msgInvalidLimit = "некорректный limit"

	defaultLimit = 10
	maxLimit     = 50
)

type Handler struct {
	client ClubServiceClient
	logger Logger
}

func NewHandler(client ClubServiceClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// MemberResponse кандидат подстановки в строку игрока
type MemberResponse struct {
	ID             int64   `json:"id"`
	MemberNumber   *string `json:"memberNumber,omitempty"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          *string `json:"email,omitempty"`
	HandicapNumber *string `json:"handicapNumber,omitempty"`
}

// Handle GET /api/v1/members/search
// Query params: query (required), limit (default 10, max 50)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		h.logger.Warn("GET /members/search - Missing query")
		handlers.RespondBadRequest(w, msgMissingQuery)
		return
	}

	limit := defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /members/search - Invalid limit: %q", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	records, err := h.client.SearchMembers(r.Context(), query, limit)
	if err != nil {
		h.logger.Error("GET /members/search - Failed to search members: query=%q, error=%v", query, err)
		handlers.RespondInternalError(w)
		return
	}

	members := make([]MemberResponse, len(records))
	for i, rec := range records {
		members[i] = MemberResponse{
			ID:             rec.ID,
			MemberNumber:   rec.MemberNumber,
			FirstName:      rec.FirstName,
			LastName:       rec.LastName,
			Email:          rec.Email,
			HandicapNumber: rec.HandicapNumber,
		}
	}

	h.logger.Info("GET /members/search - Found %d members for query=%q", len(members), query)
	handlers.RespondJSON(w, http.StatusOK, members)
}
