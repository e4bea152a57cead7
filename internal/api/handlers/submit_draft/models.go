package submit_draft

import (
	submitDraft "github.com/m04kA/GCC-TeeSheetService/internal/usecase/submit_draft"
)

// SubmitDraftResponse HTTP response model
type SubmitDraftResponse struct {
	DraftID  int64        `json:"draftId"`
	Created  int          `json:"created"`
	Failed   int          `json:"failed"`
	Failures []RowFailure `json:"failures,omitempty"`
	Summary  string       `json:"summary,omitempty"`
}

// RowFailure отказ отправки одной строки
type RowFailure struct {
	RowID    int64  `json:"rowId"`
	Position int    `json:"position"`
	Name     string `json:"name,omitempty"`
	Reason   string `json:"reason"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitDraft.Response) *SubmitDraftResponse {
	failures := make([]RowFailure, len(resp.Failures))
	for i, f := range resp.Failures {
		failures[i] = RowFailure{
			RowID:    f.RowID,
			Position: f.Position,
			Name:     f.Name,
			Reason:   f.Reason,
		}
	}

	return &SubmitDraftResponse{
		DraftID:  resp.DraftID,
		Created:  resp.Created,
		Failed:   resp.Failed,
		Failures: failures,
		Summary:  resp.Summary,
	}
}
