package create_draft

import (
	"time"

	"github.com/m04kA/GCC-TeeSheetService/internal/service/drafts/models"
)

// CreateDraftRequest HTTP request model
type CreateDraftRequest struct {
	TeeTimeID int64  `json:"teeTimeId"`
	TeeTime   string `json:"teeTime"` // "2025-06-14T10:30"
	Holes     int    `json:"holes"`
}

const teeTimeLayout = "2006-01-02T15:04"

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateDraftRequest) ToServiceRequest() (*models.CreateDraftRequest, error) {
	teeTime, err := time.Parse(teeTimeLayout, r.TeeTime)
	if err != nil {
		return nil, err
	}

	return &models.CreateDraftRequest{
		TeeTimeID: r.TeeTimeID,
		TeeTime:   teeTime,
		Holes:     r.Holes,
	}, nil
}
