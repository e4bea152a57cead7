package create_draft

import (
	"context"

	"github.com/m04kA/GCC-TeeSheetService/internal/service/drafts/models"
)

type DraftService interface {
	CreateDraft(ctx context.Context, req *models.CreateDraftRequest) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
