package add_draft_row

import (
	"context"

	"github.com/m04kA/GCC-TeeSheetService/internal/service/drafts/models"
)

type DraftService interface {
	AddRow(ctx context.Context, draftID int64, input *models.RowInput) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
