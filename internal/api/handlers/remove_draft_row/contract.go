package remove_draft_row

import (
	"context"

	"github.com/m04kA/GCC-TeeSheetService/internal/service/drafts/models"
)

type DraftService interface {
	RemoveRow(ctx context.Context, draftID, rowID int64) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
