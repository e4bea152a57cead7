package get_tee_sheet

import (
	"context"

	getTeeSheet "github.com/m04kA/GCC-TeeSheetService/internal/usecase/get_tee_sheet"
)

type GetTeeSheetUseCase interface {
	Execute(ctx context.Context, req *getTeeSheet.Request) (*getTeeSheet.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
