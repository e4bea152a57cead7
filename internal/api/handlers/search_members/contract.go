package search_members

import (
	"context"

	"github.com/m04kA/GCC-TeeSheetService/internal/integrations/clubservice"
)

type ClubServiceClient interface {
	SearchMembers(ctx context.Context, query string, limit int) ([]clubservice.MemberRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
