package get_tee_sheet

import (
	"fmt"

	"github.com/m04kA/GCC-TeeSheetService/internal/domain"
)

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	switch req.Period {
	case PeriodDay, PeriodWeek, PeriodMonth:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPeriod, req.Period)
	}

	if req.Holes != domain.Holes9 && req.Holes != domain.Holes18 {
		return fmt.Errorf("%w: got %d", ErrInvalidHoles, req.Holes)
	}

	return nil
}
