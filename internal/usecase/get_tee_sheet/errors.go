package get_tee_sheet

import "errors"

var (
	// ErrInvalidPeriod возвращается при неизвестном периоде выборки
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidHoles возвращается, когда число лунок не равно 9 или 18
	ErrInvalidHoles = errors.New("holes must be 9 or 18")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
