package drafts

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft not found")

	// ErrRowNotFound возвращается, когда строка черновика не найдена
	ErrRowNotFound = errors.New("draft row not found")

	// ErrDraftClosed возвращается при попытке изменить закрытый черновик
	ErrDraftClosed = errors.New("draft is closed")

	// ErrUnknownFeeCategory возвращается при выборе тарифа, которого нет
	// в тарифной таблице клуба
	ErrUnknownFeeCategory = errors.New("unknown fee category")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("drafts service: internal error")
)
