package submit_draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft not found")

	// ErrDraftClosed возвращается при повторной отправке уже закрытого черновика
	ErrDraftClosed = errors.New("draft is already closed")

	// ErrEmptyDraft возвращается при отправке черновика без строк игроков
	ErrEmptyDraft = errors.New("draft has no player rows")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
