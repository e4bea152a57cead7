package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft.repository: draft not found")

	// ErrRowNotFound возвращается, когда строка черновика не найдена
	ErrRowNotFound = errors.New("draft.repository: draft row not found")

	// ErrStaleSuggestion возвращается, когда результат автоподбора цены
	// пришёл с устаревшим sequence-номером и не был применён
	ErrStaleSuggestion = errors.New("draft.repository: stale fee suggestion")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("draft.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("draft.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("draft.repository: failed to scan row")
)
