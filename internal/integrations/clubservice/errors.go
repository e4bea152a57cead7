package clubservice

import "errors"

var (
	// ErrTeeTimeNotFound возвращается, когда ти-тайм не найден на бэкенде клуба
	ErrTeeTimeNotFound = errors.New("tee time not found")

	// ErrNoMatchingFee возвращается, когда подходящий тариф не найден
	// Для клиента это "pricing unavailable", а не нулевая цена
	ErrNoMatchingFee = errors.New("no matching fee found")

	// ErrBookingRejected возвращается, когда бэкенд клуба отклонил бронирование
	// Текст причины сервера добавляется через %w-обёртку
	ErrBookingRejected = errors.New("booking rejected by club backend")

	// ErrSheetClosed возвращается, когда ти-лист на дату закрыт для генерации
	ErrSheetClosed = errors.New("tee sheet is closed for this date")

	// ErrUnauthorized возвращается при просроченном или отсутствующем токене
	ErrUnauthorized = errors.New("club backend rejected credentials")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("clubservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе бэкенда клуба
	ErrInvalidResponse = errors.New("clubservice client: invalid response")
)
