package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidPriority возвращается при попытке назначить приоритет
	// вне множества NORMAL / URGENT / EMERGENCY
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
