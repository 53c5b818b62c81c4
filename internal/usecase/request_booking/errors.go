package request_booking

import "errors"

var (
	// ErrPastSlot возвращается, когда запрошенное время слота
	// разрешается в момент строго раньше текущего времени
	ErrPastSlot = errors.New("requested slot time is in the past")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
