package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("booking.repository: booking not found")
)
