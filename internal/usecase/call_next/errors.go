package call_next

import "errors"

var (
	// ErrQueueEmpty возвращается, когда на оборудование нет ни одной
	// подтверждённой заявки
	ErrQueueEmpty = errors.New("queue is empty")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("usecase: internal error")
)
