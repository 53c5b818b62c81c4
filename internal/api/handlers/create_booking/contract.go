package create_booking

import (
	requestBooking "github.com/m04kA/HMS-TriageService/internal/usecase/request_booking"
)

type RequestBookingUseCase interface {
	Execute(req *requestBooking.Request) (*requestBooking.Response, error)
}

type Metrics interface {
	IncBookingCreated()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
