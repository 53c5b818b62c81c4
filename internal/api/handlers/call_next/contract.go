package call_next

import (
	callNext "github.com/m04kA/HMS-TriageService/internal/usecase/call_next"
)

type CallNextUseCase interface {
	Execute(equipmentID int64) (*callNext.Response, error)
}

type Metrics interface {
	IncDispatch()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
