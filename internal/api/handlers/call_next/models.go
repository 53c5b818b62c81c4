package call_next

import (
	"time"

	callNext "github.com/m04kA/HMS-TriageService/internal/usecase/call_next"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                int64  `json:"id"`
	PatientName       string `json:"patientName"`
	EquipmentID       int64  `json:"equipmentId"`
	RequestedPriority string `json:"requestedPriority"`
	Priority          string `json:"priority"`
	SlotTime          string `json:"slotTime"`
	Status            string `json:"status"`
	BookingTime       string `json:"bookingTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *callNext.Response) *BookingResponse {
	return &BookingResponse{
		ID:                resp.ID,
		PatientName:       resp.PatientName,
		EquipmentID:       resp.EquipmentID,
		RequestedPriority: resp.RequestedPriority,
		Priority:          resp.Priority,
		SlotTime:          resp.SlotTime,
		Status:            resp.Status,
		BookingTime:       resp.BookingTime.Format(time.RFC3339),
	}
}
