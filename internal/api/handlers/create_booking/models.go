package create_booking

import (
	"time"

	requestBooking "github.com/m04kA/HMS-TriageService/internal/usecase/request_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PatientName       string `json:"patientName"`
	EquipmentID       int64  `json:"equipmentId"`
	RequestedPriority string `json:"requestedPriority,omitempty"`
	SlotTime          string `json:"slotTime,omitempty"`
}

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *requestBooking.Request {
	return &requestBooking.Request{
		PatientName:       r.PatientName,
		EquipmentID:       r.EquipmentID,
		RequestedPriority: r.RequestedPriority,
		SlotTime:          r.SlotTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *requestBooking.Response) *BookingResponse {
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
