package models

import (
	"errors"
	"time"

	"github.com/m04kA/HMS-TriageService/internal/domain"
)

var (
	// ErrInvalidPriority возвращается при некорректном приоритете
	ErrInvalidPriority = errors.New("invalid priority")
)

// BookingResponse ответ с данными заявки
type BookingResponse struct {
	ID                int64  `json:"id"`
	PatientName       string `json:"patientName"`
	EquipmentID       int64  `json:"equipmentId"`
	RequestedPriority string `json:"requestedPriority"`
	Priority          string `json:"priority"`
	SlotTime          string `json:"slotTime"`
	Status            string `json:"status"`
	BookingTime       string `json:"bookingTime"` // RFC3339
}

// FromDomainBooking конвертирует domain.Booking в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                b.ID,
		PatientName:       b.PatientName,
		EquipmentID:       b.EquipmentID,
		RequestedPriority: string(b.RequestedPriority),
		Priority:          string(b.Priority),
		SlotTime:          b.SlotTime,
		Status:            string(b.Status),
		BookingTime:       b.BookingTime.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain.Booking в response
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}

// ToDomainPriority валидирует и конвертирует строку в domain.Priority
func ToDomainPriority(s string) (domain.Priority, error) {
	p := domain.Priority(s)
	if !p.IsValid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}
