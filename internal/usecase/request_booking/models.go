package request_booking

import "time"

// Request модель запроса на создание заявки
type Request struct {
	PatientName       string
	EquipmentID       int64
	RequestedPriority string // советующий, опциональный
	SlotTime          string // опциональный, свободный текст допустим
}

// Response модель созданной заявки
type Response struct {
	ID                int64
	PatientName       string
	EquipmentID       int64
	RequestedPriority string
	Priority          string
	SlotTime          string
	Status            string
	BookingTime       time.Time
}
