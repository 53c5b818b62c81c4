package call_next

import "time"

// Response модель диспетчеризованной заявки.
// После возврата запись нигде больше не хранится.
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
