package domain

import "time"

// BookingStatus represents the status of a booking request
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
)

// Priority represents the clinical urgency class of a booking.
// The requested priority is advisory; the authoritative priority is
// assigned by an administrator at confirmation time.
type Priority string

const (
	PriorityNormal    Priority = "NORMAL"
	PriorityUrgent    Priority = "URGENT"
	PriorityEmergency Priority = "EMERGENCY"
)

// Score returns the triage ordering weight of the priority.
// Unknown values score 0 so the ordering stays total over any stored data.
func (p Priority) Score() int {
	switch p {
	case PriorityEmergency:
		return 3
	case PriorityUrgent:
		return 2
	case PriorityNormal:
		return 1
	default:
		return 0
	}
}

// IsValid returns true if the priority is one of the known urgency classes
func (p Priority) IsValid() bool {
	switch p {
	case PriorityNormal, PriorityUrgent, PriorityEmergency:
		return true
	default:
		return false
	}
}

// Booking represents a patient request for a piece of equipment.
// EquipmentID is not validated against the registry: a booking may
// reference an id the registry has never seen.
type Booking struct {
	ID                int64
	PatientName       string
	EquipmentID       int64
	RequestedPriority Priority
	Priority          Priority
	SlotTime          string
	Status            BookingStatus
	BookingTime       time.Time
}

// IsPending returns true if the booking awaits admin confirmation
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsConfirmed returns true if the booking is eligible for dispatch
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}
