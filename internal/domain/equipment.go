package domain

// EquipmentStatus represents the operational state of a piece of equipment
type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentInUse       EquipmentStatus = "IN_USE"
	EquipmentMaintenance EquipmentStatus = "MAINTENANCE"
)

// Equipment represents a schedulable medical resource
type Equipment struct {
	ID                     int64
	Name                   string
	Status                 EquipmentStatus
	ServiceDurationMinutes int
}

// IsAvailable returns true if the equipment is free to take the next patient
func (e *Equipment) IsAvailable() bool {
	return e.Status == EquipmentAvailable
}

// IsUnderMaintenance returns true if the equipment is out of service
func (e *Equipment) IsUnderMaintenance() bool {
	return e.Status == EquipmentMaintenance
}

// EffectiveServiceDuration returns the per-patient service duration in minutes,
// falling back to the default when the equipment has no duration configured
func (e *Equipment) EffectiveServiceDuration() int {
	if e.ServiceDurationMinutes <= 0 {
		return DefaultServiceDurationMinutes
	}
	return e.ServiceDurationMinutes
}
