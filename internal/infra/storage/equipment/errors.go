package equipment

import "errors"

var (
	// ErrEquipmentNotFound возвращается, когда оборудование не найдено
	ErrEquipmentNotFound = errors.New("equipment.repository: equipment not found")
)
