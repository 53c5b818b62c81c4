package models

import "github.com/m04kA/HMS-TriageService/internal/domain"

// EquipmentResponse ответ с данными оборудования и производной доступностью
type EquipmentResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	Duration      int    `json:"duration"` // длительность обслуживания в минутах
	QueueLength   int    `json:"queueLength"`
	NextAvailable string `json:"nextAvailable"`
}

// FromDomainEquipment конвертирует domain.Equipment в response
func FromDomainEquipment(eq *domain.Equipment, queueLength int, nextAvailable string) *EquipmentResponse {
	return &EquipmentResponse{
		ID:            eq.ID,
		Name:          eq.Name,
		Status:        string(eq.Status),
		Duration:      eq.ServiceDurationMinutes,
		QueueLength:   queueLength,
		NextAvailable: nextAvailable,
	}
}
