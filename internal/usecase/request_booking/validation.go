package request_booking

import "time"

// Форматы, в которых принимается время слота. Строка, не подходящая ни
// под один формат, считается свободным текстом и сохраняется как есть.
var slotTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// parseSlotTime пытается разобрать время слота.
// Возвращает false для пустой строки и свободного текста.
func parseSlotTime(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range slotTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// validateRequest проверяет запрос на создание заявки.
// Единственное жёсткое правило: распознанное время слота не может быть
// строго в прошлом. Имя пациента и ID оборудования намеренно не
// проверяются - заявки не валидируются по внешнему ключу.
func validateRequest(req *Request, now time.Time) error {
	if t, ok := parseSlotTime(req.SlotTime); ok && t.Before(now) {
		return ErrPastSlot
	}
	return nil
}
