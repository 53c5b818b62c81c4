package domain

// Default configuration values
const (
	DefaultServiceDurationMinutes = 30
)

// SlotTimeASAP is stored verbatim when a request carries no slot time.
// It is a display sentinel, never parsed as a date.
const SlotTimeASAP = "As Soon As Possible"

// Time format constants
const (
	TimeFormat = "15:04" // HH:MM
)
