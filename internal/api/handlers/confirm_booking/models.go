package confirm_booking

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	AssignedPriority string `json:"assignedPriority"`
}
