package reschedule_appointment

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
