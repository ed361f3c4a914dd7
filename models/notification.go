package models

// ReminderPayload is the asynq task payload for appointment reminder pushes.
type ReminderPayload struct {
	ReminderID    string `json:"reminderId"`
	AppointmentID string `json:"appointmentId"`
	Target        string `json:"target"` // "patient" or "doctor"
	ID            string `json:"id"`     // patient or doctor ID
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
