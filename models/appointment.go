package models

import "time"

// AppointmentStatus enumerates the lifecycle states of an appointment.
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "SCHEDULED"
	StatusConfirmed  AppointmentStatus = "CONFIRMED"
	StatusInProgress AppointmentStatus = "IN_PROGRESS"
	StatusCompleted  AppointmentStatus = "COMPLETED"
	StatusCancelled  AppointmentStatus = "CANCELLED"
	StatusNoShow     AppointmentStatus = "NO_SHOW"
)

// ActiveStatuses are the statuses that keep a time interval occupied.
// CANCELLED and NO_SHOW free the interval for rebooking.
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}

// IsTerminal reports whether no further transition is allowed from s.
func (s AppointmentStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Appointment represents a confirmed clinic visit record.
type Appointment struct {
	ID              string            `bson:"id" json:"id"`
	DoctorID        string            `bson:"doctorId" json:"doctorId"`
	PatientID       string            `bson:"patientId" json:"patientId"`
	Date            string            `bson:"date" json:"date"`   // "2006-01-02"
	Start           int               `bson:"start" json:"start"` // minutes from midnight
	DurationMinutes int               `bson:"durationMinutes" json:"durationMinutes"`
	ScheduledAt     time.Time         `bson:"scheduledAt" json:"scheduledAt"`
	Type            string            `bson:"type" json:"type"`
	Notes           string            `bson:"notes,omitempty" json:"notes,omitempty"`
	Status          AppointmentStatus `bson:"status" json:"status"`
	CreatedAt       time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// End returns the exclusive end of the occupied interval, in minutes from midnight.
func (a Appointment) End() int {
	return a.Start + a.DurationMinutes
}

// BookingRequest is the input to the booking flow. A zero DurationMinutes
// means "use the doctor's slot duration".
type BookingRequest struct {
	DoctorID        string
	PatientID       string
	ScheduledAt     time.Time
	DurationMinutes int
	Type            string
	Notes           string
}
