package scheduling

import "fmt"

// SchedulingError is a typed error carried across the booking flow so the
// transport layer can map it to a status code.
type SchedulingError struct {
	Code    string
	Message string
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrDoctorNotFound: the referenced doctor does not exist or is inactive.
	ErrDoctorNotFound = &SchedulingError{
		Code:    "doctorNotFound",
		Message: "referenced doctor does not exist or is inactive",
	}

	// ErrSlotUnavailable: the authoritative overlap check failed at booking
	// time. The caller should re-fetch fresh slots and retry with a
	// different time; the service never retries on its own.
	ErrSlotUnavailable = &SchedulingError{
		Code:    "slotUnavailable",
		Message: "requested time overlaps an existing appointment",
	}

	// ErrInvalidDuration: an explicit duration outside the 15-120 minute
	// bound. Rejected before any conflict check runs.
	ErrInvalidDuration = &SchedulingError{
		Code:    "invalidDuration",
		Message: "requested duration must be between 15 and 120 minutes",
	}

	// ErrInvalidTemplate: dayStart >= dayEnd or a non-positive slot
	// duration. Surfaced at profile-edit time; slot generation degrades to
	// an empty list instead.
	ErrInvalidTemplate = &SchedulingError{
		Code:    "invalidAvailabilityTemplate",
		Message: "availability template is invalid",
	}

	// ErrAppointmentNotFound: status update referenced an unknown appointment.
	ErrAppointmentNotFound = &SchedulingError{
		Code:    "appointmentNotFound",
		Message: "referenced appointment does not exist",
	}

	// ErrInvalidTransition: the requested status change is not allowed by
	// the appointment lifecycle.
	ErrInvalidTransition = &SchedulingError{
		Code:    "invalidStatusTransition",
		Message: "requested status transition is not allowed",
	}
)
