package scheduling

import "medibook/models"

// allowedTransitions encodes the appointment lifecycle:
// SCHEDULED -> CONFIRMED | CANCELLED
// CONFIRMED -> IN_PROGRESS | CANCELLED | NO_SHOW
// IN_PROGRESS -> COMPLETED
// COMPLETED, CANCELLED and NO_SHOW are terminal.
var allowedTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.StatusScheduled:  {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:  {models.StatusInProgress, models.StatusCancelled, models.StatusNoShow},
	models.StatusInProgress: {models.StatusCompleted},
}

// CanTransition reports whether the status change is allowed. CANCELLED is
// additionally reachable from any non-terminal state as an administrative
// override; role checks for that override belong to the authorization layer,
// not here.
func CanTransition(from, to models.AppointmentStatus) bool {
	if to == models.StatusCancelled {
		return !from.IsTerminal()
	}
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
