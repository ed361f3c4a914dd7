package scheduling

import "medibook/models"

// Overlaps reports whether the half-open intervals [start1, start1+duration1)
// and [start2, start2+duration2) intersect. Touching endpoints do not count:
// an appointment ending at 10:30 and one starting at 10:30 are both legal.
func Overlaps(start1, duration1, start2, duration2 int) bool {
	return start1 < start2+duration2 && start2 < start1+duration1
}

// HasConflict reports whether the proposed interval overlaps any of the
// existing appointments. Callers must pass only appointments that still occupy
// time, i.e. CANCELLED and NO_SHOW records are already filtered out; this
// function does not inspect status.
func HasConflict(start, duration int, existing []models.Appointment) bool {
	for _, appt := range existing {
		if Overlaps(start, duration, appt.Start, appt.DurationMinutes) {
			return true
		}
	}
	return false
}

// FilterAvailableSlots drops every candidate that overlaps an existing
// appointment, preserving the original order. Pure: applying it twice with the
// same inputs yields the same result.
func FilterAvailableSlots(slots []models.SlotCandidate, existing []models.Appointment) []models.SlotCandidate {
	available := make([]models.SlotCandidate, 0, len(slots))
	for _, slot := range slots {
		if !HasConflict(slot.Start, slot.DurationMinutes, existing) {
			available = append(available, slot)
		}
	}
	return available
}
