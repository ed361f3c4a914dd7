package models

// SlotCandidate is an ephemeral bookable start time computed from a doctor's
// availability template. Candidates are never persisted; they are recomputed
// on every query.
type SlotCandidate struct {
	Start           int `json:"start"` // minutes from midnight
	DurationMinutes int `json:"durationMinutes"`
}

// End returns the exclusive end of the candidate interval.
func (s SlotCandidate) End() int {
	return s.Start + s.DurationMinutes
}

// AvailableSlotView is the API shape of a free slot, with the start rendered
// as a wall clock time alongside the raw minute offset.
type AvailableSlotView struct {
	Start           int    `json:"start"`
	StartTime       string `json:"startTime"` // "09:00"
	DurationMinutes int    `json:"durationMinutes"`
	Date            string `json:"date"`
}
