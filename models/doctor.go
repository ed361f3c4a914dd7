package models

import (
	"fmt"
	"time"
)

// minutesPerDay bounds the clock fields of an availability template.
const minutesPerDay = 24 * 60

var validWeekdays = map[string]bool{
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
	"Sunday":    true,
}

// AvailabilityTemplate describes a doctor's weekly consulting window.
// DayStart and DayEnd are minutes from midnight (e.g. 540 for 9:00 AM).
type AvailabilityTemplate struct {
	WorkDays            []string `bson:"workDays" json:"workDays"`
	DayStart            int      `bson:"dayStart" json:"dayStart"`
	DayEnd              int      `bson:"dayEnd" json:"dayEnd"`
	SlotDurationMinutes int      `bson:"slotDurationMinutes" json:"slotDurationMinutes"`
}

// Validate checks the template invariants. It is enforced when a doctor or
// admin edits the profile; slot generation treats a bad template as "no slots"
// instead of failing.
func (t AvailabilityTemplate) Validate() error {
	for _, d := range t.WorkDays {
		if !validWeekdays[d] {
			return fmt.Errorf("unknown weekday %q", d)
		}
	}
	if t.DayStart < 0 || t.DayEnd > minutesPerDay {
		return fmt.Errorf("day window [%d, %d] outside a single day", t.DayStart, t.DayEnd)
	}
	if t.DayStart >= t.DayEnd {
		return fmt.Errorf("dayStart %d must be before dayEnd %d", t.DayStart, t.DayEnd)
	}
	if t.SlotDurationMinutes <= 0 {
		return fmt.Errorf("slot duration must be positive, got %d", t.SlotDurationMinutes)
	}
	if t.SlotDurationMinutes > t.DayEnd-t.DayStart {
		return fmt.Errorf("slot duration %d exceeds the day window", t.SlotDurationMinutes)
	}
	return nil
}

// WorksOn reports whether the weekday name (e.g. "Monday") is a working day.
func (t AvailabilityTemplate) WorksOn(weekday string) bool {
	for _, d := range t.WorkDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// Doctor represents a clinic doctor and the availability template they own.
type Doctor struct {
	ID           string               `bson:"id" json:"id"`
	Name         string               `bson:"name" json:"name"`
	Email        string               `bson:"email" json:"email"`
	PhoneNumber  string               `bson:"phoneNumber" json:"phoneNumber"`
	Specialty    string               `bson:"specialty" json:"specialty"`
	Availability AvailabilityTemplate `bson:"availability" json:"availability"`
	FCMToken     string               `bson:"fcmToken,omitempty" json:"-"`
	Active       bool                 `bson:"active" json:"active"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}
