package scheduling

import (
	"time"

	"medibook/models"
)

const dateLayout = "2006-01-02"

// GenerateSlots computes the ordered candidate start times for one doctor and
// one calendar date. It is a pure function: same template and date always
// produce the same slots, in ascending order, with a fixed stride equal to the
// slot duration. A trailing window shorter than one slot is dropped, so no
// candidate ever extends past DayEnd.
//
// A date outside the template's work days yields an empty result, as does an
// invalid template or an unparseable date: slot listing stays resilient and
// template problems are reported at profile-edit time instead.
func GenerateSlots(template models.AvailabilityTemplate, date string) []models.SlotCandidate {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil
	}
	if template.Validate() != nil {
		return nil
	}
	if !template.WorksOn(day.Weekday().String()) {
		return nil
	}

	var slots []models.SlotCandidate
	for cursor := template.DayStart; cursor+template.SlotDurationMinutes <= template.DayEnd; cursor += template.SlotDurationMinutes {
		slots = append(slots, models.SlotCandidate{
			Start:           cursor,
			DurationMinutes: template.SlotDurationMinutes,
		})
	}
	return slots
}
