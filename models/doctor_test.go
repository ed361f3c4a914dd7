package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilityTemplateValidate(t *testing.T) {
	valid := AvailabilityTemplate{
		WorkDays:            []string{"Monday", "Wednesday", "Friday"},
		DayStart:            540,
		DayEnd:              1020,
		SlotDurationMinutes: 30,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*AvailabilityTemplate)
	}{
		{"unknown weekday", func(tpl *AvailabilityTemplate) { tpl.WorkDays = []string{"Funday"} }},
		{"start after end", func(tpl *AvailabilityTemplate) { tpl.DayStart, tpl.DayEnd = 1020, 540 }},
		{"start equals end", func(tpl *AvailabilityTemplate) { tpl.DayEnd = tpl.DayStart }},
		{"negative start", func(tpl *AvailabilityTemplate) { tpl.DayStart = -10 }},
		{"end past midnight", func(tpl *AvailabilityTemplate) { tpl.DayEnd = 1441 }},
		{"zero duration", func(tpl *AvailabilityTemplate) { tpl.SlotDurationMinutes = 0 }},
		{"negative duration", func(tpl *AvailabilityTemplate) { tpl.SlotDurationMinutes = -15 }},
		{"duration exceeds window", func(tpl *AvailabilityTemplate) { tpl.SlotDurationMinutes = 600 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tpl := valid
			tpl.WorkDays = append([]string(nil), valid.WorkDays...)
			tc.mutate(&tpl)
			assert.Error(t, tpl.Validate())
		})
	}
}

func TestWorksOn(t *testing.T) {
	tpl := AvailabilityTemplate{WorkDays: []string{"Monday", "Thursday"}}
	assert.True(t, tpl.WorksOn("Monday"))
	assert.True(t, tpl.WorksOn("Thursday"))
	assert.False(t, tpl.WorksOn("Sunday"))
	assert.False(t, tpl.WorksOn("monday"))
}

func TestAppointmentStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusScheduled.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())
}
