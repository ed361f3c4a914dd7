package scheduling

import (
	"testing"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                 string
		start1, d1, start2, d2 int
		want                 bool
	}{
		{"identical intervals", 540, 30, 540, 30, true},
		{"partial overlap", 540, 30, 555, 30, true},
		{"contained interval", 540, 60, 555, 15, true},
		{"touching endpoints", 540, 30, 570, 30, false},
		{"disjoint", 540, 30, 600, 30, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.start1, tc.d1, tc.start2, tc.d2))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, Overlaps(tc.start2, tc.d2, tc.start1, tc.d1))
		})
	}
}

func TestHasConflict(t *testing.T) {
	existing := []models.Appointment{
		{Start: 540, DurationMinutes: 30},
		{Start: 630, DurationMinutes: 45},
	}

	assert.True(t, HasConflict(555, 30, existing))
	assert.True(t, HasConflict(660, 15, existing))
	assert.False(t, HasConflict(570, 30, existing))
	assert.False(t, HasConflict(570, 60, existing))
	assert.False(t, HasConflict(555, 30, nil))
}

func TestFilterAvailableSlots(t *testing.T) {
	slots := GenerateSlots(weekdayTemplate(), "2024-01-01")
	existing := []models.Appointment{
		{Start: 540, DurationMinutes: 30},  // takes 09:00
		{Start: 615, DurationMinutes: 30},  // straddles 10:00 and 10:30
	}

	available := FilterAvailableSlots(slots, existing)
	require.Len(t, available, 13)
	for _, s := range available {
		assert.NotEqual(t, 540, s.Start)
		assert.NotEqual(t, 600, s.Start)
		assert.NotEqual(t, 630, s.Start)
	}

	// Order is preserved.
	for i := 1; i < len(available); i++ {
		assert.Greater(t, available[i].Start, available[i-1].Start)
	}

	// Filtering is idempotent.
	assert.Equal(t, available, FilterAvailableSlots(available, existing))
}

func TestFilterAvailableSlotsNoConflicts(t *testing.T) {
	slots := GenerateSlots(weekdayTemplate(), "2024-01-01")
	assert.Equal(t, slots, FilterAvailableSlots(slots, nil))
}
