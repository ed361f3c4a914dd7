package scheduling

import (
	"testing"

	"medibook/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.AppointmentStatus
		want     bool
	}{
		{models.StatusScheduled, models.StatusConfirmed, true},
		{models.StatusScheduled, models.StatusCancelled, true},
		{models.StatusScheduled, models.StatusInProgress, false},
		{models.StatusScheduled, models.StatusCompleted, false},
		{models.StatusScheduled, models.StatusNoShow, false},

		{models.StatusConfirmed, models.StatusInProgress, true},
		{models.StatusConfirmed, models.StatusCancelled, true},
		{models.StatusConfirmed, models.StatusNoShow, true},
		{models.StatusConfirmed, models.StatusCompleted, false},

		{models.StatusInProgress, models.StatusCompleted, true},
		// Administrative cancel of an in-progress visit.
		{models.StatusInProgress, models.StatusCancelled, true},
		{models.StatusInProgress, models.StatusNoShow, false},

		// Terminal states accept nothing.
		{models.StatusCompleted, models.StatusCancelled, false},
		{models.StatusCompleted, models.StatusScheduled, false},
		{models.StatusCancelled, models.StatusScheduled, false},
		{models.StatusCancelled, models.StatusCancelled, false},
		{models.StatusNoShow, models.StatusCancelled, false},
	}
	for _, tc := range tests {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}
