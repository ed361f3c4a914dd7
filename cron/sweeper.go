package cron

import (
	"context"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartNoShowSweeper runs a nightly job that marks CONFIRMED appointments
// whose interval has passed without being actioned as NO_SHOW, freeing the
// record from the active set.
func StartNoShowSweeper(repo appointmentRepo.AppointmentRepository) *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("30 0 * * *", func() { sweepNoShows(repo) }); err != nil {
		utils.GetLogger().Error("failed to register no-show sweeper", zap.Error(err))
		return c
	}
	c.Start()
	return c
}

func sweepNoShows(repo appointmentRepo.AppointmentRepository) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stale, err := repo.ListConfirmedEndedBefore(ctx, time.Now())
	if err != nil {
		logger.Error("no-show sweep query failed", zap.Error(err))
		return
	}
	for _, appt := range stale {
		if err := repo.UpdateStatus(ctx, appt.ID, models.StatusNoShow); err != nil {
			logger.Error("failed to mark appointment as no-show",
				zap.String("appointmentID", appt.ID), zap.Error(err))
			continue
		}
	}
	if len(stale) > 0 {
		logger.Info("no-show sweep complete", zap.Int("marked", len(stale)))
	}
}
