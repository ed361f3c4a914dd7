package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"medibook/config"
	"medibook/models"
	"medibook/services/notification"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		data := map[string]string{
			"reminderId":    p.ReminderID,
			"appointmentId": p.AppointmentID,
			"fireDate":      p.FireDate,
		}

		var err error
		switch p.Target {
		case "patient":
			err = notifSvc.SendPatientPush(ctx, p.ID, p.Title, p.Body, data)
		case "doctor":
			err = notifSvc.SendDoctorPush(ctx, p.ID, p.Title, p.Body, data)
		default:
			log.Printf("[ReminderHandler] unknown target type: %s", p.Target)
			return nil
		}

		if err != nil {
			log.Printf("[ReminderHandler] failed to send notification: %v", err)
		}
		return err
	}
}

// AsynqReminderScheduler enqueues reminder tasks at booking time, scheduled to
// fire shortly before the visit.
type AsynqReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewReminderScheduler builds a scheduler backed by the reminder queue.
func NewReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{
		client: client,
		lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
}

// ScheduleAppointmentReminder enqueues a reminder push for each party. A
// booking made inside the lead window simply gets no reminder.
func (s *AsynqReminderScheduler) ScheduleAppointmentReminder(ctx context.Context, appt *models.Appointment) error {
	fireAt := appt.ScheduledAt.Add(-s.lead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	when := fmt.Sprintf("%s at %s", appt.Date, models.FormatClock(appt.Start))
	payloads := []models.ReminderPayload{
		{
			ReminderID:    uuid.New().String(),
			AppointmentID: appt.ID,
			Target:        "patient",
			ID:            appt.PatientID,
			Title:         "Upcoming appointment",
			Body:          fmt.Sprintf("Reminder: your appointment is %s.", when),
			FireDate:      fireAt.Format(time.RFC3339),
		},
		{
			ReminderID:    uuid.New().String(),
			AppointmentID: appt.ID,
			Target:        "doctor",
			ID:            appt.DoctorID,
			Title:         "Upcoming appointment",
			Body:          fmt.Sprintf("Reminder: you have an appointment %s.", when),
			FireDate:      fireAt.Format(time.RFC3339),
		},
	}

	for _, p := range payloads {
		b, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal reminder payload: %w", err)
		}
		task := asynq.NewTask(TypeReminderSend, b)
		if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
			return fmt.Errorf("failed to enqueue reminder: %w", err)
		}
	}
	return nil
}
