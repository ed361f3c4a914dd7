package notification

import (
	"context"
	"fmt"

	doctorRepo "medibook/database/repository/doctor"
	patientRepo "medibook/database/repository/patient"
	"medibook/utils"

	"firebase.google.com/go/v4/messaging"
)

// DefaultNotificationService is the production implementation, pushing through
// Firebase Cloud Messaging.
type DefaultNotificationService struct {
	Patients patientRepo.PatientRepository
	Doctors  doctorRepo.DoctorRepository
}

func NewDefaultNotificationService(
	patients patientRepo.PatientRepository,
	doctors doctorRepo.DoctorRepository,
) (*DefaultNotificationService, error) {
	if patients == nil || doctors == nil {
		return nil, fmt.Errorf("notification service initialization error: patient or doctor repository is nil")
	}
	return &DefaultNotificationService{
		Patients: patients,
		Doctors:  doctors,
	}, nil
}

// SendPatientPush looks up a patient's FCM token and sends a push.
func (s *DefaultNotificationService) SendPatientPush(
	ctx context.Context,
	patientID, title, body string,
	data map[string]string,
) error {
	p, err := s.Patients.GetByID(ctx, patientID)
	if err != nil {
		return fmt.Errorf("SendPatientPush: could not find patient %s: %w", patientID, err)
	}
	if p.FCMToken == "" {
		// No registered device; nothing to deliver.
		return nil
	}
	return s.send(ctx, p.FCMToken, title, body, withRole(data, "patient"))
}

// SendDoctorPush looks up a doctor's FCM token and sends a push.
func (s *DefaultNotificationService) SendDoctorPush(
	ctx context.Context,
	doctorID, title, body string,
	data map[string]string,
) error {
	d, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		return fmt.Errorf("SendDoctorPush: could not find doctor %s: %w", doctorID, err)
	}
	if d.FCMToken == "" {
		return nil
	}
	return s.send(ctx, d.FCMToken, title, body, withRole(data, "doctor"))
}

func (s *DefaultNotificationService) send(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}

func withRole(data map[string]string, role string) map[string]string {
	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = role
	}
	return data
}
