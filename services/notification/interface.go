package notification

import "context"

// NotificationService defines methods for sending FCM pushes to the two
// parties of an appointment. Delivery is best effort: a failed push is logged
// by the caller and never rolls back a booking.
type NotificationService interface {
	SendPatientPush(ctx context.Context, patientID, title, body string, data map[string]string) error
	SendDoctorPush(ctx context.Context, doctorID, title, body string, data map[string]string) error
}
