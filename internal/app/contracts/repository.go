package contracts

import (
	"context"
	"physiocare-client/internal/app/models"
	"physiocare-client/internal/pkg/dto/requests"
	"physiocare-client/internal/pkg/dto/responses"
)

// PhysioCareRepository injects the stored token into every backend call.
// Authenticated methods fail before any request when no usable token is stored.
type PhysioCareRepository interface {
	Login(ctx context.Context, username, password string) (*responses.Login, error)
	Logout(ctx context.Context) error
	Session() models.Session
	SubscribeSession(fn func(models.Session)) (unsubscribe func())

	FindAllRecords(ctx context.Context) (*responses.Records, error)
	FindRecordByPatientID(ctx context.Context, patientID string) (*responses.Record, error)
	FindAppointmentsByPatientID(ctx context.Context, patientID string) (*responses.PatientAppointments, error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAppointmentsByPhysioID(ctx context.Context, physioID string) ([]models.Appointment, error)
	DeleteAppointmentByID(ctx context.Context, appointmentID string) error
	FindAllPhysios(ctx context.Context) ([]models.Physio, error)
	CreateAppointment(ctx context.Context, recordID string, request *requests.CreateAppointment) error
}
