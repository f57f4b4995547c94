package contracts

import (
	"context"
	"physiocare-client/internal/app/models"
	"physiocare-client/internal/pkg/dto/responses"
)

type AppointmentClient interface {
	FindAppointmentsByPatientID(ctx context.Context, token, patientID string) (*responses.PatientAppointments, error)
	FindAppointmentByID(ctx context.Context, token, appointmentID string) (*models.Appointment, error)
	FindAppointmentsByPhysioID(ctx context.Context, token, physioID string) ([]models.Appointment, error)
	DeleteAppointmentByID(ctx context.Context, token, appointmentID string) error
}
