package contracts

import (
	"context"
	"physiocare-client/internal/pkg/dto/requests"
	"physiocare-client/internal/pkg/dto/responses"
)

type RecordClient interface {
	FindAll(ctx context.Context, token string) (*responses.Records, error)
	FindRecordByPatientID(ctx context.Context, token, patientID string) (*responses.Record, error)
	CreateAppointment(ctx context.Context, token, recordID string, request *requests.CreateAppointment) error
}
