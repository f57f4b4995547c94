package records

import (
	"context"
	"fmt"
	"net/url"
	"physiocare-client/internal/app/contracts"
	"physiocare-client/internal/app/services/shared/httpclient"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/dto/requests"
	"physiocare-client/internal/pkg/dto/responses"
	"physiocare-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type recordBackendClient struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewRecordBackendClient(client *httpclient.Client, logger *zap.Logger) contracts.RecordClient {
	return &recordBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *recordBackendClient) FindAll(ctx context.Context, token string) (*responses.Records, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("recordBackendClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := new(responses.Records)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.ResourceRecords,
		Token:    token,
		Resource: constvars.ResourceNameRecord,
	}, response)
	if err != nil {
		c.Log.Error("recordBackendClient.FindAll error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("recordBackendClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(response.Resultado)),
	)
	return response, nil
}

// FindRecordByPatientID answers a 404 with an error of kind exceptions.ErrKindNotFound.
func (c *recordBackendClient) FindRecordByPatientID(ctx context.Context, token, patientID string) (*responses.Record, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("recordBackendClient.FindRecordByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	response := new(responses.Record)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.ResourceRecordByPatient, url.PathEscape(patientID)),
		Token:    token,
		Resource: constvars.ResourceNameRecord,
	}, response)
	if err != nil {
		c.Log.Error("recordBackendClient.FindRecordByPatientID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("recordBackendClient.FindRecordByPatientID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("ok", response.Ok),
	)
	return response, nil
}

func (c *recordBackendClient) CreateAppointment(ctx context.Context, token, recordID string, request *requests.CreateAppointment) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("recordBackendClient.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
		zap.String(constvars.LoggingPhysioIDKey, request.PhysioID),
	)

	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodPost,
		Path:     fmt.Sprintf(constvars.ResourceRecordAppointments, url.PathEscape(recordID)),
		Token:    token,
		Body:     request,
		Resource: constvars.ResourceNameAppointment,
	}, nil)
	if err != nil {
		c.Log.Error("recordBackendClient.CreateAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, recordID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("recordBackendClient.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return nil
}
