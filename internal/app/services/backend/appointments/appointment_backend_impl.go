package appointments

import (
	"context"
	"fmt"
	"net/url"
	"physiocare-client/internal/app/contracts"
	"physiocare-client/internal/app/models"
	"physiocare-client/internal/app/services/shared/httpclient"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/dto/responses"
	"physiocare-client/internal/pkg/exceptions"
	"physiocare-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentBackendClient struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewAppointmentBackendClient(client *httpclient.Client, logger *zap.Logger) contracts.AppointmentClient {
	return &appointmentBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *appointmentBackendClient) FindAppointmentsByPatientID(ctx context.Context, token, patientID string) (*responses.PatientAppointments, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("appointmentBackendClient.FindAppointmentsByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	response := new(responses.PatientAppointments)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.ResourceAppointmentsByPatient, url.PathEscape(patientID)),
		Token:    token,
		Resource: constvars.ResourceNameAppointment,
	}, response)
	if err != nil {
		c.Log.Error("appointmentBackendClient.FindAppointmentsByPatientID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("appointmentBackendClient.FindAppointmentsByPatientID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingFutureCountKey, len(response.Futuras)),
		zap.Int(constvars.LoggingPastCountKey, len(response.Pasadas)),
	)
	return response, nil
}

func (c *appointmentBackendClient) FindAppointmentByID(ctx context.Context, token, appointmentID string) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("appointmentBackendClient.FindAppointmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	response := new(responses.Appointment)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.ResourceAppointment, url.PathEscape(appointmentID)),
		Token:    token,
		Resource: constvars.ResourceNameAppointment,
	}, response)
	if err != nil {
		c.Log.Error("appointmentBackendClient.FindAppointmentByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if !response.Ok || response.Resultado == nil {
		c.Log.Error("appointmentBackendClient.FindAppointmentByID empty result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return nil, exceptions.ErrBackendNotOk(constvars.ErrClientAppointmentNotFound, constvars.ResourceNameAppointment)
	}

	c.Log.Info("appointmentBackendClient.FindAppointmentByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.Resultado.ID),
	)
	return response.Resultado, nil
}

func (c *appointmentBackendClient) FindAppointmentsByPhysioID(ctx context.Context, token, physioID string) ([]models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("appointmentBackendClient.FindAppointmentsByPhysioID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhysioIDKey, physioID),
	)

	response := new(responses.Appointments)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.ResourceAppointmentsByPhysio, url.PathEscape(physioID)),
		Token:    token,
		Resource: constvars.ResourceNameAppointment,
	}, response)
	if err != nil {
		c.Log.Error("appointmentBackendClient.FindAppointmentsByPhysioID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if !response.Ok || response.Resultado == nil {
		c.Log.Error("appointmentBackendClient.FindAppointmentsByPhysioID empty result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPhysioIDKey, physioID),
		)
		return nil, exceptions.ErrBackendNotOk(constvars.ErrClientNoPhysioAppointments, constvars.ResourceNameAppointment)
	}

	c.Log.Info("appointmentBackendClient.FindAppointmentsByPhysioID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(response.Resultado)),
	)
	return response.Resultado, nil
}

func (c *appointmentBackendClient) DeleteAppointmentByID(ctx context.Context, token, appointmentID string) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("appointmentBackendClient.DeleteAppointmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodDelete,
		Path:     fmt.Sprintf(constvars.ResourceAppointment, url.PathEscape(appointmentID)),
		Token:    token,
		Resource: constvars.ResourceNameAppointment,
	}, nil)
	if err != nil {
		c.Log.Error("appointmentBackendClient.DeleteAppointmentByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("appointmentBackendClient.DeleteAppointmentByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}
