package physios

import (
	"context"
	"physiocare-client/internal/app/contracts"
	"physiocare-client/internal/app/models"
	"physiocare-client/internal/app/services/shared/httpclient"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/dto/responses"
	"physiocare-client/internal/pkg/exceptions"
	"physiocare-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type physioBackendClient struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewPhysioBackendClient(client *httpclient.Client, logger *zap.Logger) contracts.PhysioClient {
	return &physioBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *physioBackendClient) FindAll(ctx context.Context, token string) ([]models.Physio, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("physioBackendClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := new(responses.Physios)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.ResourcePhysios,
		Token:    token,
		Resource: constvars.ResourceNamePhysio,
	}, response)
	if err != nil {
		c.Log.Error("physioBackendClient.FindAll error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if !response.Ok || response.Resultado == nil {
		c.Log.Error("physioBackendClient.FindAll empty result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrBackendNotOk(constvars.ErrClientNoPhysios, constvars.ResourceNamePhysio)
	}

	c.Log.Info("physioBackendClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPhysioCountKey, len(response.Resultado)),
	)
	return response.Resultado, nil
}
