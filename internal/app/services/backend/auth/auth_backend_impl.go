package auth

import (
	"context"
	"physiocare-client/internal/app/contracts"
	"physiocare-client/internal/app/services/shared/httpclient"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/dto/requests"
	"physiocare-client/internal/pkg/dto/responses"
	"physiocare-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type authBackendClient struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewAuthBackendClient(client *httpclient.Client, logger *zap.Logger) contracts.AuthClient {
	return &authBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *authBackendClient) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("authBackendClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := new(responses.Login)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodPost,
		Path:     constvars.ResourceLogin,
		Body:     request,
		Resource: constvars.ResourceNameLogin,
		Login:    true,
	}, response)
	if err != nil {
		c.Log.Error("authBackendClient.Login error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("authBackendClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, response.UserID),
		zap.String(constvars.LoggingRoleKey, response.Role),
	)
	return response, nil
}
