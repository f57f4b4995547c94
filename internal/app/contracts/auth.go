package contracts

import (
	"context"
	"physiocare-client/internal/pkg/dto/requests"
	"physiocare-client/internal/pkg/dto/responses"
)

type AuthClient interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
}
