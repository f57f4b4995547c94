package contracts

import (
	"context"
	"physiocare-client/internal/app/models"
)

type PhysioClient interface {
	FindAll(ctx context.Context, token string) ([]models.Physio, error)
}
