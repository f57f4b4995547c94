package responses

import "physiocare-client/internal/app/models"

type Records struct {
	Ok        bool            `json:"ok"`
	Resultado []models.Record `json:"resultado"`
}

type Record struct {
	Ok        bool           `json:"ok"`
	Resultado *models.Record `json:"resultado"`
}
