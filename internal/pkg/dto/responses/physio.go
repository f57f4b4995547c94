package responses

import "physiocare-client/internal/app/models"

type Physios struct {
	Ok        bool            `json:"ok"`
	Resultado []models.Physio `json:"resultado"`
}
