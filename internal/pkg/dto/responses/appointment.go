package responses

import "physiocare-client/internal/app/models"

// PatientAppointments is already split by the server into futuras and pasadas.
type PatientAppointments struct {
	Ok      bool                 `json:"ok"`
	Futuras []models.Appointment `json:"futuras"`
	Pasadas []models.Appointment `json:"pasadas"`
}

type Appointment struct {
	Ok        bool                `json:"ok"`
	Resultado *models.Appointment `json:"resultado"`
}

type Appointments struct {
	Ok        bool                 `json:"ok"`
	Resultado []models.Appointment `json:"resultado"`
}
