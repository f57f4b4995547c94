package requests

// CreateAppointment is the body of POST /records/{id}/appointments.
type CreateAppointment struct {
	PhysioID     string `json:"physio" validate:"required"`
	Diagnosis    string `json:"diagnosis"`
	Treatment    string `json:"treatment"`
	Observations string `json:"observations"`
	Date         string `json:"date" validate:"required,appointment_date"`
}
