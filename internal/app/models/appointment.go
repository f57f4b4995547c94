package models

type Appointment struct {
	ID            string `json:"_id"`
	Date          string `json:"date"`
	Diagnosis     string `json:"diagnosis,omitempty"`
	Observations  string `json:"observations,omitempty"`
	Treatment     string `json:"treatment,omitempty"`
	PhysioID      string `json:"physio"`
	PhysioName    string `json:"physioName,omitempty"`
	PhysioSurname string `json:"physioSurname,omitempty"`
}

// AppointmentPartition splits appointments around today's date.
type AppointmentPartition struct {
	Upcoming []Appointment
	Past     []Appointment
}
