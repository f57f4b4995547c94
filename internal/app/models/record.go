package models

import "strings"

// Record is a patient's medical record (expediente) with its embedded appointments.
type Record struct {
	ID            string        `json:"_id"`
	Patient       Patient       `json:"patient"`
	MedicalRecord string        `json:"medicalRecord,omitempty"`
	Appointments  []Appointment `json:"appointments"`
}

type Patient struct {
	ID              string `json:"_id"`
	Name            string `json:"name,omitempty"`
	Surname         string `json:"surname,omitempty"`
	BirthDate       string `json:"birthDate,omitempty"`
	Address         string `json:"address,omitempty"`
	InsuranceNumber string `json:"insuranceNumber,omitempty"`
	LinkedUserID    string `json:"userID,omitempty"`
}

func (p Patient) FullName() string {
	return strings.TrimSpace(p.Name + " " + p.Surname)
}

// MatchesQuery reports whether name or surname contains query, ignoring case.
func (p Patient) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Surname), q)
}
