package models

type Physio struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	Specialty     string `json:"specialty"`
	LicenseNumber string `json:"licenseNumber"`
	LinkedUserID  string `json:"userID,omitempty"`
}

func (p Physio) FullName() string {
	return p.Name + " " + p.Surname
}
