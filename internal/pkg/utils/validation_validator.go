package utils

import (
	"physiocare-client/internal/pkg/constvars"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("appointment_date", validateAppointmentDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateAppointmentDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if _, err := time.Parse(constvars.RequestDateFormat, value); err == nil {
		return true
	}
	_, err := ParseAppointmentInstant(value)
	return err == nil
}
