package utils

import (
	"physiocare-client/internal/app/models"
	"physiocare-client/internal/pkg/constvars"
	"strings"
	"time"
)

// ParseAppointmentInstant parses an ISO-8601 timestamp, with or without offset.
func ParseAppointmentInstant(date string) (time.Time, error) {
	return time.Parse(time.RFC3339, strings.TrimSpace(date))
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PartitionAppointments classifies appointments against the calendar date of today.
// The appointment side uses the UTC calendar date of its instant. Unparseable dates
// land in neither list.
func PartitionAppointments(appointments []models.Appointment, today time.Time) models.AppointmentPartition {
	partition := models.AppointmentPartition{
		Upcoming: make([]models.Appointment, 0, len(appointments)),
		Past:     make([]models.Appointment, 0, len(appointments)),
	}

	todayDate := calendarDate(today)
	for _, appointment := range appointments {
		instant, err := ParseAppointmentInstant(appointment.Date)
		if err != nil {
			continue
		}
		if calendarDate(instant.UTC()).Before(todayDate) {
			partition.Past = append(partition.Past, appointment)
		} else {
			partition.Upcoming = append(partition.Upcoming, appointment)
		}
	}
	return partition
}

// FormatAppointmentDate renders the UTC calendar date as dd/MM/yyyy.
func FormatAppointmentDate(date string) string {
	if strings.TrimSpace(date) == "" {
		return constvars.ResponseUnknown
	}
	instant, err := ParseAppointmentInstant(date)
	if err != nil {
		return constvars.MessageInvalidDate
	}
	return instant.UTC().Format(constvars.DisplayDateFormat)
}

// FormatBirthDate keeps the date part of an ISO timestamp.
func FormatBirthDate(birthDate string) string {
	if len(birthDate) > 10 {
		return birthDate[:10]
	}
	return birthDate
}
