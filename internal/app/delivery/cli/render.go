package cli

import (
	"fmt"
	"io"
	"physiocare-client/internal/app/models"
	"physiocare-client/internal/app/viewstate/records"
	"physiocare-client/internal/pkg/utils"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	return table
}

func renderAppointments(out io.Writer, appointments []models.Appointment) {
	table := newTable(out, "ID", "Date", "Diagnosis", "Treatment", "Physio")
	for _, appointment := range appointments {
		table.Append([]string{
			appointment.ID,
			utils.FormatAppointmentDate(appointment.Date),
			appointment.Diagnosis,
			appointment.Treatment,
			physioLabel(appointment),
		})
	}
	table.Render()
}

func physioLabel(appointment models.Appointment) string {
	if appointment.PhysioName != "" {
		return appointment.PhysioName + " " + appointment.PhysioSurname
	}
	return appointment.PhysioID
}

func renderAppointment(out io.Writer, appointment *models.Appointment, formattedDate string) {
	fmt.Fprintf(out, "ID:           %s\n", appointment.ID)
	fmt.Fprintf(out, "Date:         %s\n", formattedDate)
	fmt.Fprintf(out, "Physio:       %s\n", physioLabel(*appointment))
	fmt.Fprintf(out, "Diagnosis:    %s\n", appointment.Diagnosis)
	fmt.Fprintf(out, "Treatment:    %s\n", appointment.Treatment)
	fmt.Fprintf(out, "Observations: %s\n", appointment.Observations)
}

func renderRecords(out io.Writer, list []models.Record) {
	table := newTable(out, "Patient ID", "Name", "Birth date", "Insurance", "Appointments")
	for _, record := range list {
		table.Append([]string{
			record.Patient.ID,
			record.Patient.FullName(),
			utils.FormatBirthDate(record.Patient.BirthDate),
			record.Patient.InsuranceNumber,
			strconv.Itoa(len(record.Appointments)),
		})
	}
	table.Render()
}

func renderRecordDetail(out io.Writer, detail *records.RecordDetail) {
	patient := detail.Record.Patient
	fmt.Fprintf(out, "Record:    %s\n", detail.Record.ID)
	fmt.Fprintf(out, "Patient:   %s (%s)\n", patient.FullName(), patient.ID)
	fmt.Fprintf(out, "Birth:     %s\n", utils.FormatBirthDate(patient.BirthDate))
	fmt.Fprintf(out, "Address:   %s\n", patient.Address)
	fmt.Fprintf(out, "Insurance: %s\n", patient.InsuranceNumber)
	fmt.Fprintf(out, "History:   %s\n\n", detail.Record.MedicalRecord)

	table := newTable(out, "ID", "Date", "Physio", "Diagnosis", "Treatment")
	for _, appointment := range detail.Appointments {
		table.Append([]string{
			appointment.ID,
			appointment.DisplayDate,
			appointment.PhysioFullName,
			appointment.Diagnosis,
			appointment.Treatment,
		})
	}
	table.Render()
}

func renderPhysios(out io.Writer, physios []models.Physio) {
	table := newTable(out, "ID", "Name", "Specialty", "License")
	for _, physio := range physios {
		table.Append([]string{physio.ID, physio.FullName(), physio.Specialty, physio.LicenseNumber})
	}
	table.Render()
}
