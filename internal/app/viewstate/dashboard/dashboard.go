// Package dashboard picks what the main screen loads for the signed in role.
package dashboard

import (
	"context"
	"physiocare-client/internal/app/contracts"
	"physiocare-client/internal/app/models"
	"physiocare-client/internal/app/viewstate/appointments"
	"physiocare-client/internal/app/viewstate/records"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/observable"

	"go.uber.org/zap"
)

type View string

const (
	ViewAppointments View = "appointments"
	ViewRecords      View = "records"
)

// Mode tells the screen which list it should render.
type Mode string

const (
	ModeNone                Mode = ""
	ModePatientAppointments Mode = "patient_appointments"
	ModePhysioAppointments  Mode = "physio_appointments"
	ModeRecords             Mode = "records"
)

type Dashboard struct {
	Repository   contracts.PhysioCareRepository
	Log          *zap.Logger
	Appointments *appointments.AppointmentViewState
	Records      *records.RecordViewState

	mode        *observable.Value[Mode]
	message     *observable.Value[string]
	unsubscribe func()
}

func NewDashboard(ctx context.Context, repository contracts.PhysioCareRepository, logger *zap.Logger) *Dashboard {
	d := &Dashboard{
		Repository:   repository,
		Log:          logger,
		Appointments: appointments.NewAppointmentViewState(ctx, repository, logger),
		Records:      records.NewRecordViewState(ctx, repository, logger),
		mode:         observable.NewValue(ModeNone),
		message:      observable.NewValue(""),
	}

	wasAuthenticated := repository.Session().IsAuthenticated()
	d.unsubscribe = repository.SubscribeSession(func(session models.Session) {
		if wasAuthenticated && !session.IsAuthenticated() && d.mode.Get() != ModeNone {
			d.Log.Info("Dashboard session closed while a view was loaded")
			d.message.Set(constvars.ErrClientSessionClosed)
		}
		wasAuthenticated = session.IsAuthenticated()
	})
	return d
}

func (d *Dashboard) Mode() observable.Observable[Mode] {
	return d.mode
}

// Message reports session level problems. List level problems live in the holders.
func (d *Dashboard) Message() observable.Observable[string] {
	return d.message
}

// Load starts the fetch that matches the stored role and the requested view.
func (d *Dashboard) Load(view View) {
	session := d.Repository.Session()
	d.message.Set("")

	if !session.IsAuthenticated() {
		d.mode.Set(ModeNone)
		d.message.Set(constvars.ErrClientNotLoggedIn)
		return
	}

	d.Log.Info("Dashboard.Load called",
		zap.String(constvars.LoggingRoleKey, string(session.Role)),
		zap.String("view", string(view)),
	)

	switch {
	case session.IsPatient():
		d.mode.Set(ModePatientAppointments)
		d.Appointments.FetchAppointmentsByPatient(session.UserID)
	case session.IsPhysio() && view == ViewRecords:
		d.mode.Set(ModeRecords)
		d.Records.LoadAllRecords()
	case session.IsPhysio():
		d.mode.Set(ModePhysioAppointments)
		d.Appointments.LoadAppointmentsForPhysio(session.UserID)
	default:
		d.mode.Set(ModeNone)
		d.message.Set(constvars.ErrClientNotAuthorized)
	}
}

func (d *Dashboard) Wait() {
	d.Appointments.Wait()
	d.Records.Wait()
}

func (d *Dashboard) Close() {
	d.unsubscribe()
	d.Appointments.Close()
	d.Records.Close()
}
