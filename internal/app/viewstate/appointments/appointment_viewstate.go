// Package appointments holds the appointment lists shown to patients and physios.
package appointments

import (
	"context"
	"errors"
	"fmt"
	"physiocare-client/internal/app/contracts"
	"physiocare-client/internal/app/models"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/dto/requests"
	"physiocare-client/internal/pkg/exceptions"
	"physiocare-client/internal/pkg/lifecycle"
	"physiocare-client/internal/pkg/observable"
	"physiocare-client/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type AppointmentViewState struct {
	Repository contracts.PhysioCareRepository
	Log        *zap.Logger
	Now        func() time.Time

	scope        *lifecycle.Scope
	future       *observable.Value[[]models.Appointment]
	past         *observable.Value[[]models.Appointment]
	appointments *observable.Value[[]models.Appointment]
	errorMessage *observable.Value[string]
	loading      *observable.Value[bool]
}

func NewAppointmentViewState(ctx context.Context, repository contracts.PhysioCareRepository, logger *zap.Logger) *AppointmentViewState {
	return &AppointmentViewState{
		Repository:   repository,
		Log:          logger,
		Now:          time.Now,
		scope:        lifecycle.NewScope(ctx),
		future:       observable.NewValue[[]models.Appointment](nil),
		past:         observable.NewValue[[]models.Appointment](nil),
		appointments: observable.NewValue[[]models.Appointment](nil),
		errorMessage: observable.NewValue(""),
		loading:      observable.NewValue(false),
	}
}

func (vs *AppointmentViewState) FutureAppointments() observable.Observable[[]models.Appointment] {
	return vs.future
}

func (vs *AppointmentViewState) PastAppointments() observable.Observable[[]models.Appointment] {
	return vs.past
}

// Appointments is the flat list of the physio flow.
func (vs *AppointmentViewState) Appointments() observable.Observable[[]models.Appointment] {
	return vs.appointments
}

// Error is empty when there is nothing to report.
func (vs *AppointmentViewState) Error() observable.Observable[string] {
	return vs.errorMessage
}

func (vs *AppointmentViewState) Loading() observable.Observable[bool] {
	return vs.loading
}

// Partition splits the flat physio list around today.
func (vs *AppointmentViewState) Partition() models.AppointmentPartition {
	return utils.PartitionAppointments(vs.appointments.Get(), vs.Now())
}

func (vs *AppointmentViewState) ClearError() {
	vs.scope.Commit(func() { vs.errorMessage.Set("") })
}

func (vs *AppointmentViewState) Wait() {
	vs.scope.Wait()
}

func (vs *AppointmentViewState) Close() {
	vs.scope.Close()
}

// FetchAppointmentsByPatient loads the patient's record, then the appointments the
// backend already split into future and past.
func (vs *AppointmentViewState) FetchAppointmentsByPatient(patientID string) {
	vs.scope.Launch(func(ctx context.Context) {
		vs.setLoading(true)
		defer vs.setLoading(false)
		vs.fetchAppointmentsByPatient(ctx, patientID)
	})
}

func (vs *AppointmentViewState) fetchAppointmentsByPatient(ctx context.Context, patientID string) {
	ctx, requestID := utils.WithRequestID(ctx)
	vs.Log.Info("AppointmentViewState.FetchAppointmentsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	record, err := vs.Repository.FindRecordByPatientID(ctx, patientID)
	if err != nil {
		if errors.Is(err, exceptions.ErrKindNotFound) {
			vs.commitPatientResult(nil, nil, constvars.MessageNoMedicalRecord)
			return
		}
		vs.commitPatientResult(nil, nil, exceptions.ClientMessage(err))
		return
	}
	if !record.Ok {
		vs.commitPatientResult(nil, nil, constvars.MessageNoMedicalRecord)
		return
	}

	response, err := vs.Repository.FindAppointmentsByPatientID(ctx, patientID)
	if err != nil {
		vs.commitPatientResult(nil, nil, exceptions.ClientMessage(err))
		return
	}
	if !response.Ok {
		vs.commitPatientResult(nil, nil, constvars.MessageCouldNotFetchAppointments)
		return
	}

	message := ""
	switch {
	case len(response.Futuras) == 0 && len(response.Pasadas) == 0:
		message = constvars.MessageNoAppointmentsRegistered
	case len(response.Futuras) == 0:
		message = constvars.MessageNoUpcomingAppointments
	}

	vs.Log.Info("AppointmentViewState.FetchAppointmentsByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingFutureCountKey, len(response.Futuras)),
		zap.Int(constvars.LoggingPastCountKey, len(response.Pasadas)),
	)
	vs.commitPatientResult(response.Futuras, response.Pasadas, message)
}

func (vs *AppointmentViewState) commitPatientResult(future, past []models.Appointment, message string) {
	vs.scope.Commit(func() {
		vs.future.Set(future)
		vs.past.Set(past)
		vs.errorMessage.Set(message)
	})
}

// LoadAppointmentsForPhysio replaces the flat list. A failure clears it.
func (vs *AppointmentViewState) LoadAppointmentsForPhysio(physioID string) {
	vs.scope.Launch(func(ctx context.Context) {
		vs.setLoading(true)
		defer vs.setLoading(false)
		vs.loadAppointmentsForPhysio(ctx, physioID)
	})
}

func (vs *AppointmentViewState) loadAppointmentsForPhysio(ctx context.Context, physioID string) {
	ctx, requestID := utils.WithRequestID(ctx)
	vs.Log.Info("AppointmentViewState.LoadAppointmentsForPhysio called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhysioIDKey, physioID),
	)
	vs.scope.Commit(func() { vs.errorMessage.Set("") })

	appointments, err := vs.Repository.FindAppointmentsByPhysioID(ctx, physioID)
	if err != nil {
		vs.scope.Commit(func() {
			vs.appointments.Set(nil)
			vs.errorMessage.Set(exceptions.ClientMessage(err))
		})
		return
	}

	vs.scope.Commit(func() { vs.appointments.Set(appointments) })
}

// DeleteAppointmentByID reloads the physio list only when the delete succeeded.
func (vs *AppointmentViewState) DeleteAppointmentByID(appointmentID, physioID string) {
	vs.scope.Launch(func(ctx context.Context) {
		vs.setLoading(true)
		defer vs.setLoading(false)

		ctx, requestID := utils.WithRequestID(ctx)
		vs.Log.Info("AppointmentViewState.DeleteAppointmentByID called",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		vs.scope.Commit(func() { vs.errorMessage.Set("") })

		err := vs.Repository.DeleteAppointmentByID(ctx, appointmentID)
		if err != nil {
			vs.scope.Commit(func() {
				vs.errorMessage.Set(fmt.Sprintf(constvars.MessageCouldNotDelete, exceptions.ClientMessage(err)))
			})
			return
		}

		vs.loadAppointmentsForPhysio(ctx, physioID)
	})
}

func (vs *AppointmentViewState) Physios(ctx context.Context) ([]models.Physio, error) {
	return vs.Repository.FindAllPhysios(ctx)
}

func (vs *AppointmentViewState) CreateAppointment(ctx context.Context, recordID, physioID, diagnosis, treatment, observations, date string) error {
	return vs.Repository.CreateAppointment(ctx, recordID, &requests.CreateAppointment{
		PhysioID:     physioID,
		Diagnosis:    diagnosis,
		Treatment:    treatment,
		Observations: observations,
		Date:         date,
	})
}

func (vs *AppointmentViewState) setLoading(loading bool) {
	vs.scope.Commit(func() { vs.loading.Set(loading) })
}
