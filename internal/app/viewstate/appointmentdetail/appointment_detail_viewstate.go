package appointmentdetail

import (
	"context"
	"physiocare-client/internal/app/contracts"
	"physiocare-client/internal/app/models"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/lifecycle"
	"physiocare-client/internal/pkg/observable"
	"physiocare-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type AppointmentDetailViewState struct {
	Repository contracts.PhysioCareRepository
	Log        *zap.Logger

	scope        *lifecycle.Scope
	appointment  *observable.Value[*models.Appointment]
	errorMessage *observable.Value[string]
}

func NewAppointmentDetailViewState(ctx context.Context, repository contracts.PhysioCareRepository, logger *zap.Logger) *AppointmentDetailViewState {
	return &AppointmentDetailViewState{
		Repository:   repository,
		Log:          logger,
		scope:        lifecycle.NewScope(ctx),
		appointment:  observable.NewValue[*models.Appointment](nil),
		errorMessage: observable.NewValue(""),
	}
}

func (vs *AppointmentDetailViewState) Appointment() observable.Observable[*models.Appointment] {
	return vs.appointment
}

func (vs *AppointmentDetailViewState) Error() observable.Observable[string] {
	return vs.errorMessage
}

// FormattedDate renders the loaded appointment date as dd/MM/yyyy.
func (vs *AppointmentDetailViewState) FormattedDate() string {
	appointment := vs.appointment.Get()
	if appointment == nil {
		return constvars.ResponseUnknown
	}
	return utils.FormatAppointmentDate(appointment.Date)
}

func (vs *AppointmentDetailViewState) LoadAppointment(appointmentID string) {
	vs.scope.Launch(func(ctx context.Context) {
		ctx, requestID := utils.WithRequestID(ctx)
		vs.Log.Info("AppointmentDetailViewState.LoadAppointment called",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		)

		appointment, err := vs.Repository.FindAppointmentByID(ctx, appointmentID)
		if err != nil {
			vs.Log.Error("AppointmentDetailViewState.LoadAppointment error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			vs.scope.Commit(func() {
				vs.appointment.Set(nil)
				vs.errorMessage.Set(constvars.MessageCouldNotLoadAppointment)
			})
			return
		}

		vs.scope.Commit(func() {
			vs.appointment.Set(appointment)
			vs.errorMessage.Set("")
		})
	})
}

func (vs *AppointmentDetailViewState) Wait() {
	vs.scope.Wait()
}

func (vs *AppointmentDetailViewState) Close() {
	vs.scope.Close()
}
