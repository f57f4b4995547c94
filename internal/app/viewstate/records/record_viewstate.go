// Package records holds the physio's view of patient records.
package records

import (
	"context"
	"errors"
	"physiocare-client/internal/app/contracts"
	"physiocare-client/internal/app/models"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/dto/responses"
	"physiocare-client/internal/pkg/exceptions"
	"physiocare-client/internal/pkg/lifecycle"
	"physiocare-client/internal/pkg/observable"
	"physiocare-client/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DetailedAppointment is an appointment with its physio name resolved.
type DetailedAppointment struct {
	models.Appointment
	PhysioFullName string
	DisplayDate    string
}

type RecordDetail struct {
	Record       models.Record
	Appointments []DetailedAppointment
	Partition    models.AppointmentPartition
}

type RecordViewState struct {
	Repository contracts.PhysioCareRepository
	Log        *zap.Logger
	Now        func() time.Time

	scope        *lifecycle.Scope
	mu           sync.Mutex
	allRecords   []models.Record
	query        string
	records      *observable.Value[[]models.Record]
	detail       *observable.Value[*RecordDetail]
	errorMessage *observable.Value[string]
}

func NewRecordViewState(ctx context.Context, repository contracts.PhysioCareRepository, logger *zap.Logger) *RecordViewState {
	return &RecordViewState{
		Repository:   repository,
		Log:          logger,
		Now:          time.Now,
		scope:        lifecycle.NewScope(ctx),
		records:      observable.NewValue[[]models.Record](nil),
		detail:       observable.NewValue[*RecordDetail](nil),
		errorMessage: observable.NewValue(""),
	}
}

// Records is the list after the current filter.
func (vs *RecordViewState) Records() observable.Observable[[]models.Record] {
	return vs.records
}

func (vs *RecordViewState) Detail() observable.Observable[*RecordDetail] {
	return vs.detail
}

func (vs *RecordViewState) Error() observable.Observable[string] {
	return vs.errorMessage
}

func (vs *RecordViewState) LoadAllRecords() {
	vs.scope.Launch(func(ctx context.Context) {
		ctx, requestID := utils.WithRequestID(ctx)
		vs.Log.Info("RecordViewState.LoadAllRecords called",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)

		if err := vs.requirePhysio(); err != nil {
			vs.commitRecords(nil, exceptions.ClientMessage(err))
			return
		}

		response, err := vs.Repository.FindAllRecords(ctx)
		if err != nil {
			vs.commitRecords(nil, exceptions.ClientMessage(err))
			return
		}
		if !response.Ok {
			vs.commitRecords(nil, constvars.MessageNoRecordsFound)
			return
		}

		vs.Log.Info("RecordViewState.LoadAllRecords succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingRecordCountKey, len(response.Resultado)),
		)
		vs.commitRecords(response.Resultado, "")
	})
}

func (vs *RecordViewState) commitRecords(records []models.Record, message string) {
	vs.scope.Commit(func() {
		vs.mu.Lock()
		vs.allRecords = records
		filtered := filterRecords(records, vs.query)
		vs.mu.Unlock()

		vs.records.Set(filtered)
		vs.errorMessage.Set(message)
	})
}

// Filter keeps the records whose patient name or surname contains query, ignoring case.
// An empty query shows every record.
func (vs *RecordViewState) Filter(query string) []models.Record {
	vs.mu.Lock()
	vs.query = strings.TrimSpace(query)
	filtered := filterRecords(vs.allRecords, vs.query)
	vs.mu.Unlock()

	vs.scope.Commit(func() { vs.records.Set(filtered) })
	return filtered
}

func filterRecords(records []models.Record, query string) []models.Record {
	if query == "" {
		return records
	}
	filtered := make([]models.Record, 0, len(records))
	for _, record := range records {
		if record.Patient.MatchesQuery(query) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// LoadRecordDetail fetches the patient's record and the physio directory at the
// same time, then names the physio of every appointment.
func (vs *RecordViewState) LoadRecordDetail(patientID string) {
	vs.scope.Launch(func(ctx context.Context) {
		ctx, requestID := utils.WithRequestID(ctx)
		vs.Log.Info("RecordViewState.LoadRecordDetail called",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)

		if err := vs.requirePhysio(); err != nil {
			vs.commitDetail(nil, exceptions.ClientMessage(err))
			return
		}

		var (
			record  *responses.Record
			physios []models.Physio
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			record, err = vs.Repository.FindRecordByPatientID(gctx, patientID)
			return err
		})
		g.Go(func() error {
			var err error
			physios, err = vs.Repository.FindAllPhysios(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			vs.Log.Error("RecordViewState.LoadRecordDetail error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			if errors.Is(err, exceptions.ErrKindNotFound) {
				vs.commitDetail(nil, constvars.MessageNoMedicalRecord)
				return
			}
			vs.commitDetail(nil, exceptions.ClientMessage(err))
			return
		}
		if !record.Ok || record.Resultado == nil {
			vs.commitDetail(nil, constvars.MessageNoMedicalRecord)
			return
		}

		detail := buildRecordDetail(*record.Resultado, physios, vs.Now())
		message := ""
		if len(detail.Appointments) == 0 {
			message = constvars.MessageNoMedicalHistory
		}
		vs.commitDetail(detail, message)
	})
}

func buildRecordDetail(record models.Record, physios []models.Physio, today time.Time) *RecordDetail {
	names := make(map[string]string, len(physios))
	for _, physio := range physios {
		names[physio.ID] = physio.FullName()
	}

	appointments := make([]DetailedAppointment, 0, len(record.Appointments))
	for _, appointment := range record.Appointments {
		name, ok := names[appointment.PhysioID]
		if !ok {
			name = constvars.MessageUnknownPhysio
		}
		appointments = append(appointments, DetailedAppointment{
			Appointment:    appointment,
			PhysioFullName: name,
			DisplayDate:    utils.FormatAppointmentDate(appointment.Date),
		})
	}

	return &RecordDetail{
		Record:       record,
		Appointments: appointments,
		Partition:    utils.PartitionAppointments(record.Appointments, today),
	}
}

func (vs *RecordViewState) commitDetail(detail *RecordDetail, message string) {
	vs.scope.Commit(func() {
		vs.detail.Set(detail)
		vs.errorMessage.Set(message)
	})
}

// Records are only served to physios. The role comes from the stored session.
func (vs *RecordViewState) requirePhysio() error {
	session := vs.Repository.Session()
	if !session.IsAuthenticated() {
		return exceptions.ErrNotLoggedIn()
	}
	if !session.IsPhysio() {
		return exceptions.ErrInvalidRole(string(session.Role))
	}
	return nil
}

func (vs *RecordViewState) Wait() {
	vs.scope.Wait()
}

func (vs *RecordViewState) Close() {
	vs.scope.Close()
}
