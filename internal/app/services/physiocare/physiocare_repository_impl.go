package physiocare

import (
	"context"
	"errors"
	"physiocare-client/internal/app/contracts"
	"physiocare-client/internal/app/models"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/dto/requests"
	"physiocare-client/internal/pkg/dto/responses"
	"physiocare-client/internal/pkg/exceptions"
	"physiocare-client/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type physioCareRepository struct {
	SessionStore        contracts.SessionStore
	AuthClient          contracts.AuthClient
	RecordClient        contracts.RecordClient
	AppointmentClient   contracts.AppointmentClient
	PhysioClient        contracts.PhysioClient
	ConnectivityChecker contracts.ConnectivityChecker
	TokenInspector      contracts.TokenInspector
	Log                 *zap.Logger
	Now                 func() time.Time
}

func NewPhysioCareRepository(
	sessionStore contracts.SessionStore,
	authClient contracts.AuthClient,
	recordClient contracts.RecordClient,
	appointmentClient contracts.AppointmentClient,
	physioClient contracts.PhysioClient,
	connectivityChecker contracts.ConnectivityChecker,
	tokenInspector contracts.TokenInspector,
	logger *zap.Logger,
) contracts.PhysioCareRepository {
	return &physioCareRepository{
		SessionStore:        sessionStore,
		AuthClient:          authClient,
		RecordClient:        recordClient,
		AppointmentClient:   appointmentClient,
		PhysioClient:        physioClient,
		ConnectivityChecker: connectivityChecker,
		TokenInspector:      tokenInspector,
		Log:                 logger,
		Now:                 time.Now,
	}
}

// Login stores the session only when the backend hands out a token.
func (r *physioCareRepository) Login(ctx context.Context, username, password string) (*responses.Login, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	r.Log.Info("physioCareRepository.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.Login{Username: username, Password: password}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	if err := r.ConnectivityChecker.CheckConnection(ctx); err != nil {
		return nil, err
	}

	response, err := r.AuthClient.Login(ctx, request)
	if err != nil {
		return nil, err
	}

	if !response.HasToken() {
		r.Log.Warn("physioCareRepository.Login response carries no token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrLoginFailed(response.Error)
	}

	err = r.SessionStore.Save(ctx, response.Token, response.UserID, models.Role(response.Role))
	if err != nil {
		return nil, err
	}

	r.Log.Info("physioCareRepository.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, response.UserID),
		zap.String(constvars.LoggingRoleKey, response.Role),
	)
	return response, nil
}

func (r *physioCareRepository) Logout(ctx context.Context) error {
	ctx, requestID := utils.WithRequestID(ctx)
	r.Log.Info("physioCareRepository.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return r.SessionStore.Clear(ctx)
}

// Session returns the stored session with the token expiry filled in when known.
func (r *physioCareRepository) Session() models.Session {
	session := r.SessionStore.Current()
	if !session.IsAuthenticated() {
		return session
	}
	if expiresAt, err := r.TokenInspector.ExpiresAt(session.Token); err == nil {
		session.ExpiresAt = expiresAt
	}
	return session
}

func (r *physioCareRepository) SubscribeSession(fn func(models.Session)) func() {
	return r.SessionStore.Subscribe(fn)
}

func (r *physioCareRepository) FindAllRecords(ctx context.Context) (*responses.Records, error) {
	ctx, token, err := r.authorize(ctx)
	if err != nil {
		return nil, err
	}
	response, err := r.RecordClient.FindAll(ctx, token)
	if err != nil {
		return nil, r.handleError(ctx, err, constvars.ResourceNameRecord)
	}
	return response, nil
}

func (r *physioCareRepository) FindRecordByPatientID(ctx context.Context, patientID string) (*responses.Record, error) {
	ctx, token, err := r.authorize(ctx)
	if err != nil {
		return nil, err
	}
	response, err := r.RecordClient.FindRecordByPatientID(ctx, token, patientID)
	if err != nil {
		return nil, r.handleError(ctx, err, constvars.ResourceNameRecord)
	}
	return response, nil
}

func (r *physioCareRepository) FindAppointmentsByPatientID(ctx context.Context, patientID string) (*responses.PatientAppointments, error) {
	ctx, token, err := r.authorize(ctx)
	if err != nil {
		return nil, err
	}
	response, err := r.AppointmentClient.FindAppointmentsByPatientID(ctx, token, patientID)
	if err != nil {
		return nil, r.handleError(ctx, err, constvars.ResourceNameAppointment)
	}
	return response, nil
}

func (r *physioCareRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	ctx, token, err := r.authorize(ctx)
	if err != nil {
		return nil, err
	}
	appointment, err := r.AppointmentClient.FindAppointmentByID(ctx, token, appointmentID)
	if err != nil {
		return nil, r.handleError(ctx, err, constvars.ResourceNameAppointment)
	}
	return appointment, nil
}

func (r *physioCareRepository) FindAppointmentsByPhysioID(ctx context.Context, physioID string) ([]models.Appointment, error) {
	ctx, token, err := r.authorize(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := r.AppointmentClient.FindAppointmentsByPhysioID(ctx, token, physioID)
	if err != nil {
		return nil, r.handleError(ctx, err, constvars.ResourceNameAppointment)
	}
	return appointments, nil
}

func (r *physioCareRepository) DeleteAppointmentByID(ctx context.Context, appointmentID string) error {
	ctx, token, err := r.authorize(ctx)
	if err != nil {
		return err
	}
	err = r.AppointmentClient.DeleteAppointmentByID(ctx, token, appointmentID)
	if err != nil {
		return r.handleError(ctx, err, constvars.ResourceNameAppointment)
	}
	return nil
}

func (r *physioCareRepository) FindAllPhysios(ctx context.Context) ([]models.Physio, error) {
	ctx, token, err := r.authorize(ctx)
	if err != nil {
		return nil, err
	}
	physios, err := r.PhysioClient.FindAll(ctx, token)
	if err != nil {
		return nil, r.handleError(ctx, err, constvars.ResourceNamePhysio)
	}
	return physios, nil
}

func (r *physioCareRepository) CreateAppointment(ctx context.Context, recordID string, request *requests.CreateAppointment) error {
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	ctx, token, err := r.authorize(ctx)
	if err != nil {
		return err
	}
	err = r.RecordClient.CreateAppointment(ctx, token, recordID, request)
	if err != nil {
		return r.handleError(ctx, err, constvars.ResourceNameAppointment)
	}
	return nil
}

// authorize checks connectivity and returns the stored token. An expired token
// clears the session before any request is sent.
// authorize fails fast on a missing or expired token, then checks the backend is reachable.
func (r *physioCareRepository) authorize(ctx context.Context) (context.Context, string, error) {
	ctx, requestID := utils.WithRequestID(ctx)

	session := r.SessionStore.Current()
	if !session.IsAuthenticated() {
		r.Log.Warn("physioCareRepository.authorize no token stored",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return ctx, "", exceptions.ErrNotLoggedIn()
	}

	// Opaque tokens carry no claims and are left to the backend.
	if expiresAt, err := r.TokenInspector.ExpiresAt(session.Token); err == nil {
		session.ExpiresAt = expiresAt
	}
	if session.IsExpired(r.Now()) {
		r.Log.Warn("physioCareRepository.authorize token expired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Time("expires_at", session.ExpiresAt),
		)
		if clearErr := r.SessionStore.Clear(ctx); clearErr != nil {
			return ctx, "", clearErr
		}
		return ctx, "", exceptions.ErrTokenExpired(nil)
	}

	if err := r.ConnectivityChecker.CheckConnection(ctx); err != nil {
		return ctx, "", err
	}
	return ctx, session.Token, nil
}

// handleError clears the session on the first 401 seen by any call.
func (r *physioCareRepository) handleError(ctx context.Context, err error, resource string) error {
	if !errors.Is(err, exceptions.ErrKindUnauthorized) {
		return err
	}

	requestID := utils.GetRequestID(ctx)
	r.Log.Warn("physioCareRepository backend rejected the token, clearing session",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("resource", resource),
	)
	if clearErr := r.SessionStore.Clear(ctx); clearErr != nil {
		r.Log.Error("physioCareRepository error clearing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(clearErr),
		)
	}
	return exceptions.ErrSessionExpired(resource)
}
