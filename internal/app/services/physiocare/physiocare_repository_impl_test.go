package physiocare

import (
	"context"
	"errors"
	"testing"
	"time"

	"physiocare-client/internal/app/contracts/mocks"
	"physiocare-client/internal/app/models"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/dto/requests"
	"physiocare-client/internal/pkg/dto/responses"
	"physiocare-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errMalformed = errors.New("malformed")

type fixture struct {
	store        *mocks.MemorySessionStore
	auth         *mocks.MockAuthClient
	records      *mocks.MockRecordClient
	appointments *mocks.MockAppointmentClient
	physios      *mocks.MockPhysioClient
	connectivity *mocks.MockConnectivityChecker
	tokens       *mocks.MockTokenInspector
	repository   *physioCareRepository
}

func newFixture(session models.Session) *fixture {
	f := &fixture{
		store:        mocks.NewMemorySessionStore(session),
		auth:         new(mocks.MockAuthClient),
		records:      new(mocks.MockRecordClient),
		appointments: new(mocks.MockAppointmentClient),
		physios:      new(mocks.MockPhysioClient),
		connectivity: new(mocks.MockConnectivityChecker),
		tokens:       new(mocks.MockTokenInspector),
	}
	f.repository = NewPhysioCareRepository(f.store, f.auth, f.records, f.appointments, f.physios, f.connectivity, f.tokens, zap.NewNop()).(*physioCareRepository)
	f.connectivity.On("CheckConnection", mock.Anything).Return(nil).Maybe()
	f.tokens.On("ExpiresAt", mock.Anything).Return(time.Time{}, errMalformed).Maybe()
	return f
}

func TestPhysioCareRepository_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Token is persisted", func(t *testing.T) {
		f := newFixture(models.Session{})
		f.auth.On("Login", mock.Anything, &requests.Login{Username: "ana", Password: "pw"}).
			Return(&responses.Login{Token: "t1", Role: "patient", UserID: "p1"}, nil)

		resp, err := f.repository.Login(ctx, "ana", "pw")

		require.NoError(t, err)
		assert.Equal(t, "t1", resp.Token)
		assert.Equal(t, models.Session{Token: "t1", UserID: "p1", Role: models.RolePatient}, f.store.Current())
	})

	t.Run("Missing token leaves the store untouched", func(t *testing.T) {
		previous := models.Session{Token: "old", UserID: "u0", Role: models.RolePhysio}
		f := newFixture(previous)
		f.auth.On("Login", mock.Anything, mock.Anything).Return(&responses.Login{Error: "bad credentials"}, nil)

		_, err := f.repository.Login(ctx, "ana", "pw")

		assert.True(t, errors.Is(err, exceptions.ErrKindLogin))
		assert.Equal(t, "bad credentials", exceptions.ClientMessage(err))
		assert.Equal(t, previous, f.store.Current())
	})

	t.Run("Missing token without message", func(t *testing.T) {
		f := newFixture(models.Session{})
		f.auth.On("Login", mock.Anything, mock.Anything).Return(&responses.Login{}, nil)

		_, err := f.repository.Login(ctx, "ana", "pw")

		assert.Equal(t, constvars.ErrClientLoginUnknownError, exceptions.ClientMessage(err))
		assert.False(t, f.store.Current().IsAuthenticated())
	})

	t.Run("Empty credentials are rejected locally", func(t *testing.T) {
		f := newFixture(models.Session{})

		_, err := f.repository.Login(ctx, "", "pw")

		assert.True(t, errors.Is(err, exceptions.ErrKindValidation))
		f.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("No connection blocks the call", func(t *testing.T) {
		f := newFixture(models.Session{})
		f.connectivity.ExpectedCalls = nil
		f.connectivity.On("CheckConnection", mock.Anything).Return(exceptions.ErrNoConnection(errors.New("refused"), "h:8080"))

		_, err := f.repository.Login(ctx, "ana", "pw")

		assert.True(t, errors.Is(err, exceptions.ErrKindNoConnection))
		f.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

func TestPhysioCareRepository_Logout(t *testing.T) {
	f := newFixture(models.Session{Token: "t", UserID: "u", Role: models.RolePhysio})

	require.NoError(t, f.repository.Logout(context.Background()))

	assert.Equal(t, models.Session{}, f.store.Current())
	f.connectivity.AssertNotCalled(t, "CheckConnection", mock.Anything)
}

func TestPhysioCareRepository_Authorization(t *testing.T) {
	ctx := context.Background()

	t.Run("Unauthenticated fails fast", func(t *testing.T) {
		f := newFixture(models.Session{})

		_, err := f.repository.FindAllRecords(ctx)

		assert.True(t, errors.Is(err, exceptions.ErrKindUnauthenticated))
		assert.Equal(t, constvars.ErrClientNotLoggedIn, exceptions.ClientMessage(err))
		f.records.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("Unauthenticated skips the connectivity check", func(t *testing.T) {
		f := newFixture(models.Session{})
		f.connectivity.ExpectedCalls = nil
		f.connectivity.On("CheckConnection", mock.Anything).Return(exceptions.ErrNoConnection(nil, "h:8080")).Maybe()

		_, err := f.repository.FindAppointmentsByPatientID(ctx, "p1")

		assert.True(t, errors.Is(err, exceptions.ErrKindUnauthenticated))
		f.connectivity.AssertNotCalled(t, "CheckConnection", mock.Anything)
	})

	t.Run("Token is injected", func(t *testing.T) {
		f := newFixture(models.Session{Token: "t1", UserID: "ph1", Role: models.RolePhysio})
		f.appointments.On("FindAppointmentsByPhysioID", mock.Anything, "t1", "ph1").Return([]models.Appointment{{ID: "a1"}}, nil)

		appointments, err := f.repository.FindAppointmentsByPhysioID(ctx, "ph1")

		require.NoError(t, err)
		assert.Len(t, appointments, 1)
		f.appointments.AssertExpectations(t)
	})

	t.Run("Expired token clears the session", func(t *testing.T) {
		f := newFixture(models.Session{Token: "jwt", UserID: "ph1", Role: models.RolePhysio})
		f.tokens.ExpectedCalls = nil
		f.tokens.On("ExpiresAt", "jwt").Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil)
		f.repository.Now = func() time.Time { return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) }

		_, err := f.repository.FindAllPhysios(ctx)

		assert.True(t, errors.Is(err, exceptions.ErrKindUnauthenticated))
		assert.False(t, f.store.Current().IsAuthenticated())
		f.physios.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
		f.connectivity.AssertNotCalled(t, "CheckConnection", mock.Anything)
	})

	t.Run("401 clears the session globally", func(t *testing.T) {
		f := newFixture(models.Session{Token: "t1", UserID: "p1", Role: models.RolePatient})
		f.records.On("FindRecordByPatientID", mock.Anything, "t1", "p1").
			Return(nil, exceptions.ErrBackendUnauthorized("", constvars.ResourceNameRecord))

		var observed []models.Session
		unsubscribe := f.repository.SubscribeSession(func(s models.Session) { observed = append(observed, s) })
		defer unsubscribe()

		_, err := f.repository.FindRecordByPatientID(ctx, "p1")

		assert.True(t, errors.Is(err, exceptions.ErrKindUnauthorized))
		assert.Equal(t, constvars.ErrClientSessionClosed, exceptions.ClientMessage(err))
		assert.Equal(t, models.Session{}, f.store.Current())
		require.Len(t, observed, 2)
		assert.False(t, observed[1].IsAuthenticated())
	})

	t.Run("Other errors keep the session", func(t *testing.T) {
		session := models.Session{Token: "t1", UserID: "p1", Role: models.RolePatient}
		f := newFixture(session)
		f.records.On("FindRecordByPatientID", mock.Anything, "t1", "p1").
			Return(nil, exceptions.ErrBackendNotFound("", constvars.ResourceNameRecord))

		_, err := f.repository.FindRecordByPatientID(ctx, "p1")

		assert.True(t, errors.Is(err, exceptions.ErrKindNotFound))
		assert.Equal(t, session, f.store.Current())
	})

	t.Run("Unreachable backend blocks authenticated calls", func(t *testing.T) {
		f := newFixture(models.Session{Token: "t1", UserID: "ph1", Role: models.RolePhysio})
		f.connectivity.ExpectedCalls = nil
		f.connectivity.On("CheckConnection", mock.Anything).Return(exceptions.ErrNoConnection(nil, "h:8080"))

		err := f.repository.DeleteAppointmentByID(ctx, "a1")

		assert.Equal(t, constvars.ErrClientNoConnection, exceptions.ClientMessage(err))
		f.appointments.AssertNotCalled(t, "DeleteAppointmentByID", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPhysioCareRepository_CreateAppointment(t *testing.T) {
	ctx := context.Background()
	session := models.Session{Token: "t1", UserID: "ph1", Role: models.RolePhysio}

	t.Run("Valid request is sent", func(t *testing.T) {
		f := newFixture(session)
		request := &requests.CreateAppointment{PhysioID: "ph1", Date: "2030-02-01", Diagnosis: "sprain"}
		f.records.On("CreateAppointment", mock.Anything, "t1", "r1", request).Return(nil)

		require.NoError(t, f.repository.CreateAppointment(ctx, "r1", request))
		f.records.AssertExpectations(t)
	})

	t.Run("Invalid date is rejected locally", func(t *testing.T) {
		f := newFixture(session)

		err := f.repository.CreateAppointment(ctx, "r1", &requests.CreateAppointment{PhysioID: "ph1", Date: "01/02/2030"})

		assert.True(t, errors.Is(err, exceptions.ErrKindValidation))
		f.records.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPhysioCareRepository_Session(t *testing.T) {
	f := newFixture(models.Session{Token: "jwt", UserID: "u", Role: models.RolePatient})
	expiresAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	f.tokens.ExpectedCalls = nil
	f.tokens.On("ExpiresAt", "jwt").Return(expiresAt, nil)

	assert.Equal(t, expiresAt, f.repository.Session().ExpiresAt)
}
