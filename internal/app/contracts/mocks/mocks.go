// Package mocks holds testify mocks of the contracts interfaces.
package mocks

import (
	"context"
	"physiocare-client/internal/app/models"
	"physiocare-client/internal/pkg/dto/requests"
	"physiocare-client/internal/pkg/dto/responses"
	"physiocare-client/internal/pkg/observable"
	"time"

	"github.com/stretchr/testify/mock"
)

// MemorySessionStore is an in-memory SessionStore.
type MemorySessionStore struct {
	state *observable.Value[models.Session]
	// SaveErr, when set, is returned by Save without touching the session.
	SaveErr error
}

func NewMemorySessionStore(session models.Session) *MemorySessionStore {
	return &MemorySessionStore{state: observable.NewValue(session)}
}

func (s *MemorySessionStore) Current() models.Session {
	return s.state.Get()
}

func (s *MemorySessionStore) Subscribe(fn func(models.Session)) func() {
	return s.state.Subscribe(fn)
}

func (s *MemorySessionStore) Save(ctx context.Context, token, userID string, role models.Role) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.state.Set(models.Session{Token: token, UserID: userID, Role: role})
	return nil
}

func (s *MemorySessionStore) Clear(ctx context.Context) error {
	s.state.Set(models.Session{})
	return nil
}

type MockAuthClient struct {
	mock.Mock
}

func (m *MockAuthClient) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Login)
	return response, args.Error(1)
}

type MockRecordClient struct {
	mock.Mock
}

func (m *MockRecordClient) FindAll(ctx context.Context, token string) (*responses.Records, error) {
	args := m.Called(ctx, token)
	response, _ := args.Get(0).(*responses.Records)
	return response, args.Error(1)
}

func (m *MockRecordClient) FindRecordByPatientID(ctx context.Context, token, patientID string) (*responses.Record, error) {
	args := m.Called(ctx, token, patientID)
	response, _ := args.Get(0).(*responses.Record)
	return response, args.Error(1)
}

func (m *MockRecordClient) CreateAppointment(ctx context.Context, token, recordID string, request *requests.CreateAppointment) error {
	args := m.Called(ctx, token, recordID, request)
	return args.Error(0)
}

type MockAppointmentClient struct {
	mock.Mock
}

func (m *MockAppointmentClient) FindAppointmentsByPatientID(ctx context.Context, token, patientID string) (*responses.PatientAppointments, error) {
	args := m.Called(ctx, token, patientID)
	response, _ := args.Get(0).(*responses.PatientAppointments)
	return response, args.Error(1)
}

func (m *MockAppointmentClient) FindAppointmentByID(ctx context.Context, token, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, token, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentClient) FindAppointmentsByPhysioID(ctx context.Context, token, physioID string) ([]models.Appointment, error) {
	args := m.Called(ctx, token, physioID)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentClient) DeleteAppointmentByID(ctx context.Context, token, appointmentID string) error {
	args := m.Called(ctx, token, appointmentID)
	return args.Error(0)
}

type MockPhysioClient struct {
	mock.Mock
}

func (m *MockPhysioClient) FindAll(ctx context.Context, token string) ([]models.Physio, error) {
	args := m.Called(ctx, token)
	physios, _ := args.Get(0).([]models.Physio)
	return physios, args.Error(1)
}

type MockConnectivityChecker struct {
	mock.Mock
}

func (m *MockConnectivityChecker) CheckConnection(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockTokenInspector struct {
	mock.Mock
}

func (m *MockTokenInspector) ExpiresAt(token string) (time.Time, error) {
	args := m.Called(token)
	expiresAt, _ := args.Get(0).(time.Time)
	return expiresAt, args.Error(1)
}

// MockPhysioCareRepository is used by the view-state holder tests.
type MockPhysioCareRepository struct {
	mock.Mock
	Store *MemorySessionStore
}

func NewMockPhysioCareRepository(session models.Session) *MockPhysioCareRepository {
	return &MockPhysioCareRepository{Store: NewMemorySessionStore(session)}
}

func (m *MockPhysioCareRepository) Login(ctx context.Context, username, password string) (*responses.Login, error) {
	args := m.Called(ctx, username, password)
	response, _ := args.Get(0).(*responses.Login)
	return response, args.Error(1)
}

func (m *MockPhysioCareRepository) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	if args.Error(0) == nil {
		m.Store.Clear(ctx)
	}
	return args.Error(0)
}

func (m *MockPhysioCareRepository) Session() models.Session {
	return m.Store.Current()
}

func (m *MockPhysioCareRepository) SubscribeSession(fn func(models.Session)) func() {
	return m.Store.Subscribe(fn)
}

func (m *MockPhysioCareRepository) FindAllRecords(ctx context.Context) (*responses.Records, error) {
	args := m.Called(ctx)
	response, _ := args.Get(0).(*responses.Records)
	return response, args.Error(1)
}

func (m *MockPhysioCareRepository) FindRecordByPatientID(ctx context.Context, patientID string) (*responses.Record, error) {
	args := m.Called(ctx, patientID)
	response, _ := args.Get(0).(*responses.Record)
	return response, args.Error(1)
}

func (m *MockPhysioCareRepository) FindAppointmentsByPatientID(ctx context.Context, patientID string) (*responses.PatientAppointments, error) {
	args := m.Called(ctx, patientID)
	response, _ := args.Get(0).(*responses.PatientAppointments)
	return response, args.Error(1)
}

func (m *MockPhysioCareRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockPhysioCareRepository) FindAppointmentsByPhysioID(ctx context.Context, physioID string) ([]models.Appointment, error) {
	args := m.Called(ctx, physioID)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockPhysioCareRepository) DeleteAppointmentByID(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *MockPhysioCareRepository) FindAllPhysios(ctx context.Context) ([]models.Physio, error) {
	args := m.Called(ctx)
	physios, _ := args.Get(0).([]models.Physio)
	return physios, args.Error(1)
}

func (m *MockPhysioCareRepository) CreateAppointment(ctx context.Context, recordID string, request *requests.CreateAppointment) error {
	args := m.Called(ctx, recordID, request)
	return args.Error(0)
}
