package dashboard

import (
	"context"
	"testing"

	"physiocare-client/internal/app/contracts/mocks"
	"physiocare-client/internal/app/models"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/dto/responses"
	"physiocare-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestDashboard_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Not logged in", func(t *testing.T) {
		repository := mocks.NewMockPhysioCareRepository(models.Session{})
		d := NewDashboard(ctx, repository, zap.NewNop())
		defer d.Close()

		d.Load(ViewAppointments)
		d.Wait()

		assert.Equal(t, ModeNone, d.Mode().Get())
		assert.Equal(t, constvars.ErrClientNotLoggedIn, d.Message().Get())
	})

	t.Run("Patient loads own appointments", func(t *testing.T) {
		repository := mocks.NewMockPhysioCareRepository(models.Session{Token: "t", UserID: "p1", Role: models.RolePatient})
		repository.On("FindRecordByPatientID", mock.Anything, "p1").Return(&responses.Record{Ok: true}, nil)
		repository.On("FindAppointmentsByPatientID", mock.Anything, "p1").
			Return(&responses.PatientAppointments{Ok: true, Futuras: []models.Appointment{{ID: "f1"}}}, nil)
		d := NewDashboard(ctx, repository, zap.NewNop())
		defer d.Close()

		d.Load(ViewRecords)
		d.Wait()

		assert.Equal(t, ModePatientAppointments, d.Mode().Get())
		assert.Len(t, d.Appointments.FutureAppointments().Get(), 1)
		repository.AssertNotCalled(t, "FindAllRecords", mock.Anything)
	})

	t.Run("Physio appointments", func(t *testing.T) {
		repository := mocks.NewMockPhysioCareRepository(models.Session{Token: "t", UserID: "ph1", Role: models.RolePhysio})
		repository.On("FindAppointmentsByPhysioID", mock.Anything, "ph1").Return([]models.Appointment{{ID: "a1"}}, nil)
		d := NewDashboard(ctx, repository, zap.NewNop())
		defer d.Close()

		d.Load(ViewAppointments)
		d.Wait()

		assert.Equal(t, ModePhysioAppointments, d.Mode().Get())
		assert.Len(t, d.Appointments.Appointments().Get(), 1)
	})

	t.Run("Physio records", func(t *testing.T) {
		repository := mocks.NewMockPhysioCareRepository(models.Session{Token: "t", UserID: "ph1", Role: models.RolePhysio})
		repository.On("FindAllRecords", mock.Anything).Return(&responses.Records{Ok: true, Resultado: []models.Record{{ID: "r1"}}}, nil)
		d := NewDashboard(ctx, repository, zap.NewNop())
		defer d.Close()

		d.Load(ViewRecords)
		d.Wait()

		assert.Equal(t, ModeRecords, d.Mode().Get())
		assert.Len(t, d.Records.Records().Get(), 1)
	})

	t.Run("401 logs out and reports session closed", func(t *testing.T) {
		repository := mocks.NewMockPhysioCareRepository(models.Session{Token: "t", UserID: "ph1", Role: models.RolePhysio})
		repository.On("FindAppointmentsByPhysioID", mock.Anything, "ph1").
			Run(func(mock.Arguments) { repository.Store.Clear(ctx) }).
			Return(nil, exceptions.ErrSessionExpired(constvars.ResourceNameAppointment))
		d := NewDashboard(ctx, repository, zap.NewNop())
		defer d.Close()

		d.Load(ViewAppointments)
		d.Wait()

		assert.False(t, repository.Session().IsAuthenticated())
		assert.Equal(t, constvars.ErrClientSessionClosed, d.Message().Get())
		assert.Equal(t, constvars.ErrClientSessionClosed, d.Appointments.Error().Get())
	})

	t.Run("Unknown role", func(t *testing.T) {
		repository := mocks.NewMockPhysioCareRepository(models.Session{Token: "t", UserID: "x", Role: "admin"})
		d := NewDashboard(ctx, repository, zap.NewNop())
		defer d.Close()

		d.Load(ViewAppointments)

		assert.Equal(t, constvars.ErrClientNotAuthorized, d.Message().Get())
	})
}
