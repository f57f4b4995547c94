package appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"physiocare-client/internal/app/config"
	"physiocare-client/internal/app/services/shared/httpclient"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newClient(t *testing.T, router http.Handler) *appointmentBackendClient {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	cfg := &config.InternalConfig{Backend: config.AppBackend{BaseUrl: server.URL + "/"}}
	return NewAppointmentBackendClient(httpclient.NewClient(cfg, nil, zap.NewNop()), zap.NewNop()).(*appointmentBackendClient)
}

func TestAppointmentBackendClient(t *testing.T) {
	deleted := ""
	router := chi.NewRouter()
	router.Get("/records/appointments/patients/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"futuras":[{"_id":"f1","date":"2030-01-01T09:00:00Z","physio":"ph1"}],"pasadas":[]}`))
	})
	router.Get("/records/appointments/physio/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "ph1" {
			w.Write([]byte(`{"ok":true,"resultado":[{"_id":"a1","date":"2030-01-01T09:00:00Z","physio":"ph1"},{"_id":"a2","date":"2020-01-01T09:00:00Z","physio":"ph1"}]}`))
			return
		}
		w.Write([]byte(`{"ok":false}`))
	})
	router.Get("/records/appointments/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "a1" {
			w.Write([]byte(`{"ok":true,"resultado":{"_id":"a1","date":"2030-01-01T09:00:00Z","diagnosis":"sprain","physio":"ph1"}}`))
			return
		}
		w.Write([]byte(`{"ok":false,"resultado":null}`))
	})
	router.Delete("/records/appointments/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "locked" {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"ok":false,"error":"appointment is locked"}`))
			return
		}
		deleted = chi.URLParam(r, "id")
		w.WriteHeader(http.StatusNoContent)
	})
	client := newClient(t, router)
	ctx := context.Background()

	t.Run("FindAppointmentsByPatientID", func(t *testing.T) {
		resp, err := client.FindAppointmentsByPatientID(ctx, "tok", "p1")

		require.NoError(t, err)
		assert.Len(t, resp.Futuras, 1)
		assert.Empty(t, resp.Pasadas)
	})

	t.Run("FindAppointmentsByPhysioID", func(t *testing.T) {
		appointments, err := client.FindAppointmentsByPhysioID(ctx, "tok", "ph1")

		require.NoError(t, err)
		assert.Len(t, appointments, 2)
	})

	t.Run("FindAppointmentsByPhysioID ok false", func(t *testing.T) {
		_, err := client.FindAppointmentsByPhysioID(ctx, "tok", "ph2")

		assert.Equal(t, constvars.ErrClientNoPhysioAppointments, exceptions.ClientMessage(err))
	})

	t.Run("FindAppointmentByID", func(t *testing.T) {
		appointment, err := client.FindAppointmentByID(ctx, "tok", "a1")

		require.NoError(t, err)
		assert.Equal(t, "sprain", appointment.Diagnosis)
	})

	t.Run("FindAppointmentByID empty", func(t *testing.T) {
		_, err := client.FindAppointmentByID(ctx, "tok", "a9")

		assert.Equal(t, constvars.ErrClientAppointmentNotFound, exceptions.ClientMessage(err))
	})

	t.Run("DeleteAppointmentByID", func(t *testing.T) {
		require.NoError(t, client.DeleteAppointmentByID(ctx, "tok", "a1"))
		assert.Equal(t, "a1", deleted)
	})

	t.Run("DeleteAppointmentByID rejected", func(t *testing.T) {
		err := client.DeleteAppointmentByID(ctx, "tok", "locked")

		assert.Equal(t, "appointment is locked", exceptions.ClientMessage(err))
		assert.Equal(t, http.StatusConflict, exceptions.StatusCode(err))
	})
}
