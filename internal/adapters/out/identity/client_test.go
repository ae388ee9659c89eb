package identity

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artmarket/internal/core/domain/services"
	"artmarket/internal/pkg/errs"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_Verify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/verify", r.URL.Path)
		assert.Equal(t, "Bearer valid-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"userId": 31, "role": "partner"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	actor, err := client.Verify(context.Background(), "valid-token")
	require.NoError(t, err)
	assert.Equal(t, int64(31), actor.ID)
	assert.Equal(t, services.RolePartner, actor.Role)
}

func TestClient_Verify_RejectedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	_, err := client.Verify(context.Background(), "expired-token")
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestClient_Verify_EmptyToken(t *testing.T) {
	client := NewClient("http://identity.invalid", testLogger())

	_, err := client.Verify(context.Background(), "")
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestClient_Verify_ServiceUnavailableIsNotForbidden(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	_, err := client.Verify(context.Background(), "valid-token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errs.ErrForbidden)
}

func TestClient_Verify_UnknownRole(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"userId": 31, "role": "superuser"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())

	_, err := client.Verify(context.Background(), "valid-token")
	require.Error(t, err)
}
