package clubservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCC-TeeSheetService/pkg/credentials"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second, nopLogger{}), srv
}

func TestGetTeeTimeRangePassesBearerToken(t *testing.T) {
	var gotAuth string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 7, "tee_time": "2024-03-14T10:00:00", "hole": "1", "capacity": 4, "status": "open"}]`))
	})
	defer srv.Close()

	ctx := credentials.WithToken(context.Background(), "operator-token")
	records, err := client.GetTeeTimeRange(ctx, time.Now(), time.Now().Add(24*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, "Bearer operator-token", gotAuth)
	require.Len(t, records, 1)
	assert.Equal(t, int64(7), records[0].ID)
}

func TestGetTeeTimeRangeNotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer srv.Close()

	_, err := client.GetTeeTimeRange(context.Background(), time.Now(), time.Now())
	assert.ErrorIs(t, err, ErrTeeTimeNotFound)
}

func TestCreateBookingNotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer srv.Close()

	_, err := client.CreateBooking(context.Background(), CreateBookingRequest{TeeTimeID: 1, PlayerName: "Smith"})
	assert.ErrorIs(t, err, ErrTeeTimeNotFound)
}

func TestCreateBookingRejectedWithDetail(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail": "tee time is full"}`))
	})
	defer srv.Close()

	_, err := client.CreateBooking(context.Background(), CreateBookingRequest{TeeTimeID: 1, PlayerName: "Smith"})
	require.ErrorIs(t, err, ErrBookingRejected)
	assert.Contains(t, err.Error(), "tee time is full")
}

func TestGenerateTeeSheetClosed(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	defer srv.Close()

	_, err := client.GenerateTeeSheet(context.Background(), GenerateRequest{Date: "2024-03-14"})
	assert.ErrorIs(t, err, ErrSheetClosed)
}
