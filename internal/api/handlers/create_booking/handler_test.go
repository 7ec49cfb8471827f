package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/ASTB-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleSuccess(t *testing.T) {
	createdAt := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:        "b-1",
			Date:      "2025-03-10",
			TimeSlot:  "5-6pm",
			Name:      "Ann",
			Email:     "ann@example.com",
			Status:    "pending",
			CreatedAt: createdAt,
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"date":"2025-03-10","timeSlot":"5-6pm","name":"Ann","email":"ann@example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp.Booking.ID)
	assert.Equal(t, "pending", resp.Booking.Status)
	assert.Equal(t, createdAt.Format(time.RFC3339), resp.Booking.CreatedAt)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "5-6pm", uc.gotReq.TimeSlot)
}

func TestHandleInvalidBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(t, h, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing field", createBooking.ErrMissingField, http.StatusBadRequest},
		{"invalid slot", createBooking.ErrInvalidSlot, http.StatusBadRequest},
		{"invalid date", createBooking.ErrInvalidDate, http.StatusBadRequest},
		{"too soon", createBooking.ErrTooSoon, http.StatusBadRequest},
		{"slot not available", createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := doRequest(t, h, `{"date":"2025-03-10","timeSlot":"5-6pm","name":"Ann","email":"a@b.c"}`)

			require.Equal(t, tt.wantStatus, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}
