package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/m04kA/ASTB-BookingService/internal/usecase/get_availability"
)

type fakeUseCase struct {
	resp *getAvailability.Response
}

func (f *fakeUseCase) Execute(_ context.Context) *getAvailability.Response {
	return f.resp
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandleReturnsBookedSlots(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getAvailability.Response{
			BookedSlots: []getAvailability.BookedSlot{
				{Date: "2025-03-10", TimeSlot: "5-6pm"},
				{Date: "2025-03-11", TimeSlot: "4-5pm"},
			},
		},
	}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp GetAvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.BookedSlots, 2)
	assert.Equal(t, "2025-03-10", resp.BookedSlots[0].Date)
	assert.Equal(t, "5-6pm", resp.BookedSlots[0].TimeSlot)
}

func TestHandleEmptyListStaysArray(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getAvailability.Response{BookedSlots: []getAvailability.BookedSlot{}},
	}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// bookedSlots сериализуется как [], а не null
	assert.JSONEq(t, `{"bookedSlots":[]}`, rec.Body.String())
}
