package get_available_slots

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	slotsUseCase "github.com/m04kA/SMC-QuoteService/internal/usecase/get_available_slots"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newHandler() *Handler {
	clock := &fakeClock{now: time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)}
	uc := slotsUseCase.NewUseCaseWithClock(nopLogger{}, clock)
	return NewHandler(uc, nopLogger{})
}

func doRequest(h *Handler, rawDate string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date="+rawDate, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_InvalidDate(t *testing.T) {
	h := newHandler()

	assert.Equal(t, http.StatusBadRequest, doRequest(h, "").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, "10-03-2025").Code)
}

func TestHandle_BusinessDay(t *testing.T) {
	h := newHandler()

	rec := doRequest(h, "2025-03-10")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Len(t, resp.Slots, 14)
}

func TestHandle_Weekend(t *testing.T) {
	h := newHandler()

	rec := doRequest(h, "2025-03-08")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Slots)
}
