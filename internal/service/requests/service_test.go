package requests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type statusChange struct {
	requestID string
	from, to  domain.RequestStatus
}

type fakeActivityLog struct {
	changes []statusChange
}

func (l *fakeActivityLog) LogStatusChange(_ context.Context, requestID string, from, to domain.RequestStatus) {
	l.changes = append(l.changes, statusChange{requestID: requestID, from: from, to: to})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeActivityLog) {
	activity := &fakeActivityLog{}
	clock := &fakeClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	return NewServiceWithClock(memory.NewStore(), activity, nopLogger{}, clock), activity
}

func sampleRequest(id string, createdAt time.Time) domain.QuoteRequest {
	return domain.QuoteRequest{
		ID:            id,
		ServiceType:   "Bathroom Remodel",
		CustomerName:  "Jane Smith",
		CustomerEmail: "jane@example.com",
		CreatedAt:     createdAt,
		Status:        domain.StatusSubmitted,
	}
}

func TestGetAll_NewestFirst(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	older := sampleRequest("REQ-2025-0001", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	newer := sampleRequest("REQ-2025-0002", time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC))
	require.NoError(t, svc.Save(ctx, older))
	require.NoError(t, svc.Save(ctx, newer))

	all := svc.GetAll(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "REQ-2025-0002", all[0].ID)
	assert.Equal(t, "REQ-2025-0001", all[1].ID)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), "REQ-2025-0099")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestSave_UpdateStampsUpdatedAt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := sampleRequest("REQ-2025-0001", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, svc.Save(ctx, req))

	req.Details = "updated details"
	require.NoError(t, svc.Save(ctx, req))

	stored, err := svc.GetByID(ctx, "REQ-2025-0001")
	require.NoError(t, err)
	assert.Equal(t, "updated details", stored.Details)
	require.NotNil(t, stored.UpdatedAt)
	assert.Equal(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), *stored.UpdatedAt)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, _ := newTestService()

	err := svc.UpdateStatus(context.Background(), "REQ-2025-0001", "Bogus")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.UpdateStatus(context.Background(), "REQ-2025-0099", domain.StatusInReview)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestUpdateStatus_LogsChange(t *testing.T) {
	svc, activity := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, sampleRequest("REQ-2025-0001", time.Now())))
	require.NoError(t, svc.UpdateStatus(ctx, "REQ-2025-0001", domain.StatusInReview))

	stored, err := svc.GetByID(ctx, "REQ-2025-0001")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInReview, stored.Status)

	require.Len(t, activity.changes, 1)
	assert.Equal(t, statusChange{
		requestID: "REQ-2025-0001",
		from:      domain.StatusSubmitted,
		to:        domain.StatusInReview,
	}, activity.changes[0])
}

func TestUpdateStatus_SameStatusNotLogged(t *testing.T) {
	svc, activity := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, sampleRequest("REQ-2025-0001", time.Now())))
	require.NoError(t, svc.UpdateStatus(ctx, "REQ-2025-0001", domain.StatusSubmitted))

	assert.Empty(t, activity.changes)
}

func TestAttachAppointment_PromotesToScheduled(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, sampleRequest("REQ-2025-0001", time.Now())))

	appointment := domain.Appointment{
		RequestID: "REQ-2025-0001",
		Date:      "2025-03-10",
		Time:      types.TimeString("10:00"),
		Status:    domain.AppointmentBooked,
	}
	require.NoError(t, svc.AttachAppointment(ctx, "REQ-2025-0001", appointment))

	stored, err := svc.GetByID(ctx, "REQ-2025-0001")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, stored.Status)
	require.NotNil(t, stored.Appointment)
	assert.Equal(t, "2025-03-10", stored.Appointment.Date)
}

func TestAttachAppointment_QuotedStaysQuoted(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := sampleRequest("REQ-2025-0001", time.Now())
	req.Status = domain.StatusQuoted
	require.NoError(t, svc.Save(ctx, req))

	appointment := domain.Appointment{RequestID: "REQ-2025-0001", Date: "2025-03-10", Time: "10:00"}
	require.NoError(t, svc.AttachAppointment(ctx, "REQ-2025-0001", appointment))

	stored, err := svc.GetByID(ctx, "REQ-2025-0001")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusQuoted, stored.Status)
	assert.NotNil(t, stored.Appointment)
}

func TestAttachAppointment_NotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.AttachAppointment(context.Background(), "REQ-2025-0099", domain.Appointment{})
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestDetachAppointment_RollsBackToInReview(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, sampleRequest("REQ-2025-0001", time.Now())))
	appointment := domain.Appointment{RequestID: "REQ-2025-0001", Date: "2025-03-10", Time: "10:00"}
	require.NoError(t, svc.AttachAppointment(ctx, "REQ-2025-0001", appointment))

	require.NoError(t, svc.DetachAppointment(ctx, "REQ-2025-0001"))

	stored, err := svc.GetByID(ctx, "REQ-2025-0001")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInReview, stored.Status)
	assert.Nil(t, stored.Appointment)
}

// failingStore хранилище, у которого отказывают и чтение, и запись
type failingStore struct{}

func (failingStore) ReadAll(context.Context, string) ([]json.RawMessage, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) WriteAll(context.Context, string, []json.RawMessage) error {
	return errors.New("connection refused")
}

func newFailingService() *Service {
	clock := &fakeClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	return NewServiceWithClock(failingStore{}, &fakeActivityLog{}, nopLogger{}, clock)
}

func TestGetAll_ReadFailureTreatedAsEmpty(t *testing.T) {
	svc := newFailingService()

	assert.Empty(t, svc.GetAll(context.Background()))
}

func TestGetByID_ReadFailureIsNotFound(t *testing.T) {
	svc := newFailingService()

	_, err := svc.GetByID(context.Background(), "REQ-2025-0001")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestSave_WriteFailureSwallowed(t *testing.T) {
	svc := newFailingService()

	// Ошибка записи логируется и теряется - вызывающий код её не видит
	err := svc.Save(context.Background(), sampleRequest("REQ-2025-0001", time.Now()))
	assert.NoError(t, err)
}

func TestGetAll_SkipsCorruptedRecords(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	good, err := json.Marshal(sampleRequest("REQ-2025-0001", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	require.NoError(t, store.WriteAll(ctx, domain.KeyQuoteRequests, []json.RawMessage{
		json.RawMessage(`{broken`),
		good,
		json.RawMessage(`"not an object"`),
	}))

	clock := &fakeClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	svc := NewServiceWithClock(store, &fakeActivityLog{}, nopLogger{}, clock)

	// Битые записи пропускаются, валидные выживают
	all := svc.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "REQ-2025-0001", all[0].ID)
}

func TestDetachAppointment_ClosedStaysClosed(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := sampleRequest("REQ-2025-0001", time.Now())
	req.Status = domain.StatusClosed
	require.NoError(t, svc.Save(ctx, req))

	require.NoError(t, svc.DetachAppointment(ctx, "REQ-2025-0001"))

	stored, err := svc.GetByID(ctx, "REQ-2025-0001")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusClosed, stored.Status)
}
