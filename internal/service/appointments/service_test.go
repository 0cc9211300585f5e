package appointments

import (
	"context"
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

type fakeLifecycle struct {
	attached []domain.Appointment
	detached []string
}

func (l *fakeLifecycle) AttachAppointment(_ context.Context, _ string, appointment domain.Appointment) error {
	l.attached = append(l.attached, appointment)
	return nil
}

func (l *fakeLifecycle) DetachAppointment(_ context.Context, requestID string) error {
	l.detached = append(l.detached, requestID)
	return nil
}

type loggedEvent struct {
	kind      string
	requestID string
	date      string
	time      types.TimeString
}

type fakeActivityLog struct {
	events []loggedEvent
}

func (l *fakeActivityLog) LogAppointmentBooked(_ context.Context, requestID, date string, t types.TimeString) {
	l.events = append(l.events, loggedEvent{kind: "booked", requestID: requestID, date: date, time: t})
}

func (l *fakeActivityLog) LogAppointmentRescheduled(_ context.Context, requestID, _ string, _ types.TimeString, newDate string, newTime types.TimeString) {
	l.events = append(l.events, loggedEvent{kind: "rescheduled", requestID: requestID, date: newDate, time: newTime})
}

func (l *fakeActivityLog) LogAppointmentCanceled(_ context.Context, requestID string) {
	l.events = append(l.events, loggedEvent{kind: "canceled", requestID: requestID})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeLifecycle, *fakeActivityLog) {
	lifecycle := &fakeLifecycle{}
	activity := &fakeActivityLog{}
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewServiceWithClock(memory.NewStore(), lifecycle, activity, &NoopSleeper{}, nopLogger{}, clock)
	return svc, lifecycle, activity
}

func TestSave_BooksNewAppointment(t *testing.T) {
	svc, lifecycle, activity := newTestService()
	ctx := context.Background()

	saved, err := svc.Save(ctx, domain.Appointment{
		RequestID: "REQ-2025-0001",
		Date:      "2025-03-10",
		Time:      "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.AppointmentBooked, saved.Status)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), saved.CreatedAt)
	assert.Nil(t, saved.UpdatedAt)

	require.Len(t, lifecycle.attached, 1)
	require.Len(t, activity.events, 1)
	assert.Equal(t, loggedEvent{kind: "booked", requestID: "REQ-2025-0001", date: "2025-03-10", time: "10:00"}, activity.events[0])
}

func TestSave_SecondSaveReschedulesInPlace(t *testing.T) {
	svc, _, activity := newTestService()
	ctx := context.Background()

	_, err := svc.Save(ctx, domain.Appointment{RequestID: "REQ-2025-0001", Date: "2025-03-10", Time: "10:00"})
	require.NoError(t, err)

	updated, err := svc.Save(ctx, domain.Appointment{RequestID: "REQ-2025-0001", Date: "2025-03-11", Time: "14:30"})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-11", updated.Date)
	assert.Equal(t, types.TimeString("14:30"), updated.Time)
	assert.NotNil(t, updated.UpdatedAt)

	// Живая встреча по-прежнему одна
	live, err := svc.GetByRequestID(ctx, "REQ-2025-0001")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11", live.Date)

	require.Len(t, activity.events, 2)
	assert.Equal(t, "rescheduled", activity.events[1].kind)
}

func TestSave_ValidatesSlot(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Save(ctx, domain.Appointment{RequestID: "REQ-2025-0001", Date: "not-a-date", Time: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.Save(ctx, domain.Appointment{RequestID: "REQ-2025-0001", Date: "2025-03-10", Time: "10:15"})
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestGetByRequestID_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetByRequestID(context.Background(), "REQ-2025-0099")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_KeepsDeadRecord(t *testing.T) {
	svc, lifecycle, activity := newTestService()
	ctx := context.Background()

	_, err := svc.Save(ctx, domain.Appointment{RequestID: "REQ-2025-0001", Date: "2025-03-10", Time: "10:00"})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, "REQ-2025-0001"))

	// Живой встречи больше нет, но запись осталась в хранилище
	_, err = svc.GetByRequestID(ctx, "REQ-2025-0001")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	items := svc.safeRead(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, domain.AppointmentCanceled, items[0].Status)

	assert.Equal(t, []string{"REQ-2025-0001"}, lifecycle.detached)
	assert.Equal(t, "canceled", activity.events[len(activity.events)-1].kind)
}

func TestCancel_NoLiveAppointment(t *testing.T) {
	svc, lifecycle, _ := newTestService()

	err := svc.Cancel(context.Background(), "REQ-2025-0099")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Empty(t, lifecycle.detached)
}

func TestCancelThenBook_CreatesSecondRecord(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Save(ctx, domain.Appointment{RequestID: "REQ-2025-0001", Date: "2025-03-10", Time: "10:00"})
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, "REQ-2025-0001"))

	_, err = svc.Save(ctx, domain.Appointment{RequestID: "REQ-2025-0001", Date: "2025-03-12", Time: "09:30"})
	require.NoError(t, err)

	// Мертвая запись сохранена, живая добавлена новой
	items := svc.safeRead(ctx)
	require.Len(t, items, 2)

	live, err := svc.GetByRequestID(ctx, "REQ-2025-0001")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-12", live.Date)
}

func TestReschedule_MutatesLiveRecord(t *testing.T) {
	svc, lifecycle, activity := newTestService()
	ctx := context.Background()

	_, err := svc.Save(ctx, domain.Appointment{RequestID: "REQ-2025-0001", Date: "2025-03-10", Time: "10:00"})
	require.NoError(t, err)

	updated, err := svc.Reschedule(ctx, "REQ-2025-0001", "2025-03-12", "11:30")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-12", updated.Date)
	assert.Equal(t, types.TimeString("11:30"), updated.Time)
	assert.Equal(t, domain.AppointmentBooked, updated.Status)

	items := svc.safeRead(ctx)
	assert.Len(t, items, 1)

	assert.Len(t, lifecycle.attached, 2)
	assert.Equal(t, "rescheduled", activity.events[len(activity.events)-1].kind)
}

func TestReschedule_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Reschedule(context.Background(), "REQ-2025-0099", "2025-03-12", "11:30")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestValidateSlot(t *testing.T) {
	assert.NoError(t, validateSlot("2025-03-10", "09:00"))
	assert.NoError(t, validateSlot("2025-03-10", "15:30"))
	assert.ErrorIs(t, validateSlot("2025-13-40", "09:00"), ErrInvalidDate)
	assert.ErrorIs(t, validateSlot("2025-03-10", "9am"), ErrInvalidTime)
	assert.ErrorIs(t, validateSlot("2025-03-10", "10:45"), ErrInvalidTime)
}
