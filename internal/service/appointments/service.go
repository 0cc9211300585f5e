package appointments

import (
	"context"
	"encoding/json"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/keyedmutex"
	"github.com/m04kA/SMC-QuoteService/pkg/ptr"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// Service сервис для работы со встречами
// Владеет ключом booking_appointments_v1 и координирует трёхшаговую
// последовательность каждой мутации: запись встречи, обновление связанной
// заявки, событие в журнале. Инвариант: на заявку приходится не больше
// одной живой (booked) встречи; перенос мутирует ту же запись, отмена
// оставляет мёртвую запись для истории
type Service struct {
	store       RecordStore
	requestRepo RequestLifecycle
	activityLog ActivityLog
	time        TimeProvider
	sleeper     Sleeper
	locks       *keyedmutex.KeyedMutex
	log         Logger
}

// NewService создает новый экземпляр сервиса встреч
func NewService(
	store RecordStore,
	requestRepo RequestLifecycle,
	activityLog ActivityLog,
	sleeper Sleeper,
	log Logger,
) *Service {
	return &Service{
		store:       store,
		requestRepo: requestRepo,
		activityLog: activityLog,
		time:        &RealTimeProvider{},
		sleeper:     sleeper,
		locks:       keyedmutex.New(),
		log:         log,
	}
}

// NewServiceWithClock создает сервис встреч с подменой времени (для тестов)
func NewServiceWithClock(
	store RecordStore,
	requestRepo RequestLifecycle,
	activityLog ActivityLog,
	sleeper Sleeper,
	log Logger,
	tp TimeProvider,
) *Service {
	s := NewService(store, requestRepo, activityLog, sleeper, log)
	s.time = tp
	return s
}

// GetByRequestID возвращает единственную живую встречу заявки
func (s *Service) GetByRequestID(ctx context.Context, requestID string) (*domain.Appointment, error) {
	s.sleeper.Sleep(domain.LatencyRead)

	items := s.safeRead(ctx)
	for i := range items {
		if items[i].RequestID == requestID && items[i].IsLive() {
			return &items[i], nil
		}
	}
	return nil, ErrAppointmentNotFound
}

// Save бронирует встречу или переносит уже существующую
// Если у заявки есть живая встреча - это перенос: дата и время
// перезаписываются в той же записи со штампом updatedAt. Иначе
// вставляется новая запись со статусом booked
func (s *Service) Save(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error) {
	if err := validateSlot(appointment.Date, appointment.Time); err != nil {
		s.log.Warn("Save: validation failed for request id=%s: %v", appointment.RequestID, err)
		return nil, err
	}

	s.locks.Lock(domain.KeyAppointments)

	items := s.safeRead(ctx)

	var old *domain.Appointment
	idx := -1
	for i := range items {
		if items[i].RequestID == appointment.RequestID && items[i].IsLive() {
			o := items[i]
			old = &o
			idx = i
			break
		}
	}

	isReschedule := idx >= 0
	var saved domain.Appointment

	if isReschedule {
		items[idx].Date = appointment.Date
		items[idx].Time = appointment.Time
		items[idx].UpdatedAt = ptr.Ptr(s.time.Now())
		saved = items[idx]
	} else {
		saved = domain.Appointment{
			RequestID: appointment.RequestID,
			Date:      appointment.Date,
			Time:      appointment.Time,
			Status:    domain.AppointmentBooked,
			CreatedAt: s.time.Now(),
		}
		items = append(items, saved)
	}

	s.safeWrite(ctx, items)
	s.locks.Unlock(domain.KeyAppointments)

	s.sleeper.Sleep(domain.LatencyBook)

	s.attachToRequest(ctx, saved)

	if isReschedule {
		s.activityLog.LogAppointmentRescheduled(ctx, saved.RequestID, old.Date, old.Time, saved.Date, saved.Time)
		s.log.Info("Save: rescheduled appointment for request id=%s: %s %s -> %s %s",
			saved.RequestID, old.Date, old.Time, saved.Date, saved.Time)
	} else {
		s.activityLog.LogAppointmentBooked(ctx, saved.RequestID, saved.Date, saved.Time)
		s.log.Info("Save: booked appointment for request id=%s: %s %s", saved.RequestID, saved.Date, saved.Time)
	}

	return &saved, nil
}

// Cancel отменяет живую встречу заявки
// Запись не удаляется: статус переключается в canceled и остается в
// истории. Если живой встречи нет - ErrAppointmentNotFound без побочных
// эффектов
func (s *Service) Cancel(ctx context.Context, requestID string) error {
	s.locks.Lock(domain.KeyAppointments)

	items := s.safeRead(ctx)

	idx := -1
	for i := range items {
		if items[i].RequestID == requestID && items[i].IsLive() {
			idx = i
			break
		}
	}

	if idx < 0 {
		s.locks.Unlock(domain.KeyAppointments)
		s.sleeper.Sleep(domain.LatencyMiss)
		s.log.Warn("Cancel: no live appointment for request id=%s", requestID)
		return ErrAppointmentNotFound
	}

	items[idx].Status = domain.AppointmentCanceled
	items[idx].UpdatedAt = ptr.Ptr(s.time.Now())

	s.safeWrite(ctx, items)
	s.locks.Unlock(domain.KeyAppointments)

	s.sleeper.Sleep(domain.LatencyCancel)

	if err := s.requestRepo.DetachAppointment(ctx, requestID); err != nil {
		// Заявка могла не сохраниться из-за проглоченной ошибки хранилища;
		// встреча уже отменена, поэтому продолжаем best-effort
		s.log.Warn("Cancel: failed to detach appointment from request id=%s: %v", requestID, err)
	}
	s.activityLog.LogAppointmentCanceled(ctx, requestID)

	s.log.Info("Cancel: canceled appointment for request id=%s", requestID)
	return nil
}

// Reschedule переносит живую встречу заявки на новые дату и время
// Мутирует существующую запись; если живой встречи нет - возвращает
// ErrAppointmentNotFound и ничего не создает
func (s *Service) Reschedule(ctx context.Context, requestID string, newDate string, newTime types.TimeString) (*domain.Appointment, error) {
	if err := validateSlot(newDate, newTime); err != nil {
		s.log.Warn("Reschedule: validation failed for request id=%s: %v", requestID, err)
		return nil, err
	}

	s.locks.Lock(domain.KeyAppointments)

	items := s.safeRead(ctx)

	idx := -1
	for i := range items {
		if items[i].RequestID == requestID && items[i].IsLive() {
			idx = i
			break
		}
	}

	if idx < 0 {
		s.locks.Unlock(domain.KeyAppointments)
		s.sleeper.Sleep(domain.LatencyMiss)
		s.log.Warn("Reschedule: no live appointment for request id=%s", requestID)
		return nil, ErrAppointmentNotFound
	}

	oldDate := items[idx].Date
	oldTime := items[idx].Time

	items[idx].Date = newDate
	items[idx].Time = newTime
	items[idx].UpdatedAt = ptr.Ptr(s.time.Now())
	updated := items[idx]

	s.safeWrite(ctx, items)
	s.locks.Unlock(domain.KeyAppointments)

	s.sleeper.Sleep(domain.LatencyReschedule)

	s.attachToRequest(ctx, updated)
	s.activityLog.LogAppointmentRescheduled(ctx, requestID, oldDate, oldTime, newDate, newTime)

	s.log.Info("Reschedule: request id=%s: %s %s -> %s %s", requestID, oldDate, oldTime, newDate, newTime)
	return &updated, nil
}

func (s *Service) attachToRequest(ctx context.Context, appointment domain.Appointment) {
	// Встреча уже записана; несуществующая или непрочитанная заявка не
	// откатывает бронирование - best-effort семантика трёхшаговой цепочки
	if err := s.requestRepo.AttachAppointment(ctx, appointment.RequestID, appointment); err != nil {
		s.log.Warn("attachToRequest: failed to attach appointment to request id=%s: %v",
			appointment.RequestID, err)
	}
}

// safeRead читает встречи; ошибки хранилища и битые записи проглатываются
func (s *Service) safeRead(ctx context.Context) []domain.Appointment {
	raw, err := s.store.ReadAll(ctx, domain.KeyAppointments)
	if err != nil {
		s.log.Error("appointments: failed to read appointments: %v", err)
		return []domain.Appointment{}
	}

	items := make([]domain.Appointment, 0, len(raw))
	for _, r := range raw {
		var a domain.Appointment
		if err := json.Unmarshal(r, &a); err != nil {
			s.log.Warn("appointments: skipping corrupted appointment record: %v", err)
			continue
		}
		items = append(items, a)
	}
	return items
}

// safeWrite перезаписывает встречи; ошибка записи логируется и теряется
func (s *Service) safeWrite(ctx context.Context, items []domain.Appointment) {
	raw := make([]json.RawMessage, 0, len(items))
	for _, a := range items {
		b, err := json.Marshal(a)
		if err != nil {
			s.log.Error("appointments: failed to marshal appointment for request %s: %v", a.RequestID, err)
			continue
		}
		raw = append(raw, b)
	}

	if err := s.store.WriteAll(ctx, domain.KeyAppointments, raw); err != nil {
		s.log.Error("appointments: failed to write appointments: %v", err)
	}
}
