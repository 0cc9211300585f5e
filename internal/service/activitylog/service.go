package activitylog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/keyedmutex"
	"github.com/m04kA/SMC-QuoteService/pkg/ptr"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// Service append-only журнал событий по заявкам
// События никогда не изменяются и не удаляются; ошибки хранилища
// проглатываются с логированием и не доходят до вызывающего кода -
// аудит не должен ломать основной сценарий
type Service struct {
	store RecordStore
	time  TimeProvider
	ids   IDGenerator
	locks *keyedmutex.KeyedMutex
	log   Logger
}

// NewService создает новый экземпляр журнала событий
func NewService(store RecordStore, log Logger) *Service {
	return &Service{
		store: store,
		time:  &RealTimeProvider{},
		ids:   &uuidGenerator{},
		locks: keyedmutex.New(),
		log:   log,
	}
}

// NewServiceWithClock создает журнал с подменой времени и генератора id (для тестов)
func NewServiceWithClock(store RecordStore, log Logger, tp TimeProvider, ids IDGenerator) *Service {
	return &Service{
		store: store,
		time:  tp,
		ids:   ids,
		locks: keyedmutex.New(),
		log:   log,
	}
}

// uuidGenerator генератор идентификаторов событий вида ACT-<uuid>
type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return "ACT-" + uuid.NewString()
}

// GetEventsForRequest возвращает все события заявки, отсортированные по
// времени по возрастанию (старые первыми)
func (s *Service) GetEventsForRequest(ctx context.Context, requestID string) []domain.ActivityEvent {
	events := s.safeRead(ctx)

	filtered := make([]domain.ActivityEvent, 0)
	for _, e := range events {
		if e.RequestID == requestID {
			filtered = append(filtered, e)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.Before(filtered[j].Timestamp)
	})

	return filtered
}

// AppendEvent присваивает событию новый id и дописывает его в журнал
func (s *Service) AppendEvent(ctx context.Context, event domain.ActivityEvent) {
	s.locks.Lock(domain.KeyActivity)
	defer s.locks.Unlock(domain.KeyActivity)

	event.ID = s.ids.NewID()

	events := s.safeRead(ctx)
	events = append(events, event)
	s.safeWrite(ctx, events)
}

// LogCreated логирует создание заявки
// timestamp позволяет выставить историческое время (для backfill);
// нулевое значение - текущий момент
func (s *Service) LogCreated(ctx context.Context, requestID string, timestamp time.Time) {
	if timestamp.IsZero() {
		timestamp = s.time.Now()
	}
	s.AppendEvent(ctx, domain.ActivityEvent{
		RequestID: requestID,
		Type:      domain.EventCreated,
		Message:   "Request submitted",
		Timestamp: timestamp,
	})
}

// LogStatusChange логирует смену статуса заявки
func (s *Service) LogStatusChange(ctx context.Context, requestID string, from, to domain.RequestStatus) {
	s.AppendEvent(ctx, domain.ActivityEvent{
		RequestID: requestID,
		Type:      domain.EventStatusChange,
		Message:   fmt.Sprintf("Status changed: %s → %s", from, to),
		Timestamp: s.time.Now(),
		Metadata: &domain.EventMetadata{
			FromStatus: ptr.Ptr(string(from)),
			ToStatus:   ptr.Ptr(string(to)),
		},
	})
}

// LogAppointmentBooked логирует запись на встречу
func (s *Service) LogAppointmentBooked(ctx context.Context, requestID, date string, t types.TimeString) {
	s.AppendEvent(ctx, domain.ActivityEvent{
		RequestID: requestID,
		Type:      domain.EventAppointmentBooked,
		Message:   fmt.Sprintf("Appointment booked for %s at %s", formatDate(date), formatTime(t)),
		Timestamp: s.time.Now(),
		Metadata: &domain.EventMetadata{
			AppointmentDate: ptr.Ptr(date),
			AppointmentTime: ptr.Ptr(t.String()),
		},
	})
}

// LogAppointmentRescheduled логирует перенос встречи (со старым и новым временем)
func (s *Service) LogAppointmentRescheduled(ctx context.Context, requestID, oldDate string, oldTime types.TimeString, newDate string, newTime types.TimeString) {
	oldFormatted := fmt.Sprintf("%s at %s", formatDate(oldDate), formatTime(oldTime))
	newFormatted := fmt.Sprintf("%s at %s", formatDate(newDate), formatTime(newTime))
	s.AppendEvent(ctx, domain.ActivityEvent{
		RequestID: requestID,
		Type:      domain.EventAppointmentRescheduled,
		Message:   fmt.Sprintf("Appointment rescheduled from %s to %s", oldFormatted, newFormatted),
		Timestamp: s.time.Now(),
		Metadata: &domain.EventMetadata{
			AppointmentDate: ptr.Ptr(newDate),
			AppointmentTime: ptr.Ptr(newTime.String()),
		},
	})
}

// LogAppointmentCanceled логирует отмену встречи
func (s *Service) LogAppointmentCanceled(ctx context.Context, requestID string) {
	s.AppendEvent(ctx, domain.ActivityEvent{
		RequestID: requestID,
		Type:      domain.EventAppointmentCanceled,
		Message:   "Appointment canceled",
		Timestamp: s.time.Now(),
	})
}

// LogQuoteCreated логирует отправку расчета клиенту
func (s *Service) LogQuoteCreated(ctx context.Context, requestID string) {
	s.AppendEvent(ctx, domain.ActivityEvent{
		RequestID: requestID,
		Type:      domain.EventQuoteCreated,
		Message:   "Quote sent to customer",
		Timestamp: s.time.Now(),
	})
}

// LogNote логирует произвольную заметку
func (s *Service) LogNote(ctx context.Context, requestID, note string) {
	s.AppendEvent(ctx, domain.ActivityEvent{
		RequestID: requestID,
		Type:      domain.EventNote,
		Message:   note,
		Timestamp: s.time.Now(),
	})
}

// LogAttachmentAdded логирует добавление вложения
func (s *Service) LogAttachmentAdded(ctx context.Context, requestID, fileName string) {
	s.AppendEvent(ctx, domain.ActivityEvent{
		RequestID: requestID,
		Type:      domain.EventAttachmentAdded,
		Message:   fmt.Sprintf("Attachment added: %s", fileName),
		Timestamp: s.time.Now(),
		Metadata: &domain.EventMetadata{
			FileName: ptr.Ptr(fileName),
		},
	})
}

// BackfillMissingEvents идемпотентный ремонтный проход: для каждой заявки
// без единого события синтезирует событие created с её собственным createdAt
// Вызывается на старте сервиса по полному списку заявок
func (s *Service) BackfillMissingEvents(ctx context.Context, requests []domain.QuoteRequest) {
	events := s.safeRead(ctx)

	withEvents := make(map[string]struct{}, len(events))
	for _, e := range events {
		withEvents[e.RequestID] = struct{}{}
	}

	backfilled := 0
	for _, req := range requests {
		if _, ok := withEvents[req.ID]; ok {
			continue
		}
		s.LogCreated(ctx, req.ID, req.CreatedAt)
		backfilled++
	}

	if backfilled > 0 {
		s.log.Info("BackfillMissingEvents: synthesized %d created events", backfilled)
	}
}

// safeRead читает журнал; ошибки хранилища и отдельных записей проглатываются
func (s *Service) safeRead(ctx context.Context) []domain.ActivityEvent {
	raw, err := s.store.ReadAll(ctx, domain.KeyActivity)
	if err != nil {
		s.log.Error("activitylog: failed to read events: %v", err)
		return []domain.ActivityEvent{}
	}

	events := make([]domain.ActivityEvent, 0, len(raw))
	for _, r := range raw {
		var e domain.ActivityEvent
		if err := json.Unmarshal(r, &e); err != nil {
			s.log.Warn("activitylog: skipping corrupted event record: %v", err)
			continue
		}
		events = append(events, e)
	}
	return events
}

// safeWrite перезаписывает журнал; ошибка записи логируется и теряется
func (s *Service) safeWrite(ctx context.Context, events []domain.ActivityEvent) {
	raw := make([]json.RawMessage, 0, len(events))
	for _, e := range events {
		b, err := json.Marshal(e)
		if err != nil {
			s.log.Error("activitylog: failed to marshal event %s: %v", e.ID, err)
			continue
		}
		raw = append(raw, b)
	}

	if err := s.store.WriteAll(ctx, domain.KeyActivity, raw); err != nil {
		s.log.Error("activitylog: failed to write events: %v", err)
	}
}

// formatDate человекочитаемая дата для сообщений, например "Tue, Jan 14"
func formatDate(isoDate string) string {
	d, err := time.Parse(domain.DateFormat, isoDate)
	if err != nil {
		return isoDate
	}
	return d.Format("Mon, Jan 2")
}

// formatTime человекочитаемое время для сообщений, например "10:30 AM"
func formatTime(t types.TimeString) string {
	parsed, err := t.ToTime()
	if err != nil {
		return t.String()
	}
	return parsed.Format("3:04 PM")
}
