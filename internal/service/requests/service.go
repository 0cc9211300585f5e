package requests

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/keyedmutex"
	"github.com/m04kA/SMC-QuoteService/pkg/ptr"
)

// Service хранилище жизненного цикла заявок
// Владеет ключом quote_requests: CRUD по заявкам и переходы статусов,
// в том числе вызванные событиями встреч. Заявки физически не удаляются
type Service struct {
	store       RecordStore
	activityLog ActivityLog
	time        TimeProvider
	locks       *keyedmutex.KeyedMutex
	log         Logger
}

// NewService создает новый экземпляр хранилища заявок
func NewService(store RecordStore, activityLog ActivityLog, log Logger) *Service {
	return &Service{
		store:       store,
		activityLog: activityLog,
		time:        &RealTimeProvider{},
		locks:       keyedmutex.New(),
		log:         log,
	}
}

// NewServiceWithClock создает хранилище заявок с подменой времени (для тестов)
func NewServiceWithClock(store RecordStore, activityLog ActivityLog, log Logger, tp TimeProvider) *Service {
	return &Service{
		store:       store,
		activityLog: activityLog,
		time:        tp,
		locks:       keyedmutex.New(),
		log:         log,
	}
}

// GetAll возвращает все заявки, отсортированные по createdAt по убыванию
// (новые первыми)
func (s *Service) GetAll(ctx context.Context) []domain.QuoteRequest {
	items := s.safeRead(ctx)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items
}

// GetByID возвращает заявку по id
func (s *Service) GetByID(ctx context.Context, id string) (*domain.QuoteRequest, error) {
	items := s.safeRead(ctx)

	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, ErrRequestNotFound
}

// Save сохраняет заявку: обновляет существующую (со штампом updatedAt)
// или добавляет новую
func (s *Service) Save(ctx context.Context, request domain.QuoteRequest) error {
	s.locks.Lock(domain.KeyQuoteRequests)
	defer s.locks.Unlock(domain.KeyQuoteRequests)

	items := s.safeRead(ctx)

	found := false
	for i := range items {
		if items[i].ID == request.ID {
			request.UpdatedAt = ptr.Ptr(s.time.Now())
			items[i] = request
			found = true
			break
		}
	}
	if !found {
		items = append(items, request)
	}

	s.safeWrite(ctx, items)
	return nil
}

// UpdateStatus безусловно перезаписывает статус заявки и штампует updatedAt
// Используется ручными действиями смены статуса и сценарием создания
// расчета, независимо от состояния встречи
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	s.locks.Lock(domain.KeyQuoteRequests)

	items := s.safeRead(ctx)

	var from domain.RequestStatus
	found := false
	for i := range items {
		if items[i].ID == id {
			from = items[i].Status
			items[i].Status = status
			items[i].UpdatedAt = ptr.Ptr(s.time.Now())
			found = true
			break
		}
	}

	if !found {
		s.locks.Unlock(domain.KeyQuoteRequests)
		s.log.Warn("UpdateStatus: request id=%s not found", id)
		return ErrRequestNotFound
	}

	s.safeWrite(ctx, items)
	s.locks.Unlock(domain.KeyQuoteRequests)

	if from != status {
		s.activityLog.LogStatusChange(ctx, id, from, status)
	}

	s.log.Info("UpdateStatus: request id=%s status %s -> %s", id, from, status)
	return nil
}

// AttachAppointment вкладывает встречу в заявку
// Статусы Submitted и In Review автоматически продвигаются до Scheduled;
// Quoted, Closed и уже Scheduled не трогаются
func (s *Service) AttachAppointment(ctx context.Context, requestID string, appointment domain.Appointment) error {
	s.locks.Lock(domain.KeyQuoteRequests)
	defer s.locks.Unlock(domain.KeyQuoteRequests)

	items := s.safeRead(ctx)

	for i := range items {
		if items[i].ID != requestID {
			continue
		}

		items[i].Appointment = &appointment
		if items[i].CanAutoPromote() {
			items[i].Status = domain.StatusScheduled
		}
		items[i].UpdatedAt = ptr.Ptr(s.time.Now())

		s.safeWrite(ctx, items)
		s.log.Info("AttachAppointment: request id=%s, date=%s, time=%s, status=%s",
			requestID, appointment.Date, appointment.Time, items[i].Status)
		return nil
	}

	s.log.Warn("AttachAppointment: request id=%s not found", requestID)
	return ErrRequestNotFound
}

// DetachAppointment убирает встречу из заявки
// Статус Scheduled откатывается до In Review; Quoted и Closed не трогаются
func (s *Service) DetachAppointment(ctx context.Context, requestID string) error {
	s.locks.Lock(domain.KeyQuoteRequests)
	defer s.locks.Unlock(domain.KeyQuoteRequests)

	items := s.safeRead(ctx)

	for i := range items {
		if items[i].ID != requestID {
			continue
		}

		items[i].Appointment = nil
		if items[i].Status == domain.StatusScheduled {
			items[i].Status = domain.StatusInReview
		}
		items[i].UpdatedAt = ptr.Ptr(s.time.Now())

		s.safeWrite(ctx, items)
		s.log.Info("DetachAppointment: request id=%s, status=%s", requestID, items[i].Status)
		return nil
	}

	s.log.Warn("DetachAppointment: request id=%s not found", requestID)
	return ErrRequestNotFound
}

// safeRead читает заявки; ошибки хранилища и битые записи проглатываются
func (s *Service) safeRead(ctx context.Context) []domain.QuoteRequest {
	raw, err := s.store.ReadAll(ctx, domain.KeyQuoteRequests)
	if err != nil {
		s.log.Error("requests: failed to read quote requests: %v", err)
		return []domain.QuoteRequest{}
	}

	items := make([]domain.QuoteRequest, 0, len(raw))
	for _, r := range raw {
		var q domain.QuoteRequest
		if err := json.Unmarshal(r, &q); err != nil {
			s.log.Warn("requests: skipping corrupted request record: %v", err)
			continue
		}
		items = append(items, q)
	}
	return items
}

// safeWrite перезаписывает заявки; ошибка записи логируется и теряется
func (s *Service) safeWrite(ctx context.Context, items []domain.QuoteRequest) {
	raw := make([]json.RawMessage, 0, len(items))
	for _, q := range items {
		b, err := json.Marshal(q)
		if err != nil {
			s.log.Error("requests: failed to marshal request %s: %v", q.ID, err)
			continue
		}
		raw = append(raw, b)
	}

	if err := s.store.WriteAll(ctx, domain.KeyQuoteRequests, raw); err != nil {
		s.log.Error("requests: failed to write quote requests: %v", err)
	}
}
