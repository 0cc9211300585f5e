package attachments

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/keyedmutex"
)

// FileMeta метаданные загружаемого файла
// Сами байты файла нигде не хранятся
type FileMeta struct {
	FileName   string
	FileType   string
	FileSizeKb int
	Note       *string
}

// Service сервис вложений (только метаданные)
type Service struct {
	store       RecordStore
	activityLog ActivityLog
	time        TimeProvider
	ids         IDGenerator
	locks       *keyedmutex.KeyedMutex
	log         Logger
}

// NewService создает новый экземпляр сервиса вложений
func NewService(store RecordStore, activityLog ActivityLog, log Logger) *Service {
	return &Service{
		store:       store,
		activityLog: activityLog,
		time:        &RealTimeProvider{},
		ids:         &uuidGenerator{},
		locks:       keyedmutex.New(),
		log:         log,
	}
}

// NewServiceWithClock создает сервис вложений с подменой времени и генератора id (для тестов)
func NewServiceWithClock(store RecordStore, activityLog ActivityLog, log Logger, tp TimeProvider, ids IDGenerator) *Service {
	s := NewService(store, activityLog, log)
	s.time = tp
	s.ids = ids
	return s
}

// uuidGenerator генератор идентификаторов вложений вида ATT-<uuid>
type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return "ATT-" + uuid.NewString()
}

// GetForRequest возвращает вложения заявки, новые первыми
func (s *Service) GetForRequest(ctx context.Context, requestID string) []domain.Attachment {
	items := s.safeRead(ctx)

	filtered := make([]domain.Attachment, 0)
	for _, a := range items {
		if a.RequestID == requestID {
			filtered = append(filtered, a)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].UploadedAt.After(filtered[j].UploadedAt)
	})

	return filtered
}

// Count возвращает количество вложений заявки
func (s *Service) Count(ctx context.Context, requestID string) int {
	return len(s.GetForRequest(ctx, requestID))
}

// Add добавляет метаданные вложения и пишет событие в журнал
func (s *Service) Add(ctx context.Context, requestID string, meta FileMeta) domain.Attachment {
	s.locks.Lock(domain.KeyAttachments)

	attachment := domain.Attachment{
		ID:         s.ids.NewID(),
		RequestID:  requestID,
		FileName:   meta.FileName,
		FileType:   meta.FileType,
		FileSizeKb: meta.FileSizeKb,
		UploadedAt: s.time.Now(),
		Note:       meta.Note,
	}

	items := s.safeRead(ctx)
	items = append(items, attachment)
	s.safeWrite(ctx, items)

	s.locks.Unlock(domain.KeyAttachments)

	s.activityLog.LogAttachmentAdded(ctx, requestID, meta.FileName)
	s.log.Info("Add: attachment %s (%s) for request id=%s", attachment.ID, meta.FileName, requestID)

	return attachment
}

// Remove удаляет вложение заявки по id
func (s *Service) Remove(ctx context.Context, requestID, attachmentID string) {
	s.locks.Lock(domain.KeyAttachments)
	defer s.locks.Unlock(domain.KeyAttachments)

	items := s.safeRead(ctx)

	filtered := make([]domain.Attachment, 0, len(items))
	for _, a := range items {
		if a.ID == attachmentID && a.RequestID == requestID {
			continue
		}
		filtered = append(filtered, a)
	}

	s.safeWrite(ctx, filtered)
}

// safeRead читает вложения; ошибки хранилища и битые записи проглатываются
func (s *Service) safeRead(ctx context.Context) []domain.Attachment {
	raw, err := s.store.ReadAll(ctx, domain.KeyAttachments)
	if err != nil {
		s.log.Error("attachments: failed to read attachments: %v", err)
		return []domain.Attachment{}
	}

	items := make([]domain.Attachment, 0, len(raw))
	for _, r := range raw {
		var a domain.Attachment
		if err := json.Unmarshal(r, &a); err != nil {
			s.log.Warn("attachments: skipping corrupted attachment record: %v", err)
			continue
		}
		items = append(items, a)
	}
	return items
}

// safeWrite перезаписывает вложения; ошибка записи логируется и теряется
func (s *Service) safeWrite(ctx context.Context, items []domain.Attachment) {
	raw := make([]json.RawMessage, 0, len(items))
	for _, a := range items {
		b, err := json.Marshal(a)
		if err != nil {
			s.log.Error("attachments: failed to marshal attachment %s: %v", a.ID, err)
			continue
		}
		raw = append(raw, b)
	}

	if err := s.store.WriteAll(ctx, domain.KeyAttachments, raw); err != nil {
		s.log.Error("attachments: failed to write attachments: %v", err)
	}
}
