package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/ptr"
)

// UseCase use case расчета доступных слотов на день
// Для любой даты, кроме сегодняшней, результат - чистая функция строки
// даты: обе блокировки (обед и псевдослучайная) детерминированы.
// Пометка Past зависит от настенных часов и применяется только к сегодня
type UseCase struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// NewUseCaseWithClock создает use case с подменой времени (для тестов)
func NewUseCaseWithClock(logger Logger, tp TimeProvider) *UseCase {
	return &UseCase{
		timeProvider: tp,
		logger:       logger,
	}
}

// Execute рассчитывает слоты на указанную дату
// Выходные дни не обслуживаются - возвращается пустой список
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	dateIso := req.Date.Format(domain.DateFormat)

	if isWeekend(req.Date) {
		uc.logger.Info("GetAvailableSlots: date=%s is a weekend, no slots", dateIso)
		return &Response{Date: req.Date, Slots: []Slot{}}, nil
	}

	times := generateCandidateTimes()
	lunch := lunchIndexes(times)
	blocked := blockedIndexes(dateHash(dateIso), times, lunch)

	now := uc.timeProvider.Now()
	isToday := isSameDay(req.Date, now)
	currentTime := now.Format(domain.TimeFormat)

	slots := make([]Slot, 0, len(times))
	for i, t := range times {
		slot := Slot{Time: t, Available: true}

		if _, isLunch := lunch[i]; isLunch {
			slot.Available = false
			slot.Reason = ptr.Ptr(ReasonLunch)
		}
		if _, isBlocked := blocked[i]; isBlocked {
			slot.Available = false
			slot.Reason = ptr.Ptr(ReasonUnavailable)
		}

		// Прошедшие слоты помечаются только для сегодняшней даты
		if isToday && t.String() <= currentTime {
			slot.Available = false
			slot.Reason = ptr.Ptr(ReasonPast)
		}

		slots = append(slots, slot)
	}

	uc.logger.Info("GetAvailableSlots: date=%s, slots=%d, blocked=%d", dateIso, len(slots), len(blocked))

	return &Response{Date: req.Date, Slots: slots}, nil
}
