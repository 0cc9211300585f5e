package create_request

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// UseCase use case создания заявки на расчет
// Симулирует поведение внешней приемной системы: задержку отправки
// 500-900мс и сбои - детерминированный (email содержит "fail") и
// независимый случайный (~5% на каждый вызов). Оба правила действуют
// одновременно как независимые условия ИЛИ. При сбое ничего не
// сохраняется
type UseCase struct {
	mu          sync.Mutex
	requestRepo RequestRepository
	activityLog ActivityLog
	time        TimeProvider
	rand        Rand
	sleeper     Sleeper
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo RequestRepository,
	activityLog ActivityLog,
	sleeper Sleeper,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo: requestRepo,
		activityLog: activityLog,
		time:        &RealTimeProvider{},
		rand:        &RealRand{},
		sleeper:     sleeper,
		logger:      logger,
	}
}

// NewUseCaseWithClock создает use case с подменой времени и случайности (для тестов)
func NewUseCaseWithClock(
	requestRepo RequestRepository,
	activityLog ActivityLog,
	sleeper Sleeper,
	logger Logger,
	tp TimeProvider,
	rnd Rand,
) *UseCase {
	uc := NewUseCase(requestRepo, activityLog, sleeper, logger)
	uc.time = tp
	uc.rand = rnd
	return uc
}

// Execute создает новую заявку
// Генерация id и сохранение выполняются под мьютексом: два
// последовательных вызова в одном году дают номера N и N+1
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.QuoteRequest, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRequest: validation failed: %v", err)
		return nil, err
	}

	latency := domain.LatencySubmitBase + time.Duration(uc.rand.Float64()*float64(domain.LatencySubmitJitter))
	uc.sleeper.Sleep(latency)

	willFail := strings.Contains(strings.ToLower(req.CustomerEmail), "fail") ||
		uc.rand.Float64() < domain.SubmitFailureRate
	if willFail {
		uc.logger.Warn("CreateRequest: simulated submission failure for email=%s", req.CustomerEmail)
		return nil, ErrSubmissionFailed
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.time.Now()
	existing := uc.requestRepo.GetAll(ctx)
	id := nextRequestID(existing, now.Year())

	record := domain.QuoteRequest{
		ID:                id,
		ServiceType:       req.ServiceType,
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		AddressLine1:      req.AddressLine1,
		AddressLine2:      req.AddressLine2,
		City:              req.City,
		State:             req.State,
		Zip:               req.Zip,
		Details:           req.Details,
		PreferredDateFrom: req.PreferredDateFrom,
		PreferredDateTo:   req.PreferredDateTo,
		CreatedAt:         now,
		Status:            domain.StatusSubmitted,
	}

	if err := uc.requestRepo.Save(ctx, record); err != nil {
		uc.logger.Error("CreateRequest: failed to save request %s: %v", id, err)
		return nil, err
	}

	uc.activityLog.LogCreated(ctx, id, now)

	uc.logger.Info("CreateRequest: created request id=%s for %s", id, req.CustomerEmail)
	return &record, nil
}
