package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addAttachmentHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/add_attachment"
	cancelAppointmentHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/cancel_appointment"
	createRequestHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/create_request"
	deleteAttachmentHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/delete_attachment"
	getActivityHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/get_activity"
	getAttachmentsHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/get_attachments"
	getAvailableSlotsHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/get_available_slots"
	getRequestHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/get_request"
	getRequestsHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/get_requests"
	rescheduleAppointmentHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/reschedule_appointment"
	saveAppointmentHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/save_appointment"
	updateRequestStatusHandler "github.com/m04kA/SMC-QuoteService/internal/api/handlers/update_request_status"
	"github.com/m04kA/SMC-QuoteService/internal/api/middleware"
	"github.com/m04kA/SMC-QuoteService/internal/config"
	"github.com/m04kA/SMC-QuoteService/internal/infra/storage/keyedrecords"
	"github.com/m04kA/SMC-QuoteService/internal/infra/storage/memory"
	activitylogService "github.com/m04kA/SMC-QuoteService/internal/service/activitylog"
	appointmentsService "github.com/m04kA/SMC-QuoteService/internal/service/appointments"
	attachmentsService "github.com/m04kA/SMC-QuoteService/internal/service/attachments"
	requestsService "github.com/m04kA/SMC-QuoteService/internal/service/requests"
	createRequestUC "github.com/m04kA/SMC-QuoteService/internal/usecase/create_request"
	getAvailableSlotsUC "github.com/m04kA/SMC-QuoteService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-QuoteService/pkg/logger"
	"github.com/m04kA/SMC-QuoteService/pkg/metrics"
)

// recordStore общий контракт хранилища записей для обоих бэкендов
type recordStore interface {
	ReadAll(ctx context.Context, key string) ([]json.RawMessage, error)
	WriteAll(ctx context.Context, key string, records []json.RawMessage) error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-QuoteService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем бэкенд хранилища записей
	var store recordStore

	switch cfg.Storage.Engine {
	case "memory":
		store = memory.NewStore()
		log.Info("Using in-memory record store (demo mode, data is not persisted)")

	case "postgres":
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var storeMetrics keyedrecords.MetricsObserver
		if cfg.Metrics.Enabled {
			storeMetrics = metricsCollector
		}
		store = keyedrecords.NewRepository(db, storeMetrics)

	default:
		log.Fatal("Unknown storage engine: %s (expected postgres or memory)", cfg.Storage.Engine)
	}

	// Симуляция внешней приемной системы: задержки и случайные сбои
	var intakeSleeper createRequestUC.Sleeper = &createRequestUC.NoopSleeper{}
	var appointmentSleeper appointmentsService.Sleeper = &appointmentsService.NoopSleeper{}
	if cfg.Simulation.Enabled {
		intakeSleeper = &createRequestUC.RealSleeper{}
		appointmentSleeper = &appointmentsService.RealSleeper{}
		log.Info("Latency and failure simulation enabled")
	}

	// Инициализируем сервисы
	activityLogSvc := activitylogService.NewService(store, log)
	requestsSvc := requestsService.NewService(store, activityLogSvc, log)
	appointmentsSvc := appointmentsService.NewService(store, requestsSvc, activityLogSvc, appointmentSleeper, log)
	attachmentsSvc := attachmentsService.NewService(store, activityLogSvc, log)

	// Инициализируем use cases
	createRequestUseCase := createRequestUC.NewUseCase(requestsSvc, activityLogSvc, intakeSleeper, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(log)

	// Ремонтный проход журнала: заявки без событий получают синтетическое created
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	activityLogSvc.BackfillMissingEvents(startupCtx, requestsSvc.GetAll(startupCtx))
	cancelStartup()

	// Инициализируем handlers
	createRequest := createRequestHandler.NewHandler(createRequestUseCase, log)
	getRequests := getRequestsHandler.NewHandler(requestsSvc, log)
	getRequest := getRequestHandler.NewHandler(requestsSvc, log)
	updateRequestStatus := updateRequestStatusHandler.NewHandler(requestsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	saveAppointment := saveAppointmentHandler.NewHandler(appointmentsSvc, requestsSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getActivity := getActivityHandler.NewHandler(activityLogSvc, requestsSvc, log)
	addAttachment := addAttachmentHandler.NewHandler(attachmentsSvc, requestsSvc, log)
	deleteAttachment := deleteAttachmentHandler.NewHandler(attachmentsSvc, requestsSvc, log)
	getAttachments := getAttachmentsHandler.NewHandler(attachmentsSvc, requestsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Заявки ---
	api.HandleFunc("/requests", createRequest.Handle).Methods(http.MethodPost)
	api.HandleFunc("/requests", getRequests.Handle).Methods(http.MethodGet)
	api.HandleFunc("/requests/{requestId}", getRequest.Handle).Methods(http.MethodGet)
	api.HandleFunc("/requests/{requestId}/status", updateRequestStatus.Handle).Methods(http.MethodPatch)

	// --- Слоты ---
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Встречи ---
	api.HandleFunc("/requests/{requestId}/appointment", saveAppointment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/requests/{requestId}/appointment/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/requests/{requestId}/appointment", cancelAppointment.Handle).Methods(http.MethodDelete)

	// --- Журнал событий ---
	api.HandleFunc("/requests/{requestId}/activity", getActivity.Handle).Methods(http.MethodGet)

	// --- Вложения ---
	api.HandleFunc("/requests/{requestId}/attachments", addAttachment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/requests/{requestId}/attachments", getAttachments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/requests/{requestId}/attachments/{attachmentId}", deleteAttachment.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
