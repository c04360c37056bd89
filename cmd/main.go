package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/bsmobile/salon-booking/internal/api/handlers/cancel_appointment"
	catalogHandler "github.com/bsmobile/salon-booking/internal/api/handlers/catalog"
	checkSlotHandler "github.com/bsmobile/salon-booking/internal/api/handlers/check_slot"
	createAppointmentHandler "github.com/bsmobile/salon-booking/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/bsmobile/salon-booking/internal/api/handlers/get_appointment"
	getAvailableMastersHandler "github.com/bsmobile/salon-booking/internal/api/handlers/get_available_masters"
	getAvailableSlotsHandler "github.com/bsmobile/salon-booking/internal/api/handlers/get_available_slots"
	getUserAppointmentsHandler "github.com/bsmobile/salon-booking/internal/api/handlers/get_user_appointments"
	"github.com/bsmobile/salon-booking/internal/api/middleware"
	"github.com/bsmobile/salon-booking/internal/calendar"
	"github.com/bsmobile/salon-booking/internal/config"
	appointmentRepo "github.com/bsmobile/salon-booking/internal/infra/storage/appointment"
	catalogRepo "github.com/bsmobile/salon-booking/internal/infra/storage/catalog"
	masterRepo "github.com/bsmobile/salon-booking/internal/infra/storage/master"
	appointmentsService "github.com/bsmobile/salon-booking/internal/service/appointments"
	catalogService "github.com/bsmobile/salon-booking/internal/service/catalog"
	checkSlotUC "github.com/bsmobile/salon-booking/internal/usecase/check_slot"
	createAppointmentUC "github.com/bsmobile/salon-booking/internal/usecase/create_appointment"
	getAvailableMastersUC "github.com/bsmobile/salon-booking/internal/usecase/get_available_masters"
	getAvailableSlotsUC "github.com/bsmobile/salon-booking/internal/usecase/get_available_slots"
	"github.com/bsmobile/salon-booking/pkg/logger"
	"github.com/bsmobile/salon-booking/pkg/metrics"
	"github.com/bsmobile/salon-booking/pkg/txmanager"
)

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

	log.Info("Starting salon-booking service...")
	log.Info("Configuration loaded from config.toml")

	// Расписание салона
	schedule, err := cfg.SalonSchedule()
	if err != nil {
		log.Fatal("Invalid salon schedule: %v", err)
	}
	calendarRules := calendar.NewRules(schedule)
	log.Info("Salon schedule: %s-%s, step %d min, closed on %s, %d holidays",
		schedule.OpenTime(), schedule.CloseTime(), schedule.SlotStepMinutes,
		schedule.ClosureWeekday, len(schedule.Holidays))

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Сбор метрик connection pool
	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(db)
	catalogRepository := catalogRepo.NewRepository(db)
	masterRepository := masterRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, masterRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		masterRepository,
		calendarRules,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		masterRepository,
		calendarRules,
		log,
	)
	getAvailableMastersUseCase := getAvailableMastersUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		masterRepository,
		calendarRules,
		log,
	)
	checkSlotUseCase := checkSlotUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		masterRepository,
		calendarRules,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableMasters := getAvailableMastersHandler.NewHandler(getAvailableMastersUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(checkSlotUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	catalogH := catalogHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог
	api.HandleFunc("/categories", catalogH.HandleListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/{categoryId}/services", catalogH.HandleListServices).Methods(http.MethodGet)
	api.HandleFunc("/services", catalogH.HandleListServicesByPrice).Methods(http.MethodGet)
	api.HandleFunc("/masters", catalogH.HandleListMasters).Methods(http.MethodGet)

	// Доступность
	api.HandleFunc("/services/{serviceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/available-masters", getAvailableMasters.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/check", checkSlot.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// История записей пользователя
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
