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
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	cancelBookingHandler "github.com/salonsphere/booking-service/internal/api/handlers/cancel_booking"
	clearSelectionHandler "github.com/salonsphere/booking-service/internal/api/handlers/clear_selection"
	createBookingHandler "github.com/salonsphere/booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/salonsphere/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/salonsphere/booking-service/internal/api/handlers/get_booking"
	getSalonServicesHandler "github.com/salonsphere/booking-service/internal/api/handlers/get_salon_services"
	getSalonsHandler "github.com/salonsphere/booking-service/internal/api/handlers/get_salons"
	getSelectionHandler "github.com/salonsphere/booking-service/internal/api/handlers/get_selection"
	getServiceReviewsHandler "github.com/salonsphere/booking-service/internal/api/handlers/get_service_reviews"
	getSessionBookingsHandler "github.com/salonsphere/booking-service/internal/api/handlers/get_session_bookings"
	selectTimeSlotHandler "github.com/salonsphere/booking-service/internal/api/handlers/select_time_slot"
	"github.com/salonsphere/booking-service/internal/api/middleware"
	"github.com/salonsphere/booking-service/internal/config"
	selectionCache "github.com/salonsphere/booking-service/internal/infra/cache/selection"
	bookingRepo "github.com/salonsphere/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/salonsphere/booking-service/internal/infra/storage/catalog"
	bookingsService "github.com/salonsphere/booking-service/internal/service/bookings"
	catalogService "github.com/salonsphere/booking-service/internal/service/catalog"
	createBookingUC "github.com/salonsphere/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/salonsphere/booking-service/internal/usecase/get_available_slots"
	selectTimeSlotUC "github.com/salonsphere/booking-service/internal/usecase/select_time_slot"
	"github.com/salonsphere/booking-service/pkg/dbmetrics"
	"github.com/salonsphere/booking-service/pkg/logger"
	"github.com/salonsphere/booking-service/pkg/metrics"
	"github.com/salonsphere/booking-service/pkg/simpletxmanager"
	"github.com/salonsphere/booking-service/pkg/txmanager"
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

	log.Info("Starting salon booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Подключаемся к Redis (хранилище выбора слотов)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		catalogRepository *catalogRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Хранилище выбора слотов с TTL
	selectionStore := selectionCache.NewStore(
		redisClient,
		time.Duration(cfg.Booking.SelectionTTLSeconds)*time.Second,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogRepository,
		bookingRepository,
		getAvailableSlotsUC.Policy{
			AdvanceBookingDays:      cfg.Booking.AdvanceBookingDays,
			MinBookingNoticeMinutes: cfg.Booking.MinBookingNoticeMinutes,
		},
		log,
	)

	selectTimeSlotUseCase := selectTimeSlotUC.NewUseCase(
		catalogRepository,
		bookingRepository,
		selectionStore,
		selectTimeSlotUC.Policy{
			AdvanceBookingDays:      cfg.Booking.AdvanceBookingDays,
			MinBookingNoticeMinutes: cfg.Booking.MinBookingNoticeMinutes,
		},
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		catalogRepository,
		bookingRepository,
		selectionStore,
		txMgr,
		createBookingUC.Policy{
			AdvanceBookingDays:      cfg.Booking.AdvanceBookingDays,
			MinBookingNoticeMinutes: cfg.Booking.MinBookingNoticeMinutes,
		},
		log,
	)

	// Инициализируем handlers
	getSalons := getSalonsHandler.NewHandler(catalogSvc, log)
	getSalonServices := getSalonServicesHandler.NewHandler(catalogSvc, log)
	getServiceReviews := getServiceReviewsHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	selectTimeSlot := selectTimeSlotHandler.NewHandler(selectTimeSlotUseCase, log)
	getSelection := getSelectionHandler.NewHandler(selectionStore, log)
	clearSelection := clearSelectionHandler.NewHandler(selectionStore, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getSessionBookings := getSessionBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Фоновая задача: завершаем прошедшие бронирования раз в час
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := bookingSvc.CompletePastBookings(ctx, time.Now()); err != nil {
			log.Error("Scheduled CompletePastBookings failed: %v", err)
		}
	}); err != nil {
		log.Fatal("Failed to schedule CompletePastBookings: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()
	log.Info("Background scheduler started (complete past bookings @hourly)")

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без сессии)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	// Каталог салонов
	api.HandleFunc("/salons", getSalons.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}/services", getSalonServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}/services/{serviceId}/reviews", getServiceReviews.Handle).Methods(http.MethodGet)

	// Каталог слотов дня
	api.HandleFunc("/salons/{salonId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Session-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Session)

	// --- Выбор слотов ---
	protected.HandleFunc("/selection/slots", selectTimeSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/selection", getSelection.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/selection", clearSelection.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getSessionBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

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

	log.Info("Server stopped gracefully")
}
