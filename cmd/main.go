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

	addCreditHandler "github.com/Nackalalalong/KK-BackEnd/internal/api/handlers/add_credit"
	addRacketHandler "github.com/Nackalalalong/KK-BackEnd/internal/api/handlers/add_racket"
	addShuttlecockHandler "github.com/Nackalalalong/KK-BackEnd/internal/api/handlers/add_shuttlecock"
	bookRacketHandler "github.com/Nackalalalong/KK-BackEnd/internal/api/handlers/book_racket"
	buyShuttlecockHandler "github.com/Nackalalalong/KK-BackEnd/internal/api/handlers/buy_shuttlecock"
	cancelBookingHandler "github.com/Nackalalalong/KK-BackEnd/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/Nackalalalong/KK-BackEnd/internal/api/handlers/create_booking"
	createCourtHandler "github.com/Nackalalalong/KK-BackEnd/internal/api/handlers/create_court"
	getAvailabilityHandler "github.com/Nackalalalong/KK-BackEnd/internal/api/handlers/get_availability"
	getBookingHandler "github.com/Nackalalalong/KK-BackEnd/internal/api/handlers/get_booking"
	getCourtHandler "github.com/Nackalalalong/KK-BackEnd/internal/api/handlers/get_court"
	getUserBookingsHandler "github.com/Nackalalalong/KK-BackEnd/internal/api/handlers/get_user_bookings"
	topupShuttlecockHandler "github.com/Nackalalalong/KK-BackEnd/internal/api/handlers/topup_shuttlecock"
	"github.com/Nackalalalong/KK-BackEnd/internal/api/middleware"
	"github.com/Nackalalalong/KK-BackEnd/internal/config"
	bookingRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/booking"
	courtRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/court"
	scheduleRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/schedule"
	userRepo "github.com/Nackalalalong/KK-BackEnd/internal/infra/storage/user"
	bookingsService "github.com/Nackalalalong/KK-BackEnd/internal/service/bookings"
	courtsService "github.com/Nackalalalong/KK-BackEnd/internal/service/courts"
	usersService "github.com/Nackalalalong/KK-BackEnd/internal/service/users"
	bookCourtUC "github.com/Nackalalalong/KK-BackEnd/internal/usecase/book_court"
	bookRacketUC "github.com/Nackalalalong/KK-BackEnd/internal/usecase/book_racket"
	buyShuttlecockUC "github.com/Nackalalalong/KK-BackEnd/internal/usecase/buy_shuttlecock"
	cancelBookingUC "github.com/Nackalalalong/KK-BackEnd/internal/usecase/cancel_booking"
	getAvailabilityUC "github.com/Nackalalalong/KK-BackEnd/internal/usecase/get_availability"
	"github.com/Nackalalalong/KK-BackEnd/pkg/dbmetrics"
	"github.com/Nackalalalong/KK-BackEnd/pkg/logger"
	"github.com/Nackalalalong/KK-BackEnd/pkg/metrics"
	"github.com/Nackalalalong/KK-BackEnd/pkg/mq"
	"github.com/Nackalalalong/KK-BackEnd/pkg/simpletxmanager"
	"github.com/Nackalalalong/KK-BackEnd/pkg/txmanager"
)

// eventPublisher общий интерфейс для реального и no-op паблишера
type eventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
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

	log.Info("Starting KK-BackEnd...")
	log.Info("Configuration loaded from config.toml")

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

	// Подключаемся к RabbitMQ (если включен)
	var publisher eventPublisher = mq.NopPublisher{}
	if cfg.MQ.Enabled {
		pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer pub.Close()
		publisher = pub
		log.Info("Connected to RabbitMQ, exchange=%s", cfg.MQ.Exchange)
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		courtRepository    *courtRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		userRepository     *userRepo.Repository
		txMgr              *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		courtRepository = courtRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, courtRepository, log)
	courtSvc := courtsService.NewService(courtRepository, log)
	userSvc := usersService.NewService(userRepository, log)

	// Инициализируем use cases
	bookCourtUseCase := bookCourtUC.NewUseCase(
		bookingRepository,
		courtRepository,
		scheduleRepository,
		userRepository,
		txMgr,
		publisher,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		courtRepository,
		scheduleRepository,
		userRepository,
		txMgr,
		publisher,
		log,
	)
	bookRacketUseCase := bookRacketUC.NewUseCase(
		bookingRepository,
		courtRepository,
		scheduleRepository,
		userRepository,
		txMgr,
		publisher,
		log,
	)
	buyShuttlecockUseCase := buyShuttlecockUC.NewUseCase(
		bookingRepository,
		courtRepository,
		userRepository,
		txMgr,
		publisher,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(courtRepository, scheduleRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(bookCourtUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	bookRacket := bookRacketHandler.NewHandler(bookRacketUseCase, log)
	buyShuttlecock := buyShuttlecockHandler.NewHandler(buyShuttlecockUseCase, log)
	createCourt := createCourtHandler.NewHandler(courtSvc, log)
	getCourt := getCourtHandler.NewHandler(courtSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	addRacket := addRacketHandler.NewHandler(courtSvc, log)
	addShuttlecock := addShuttlecockHandler.NewHandler(courtSvc, log)
	topupShuttlecock := topupShuttlecockHandler.NewHandler(courtSvc, log)
	addCredit := addCreditHandler.NewHandler(userSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID())

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Карточка площадки с каталогами аренды
	api.HandleFunc("/courts/{courtId}", getCourt.Handle).Methods(http.MethodGet)

	// Доступность кортов по юнитам дня недели
	api.HandleFunc("/courts/{courtId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Площадки ---
	protected.HandleFunc("/courts", createCourt.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/courts/{courtId}/rackets", addRacket.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/courts/{courtId}/shuttlecocks", addShuttlecock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/courts/{courtId}/shuttlecocks/{shuttlecockId}/topup", topupShuttlecock.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/rackets", bookRacket.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/shuttlecocks", buyShuttlecock.Handle).Methods(http.MethodPost)

	// --- Пользователи ---
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/credit", addCredit.HandleTopUp).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/credit", addCredit.HandleGetBalance).Methods(http.MethodGet)

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
