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

	cancelSessionHandler "github.com/m04kA/NC-SessionService/internal/api/handlers/cancel_session"
	createSessionHandler "github.com/m04kA/NC-SessionService/internal/api/handlers/create_session"
	getAvailableDatesHandler "github.com/m04kA/NC-SessionService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/NC-SessionService/internal/api/handlers/get_available_slots"
	getSessionHandler "github.com/m04kA/NC-SessionService/internal/api/handlers/get_session"
	getUserHandler "github.com/m04kA/NC-SessionService/internal/api/handlers/get_user"
	getUserSessionsHandler "github.com/m04kA/NC-SessionService/internal/api/handlers/get_user_sessions"
	listUsersHandler "github.com/m04kA/NC-SessionService/internal/api/handlers/list_users"
	updateSessionStatusHandler "github.com/m04kA/NC-SessionService/internal/api/handlers/update_session_status"
	"github.com/m04kA/NC-SessionService/internal/api/middleware"
	"github.com/m04kA/NC-SessionService/internal/config"
	scheduleRepo "github.com/m04kA/NC-SessionService/internal/infra/storage/schedule"
	sessionRepo "github.com/m04kA/NC-SessionService/internal/infra/storage/session"
	userRepo "github.com/m04kA/NC-SessionService/internal/infra/storage/user"
	meetServiceClient "github.com/m04kA/NC-SessionService/internal/integrations/meetservice"
	sessionsService "github.com/m04kA/NC-SessionService/internal/service/sessions"
	slotManagerService "github.com/m04kA/NC-SessionService/internal/service/slotmanager"
	usersService "github.com/m04kA/NC-SessionService/internal/service/users"
	createSessionUC "github.com/m04kA/NC-SessionService/internal/usecase/create_session"
	"github.com/m04kA/NC-SessionService/pkg/dbmetrics"
	"github.com/m04kA/NC-SessionService/pkg/logger"
	"github.com/m04kA/NC-SessionService/pkg/metrics"
	"github.com/m04kA/NC-SessionService/pkg/simpletxmanager"
	"github.com/m04kA/NC-SessionService/pkg/txmanager"
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

	log.Info("Starting NC-SessionService...")
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

	// Инициализируем клиент сервиса видеовстреч
	meetClient := meetServiceClient.NewClient(
		cfg.MeetService.URL,
		time.Duration(cfg.MeetService.Timeout)*time.Second,
		log,
	)
	log.Info("MeetService client initialized (url=%s, timeout=%ds)",
		cfg.MeetService.URL, cfg.MeetService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		sessionRepository  *sessionRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		userRepository     *userRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		sessionRepository = sessionRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotManager := slotManagerService.NewService(sessionRepository, scheduleRepository, log)
	userSvc := usersService.NewService(userRepository, log)
	sessionSvc := sessionsService.NewService(sessionRepository, log)

	// Загружаем рабочие окна расписания: до завершения Start
	// все запросы доступности блокируются на WaitReady
	if err := slotManager.Start(context.Background()); err != nil {
		log.Fatal("Failed to start slot manager: %v", err)
	}
	log.Info("Slot manager started, schedule windows loaded")

	// Инициализируем use cases
	createSessionUseCase := createSessionUC.NewUseCase(
		sessionRepository,
		userRepository,
		slotManager,
		meetClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(createSessionUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(slotManager, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(slotManager, log)
	listUsers := listUsersHandler.NewHandler(userSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)
	getUserSessions := getUserSessionsHandler.NewHandler(sessionSvc, log)
	cancelSession := cancelSessionHandler.NewHandler(sessionSvc, log)
	updateSessionStatus := updateSessionStatusHandler.NewHandler(sessionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные даты для записи
	api.HandleFunc("/sessions/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/sessions/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Справочник пользователей ---
	protected.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}", getUser.Handle).Methods(http.MethodGet)

	// --- Сессии ---
	// Создание сессии
	protected.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// Получение сессии по ID
	protected.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)

	// Отмена сессии
	protected.HandleFunc("/sessions/{sessionId}/cancel", cancelSession.Handle).Methods(http.MethodPatch)

	// Перевод сессии в новый статус (завершена, неявка)
	protected.HandleFunc("/sessions/{sessionId}/status", updateSessionStatus.Handle).Methods(http.MethodPatch)

	// История сессий пользователя
	protected.HandleFunc("/users/{userId}/sessions", getUserSessions.Handle).Methods(http.MethodGet)

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
