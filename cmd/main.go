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
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	approveLoanRequestHandler "github.com/m04kA/USM-SpaceService/internal/api/handlers/approve_loan_request"
	checkAvailabilityHandler "github.com/m04kA/USM-SpaceService/internal/api/handlers/check_availability"
	createFusionHandler "github.com/m04kA/USM-SpaceService/internal/api/handlers/create_fusion"
	deleteFusionHandler "github.com/m04kA/USM-SpaceService/internal/api/handlers/delete_fusion"
	getFusionHandler "github.com/m04kA/USM-SpaceService/internal/api/handlers/get_fusion"
	getLoanRequestHandler "github.com/m04kA/USM-SpaceService/internal/api/handlers/get_loan_request"
	getOccupancyReportHandler "github.com/m04kA/USM-SpaceService/internal/api/handlers/get_occupancy_report"
	listFusionsHandler "github.com/m04kA/USM-SpaceService/internal/api/handlers/list_fusions"
	listLoanRequestsHandler "github.com/m04kA/USM-SpaceService/internal/api/handlers/list_loan_requests"
	rejectLoanRequestHandler "github.com/m04kA/USM-SpaceService/internal/api/handlers/reject_loan_request"
	submitLoanRequestHandler "github.com/m04kA/USM-SpaceService/internal/api/handlers/submit_loan_request"
	"github.com/m04kA/USM-SpaceService/internal/api/middleware"
	"github.com/m04kA/USM-SpaceService/internal/config"
	fusionRepo "github.com/m04kA/USM-SpaceService/internal/infra/storage/fusion"
	loanRepo "github.com/m04kA/USM-SpaceService/internal/infra/storage/loan"
	academicServiceClient "github.com/m04kA/USM-SpaceService/internal/integrations/academicservice"
	campusServiceClient "github.com/m04kA/USM-SpaceService/internal/integrations/campusservice"
	fusionsService "github.com/m04kA/USM-SpaceService/internal/service/fusions"
	loansService "github.com/m04kA/USM-SpaceService/internal/service/loans"
	aggregateOccupancyUC "github.com/m04kA/USM-SpaceService/internal/usecase/aggregate_occupancy"
	approveLoanRequestUC "github.com/m04kA/USM-SpaceService/internal/usecase/approve_loan_request"
	checkAvailabilityUC "github.com/m04kA/USM-SpaceService/internal/usecase/check_availability"
	createFusionUC "github.com/m04kA/USM-SpaceService/internal/usecase/create_fusion"
	submitLoanRequestUC "github.com/m04kA/USM-SpaceService/internal/usecase/submit_loan_request"
	"github.com/m04kA/USM-SpaceService/pkg/dbmetrics"
	"github.com/m04kA/USM-SpaceService/pkg/logger"
	"github.com/m04kA/USM-SpaceService/pkg/metrics"
	"github.com/m04kA/USM-SpaceService/pkg/simpletxmanager"
	"github.com/m04kA/USM-SpaceService/pkg/txmanager"
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

	log.Info("Starting USM-SpaceService...")
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

	// Инициализируем интеграционных клиентов
	campusClient := campusServiceClient.NewClient(
		cfg.CampusService.URL,
		time.Duration(cfg.CampusService.Timeout)*time.Second,
		log,
	)
	academicClient := academicServiceClient.NewClient(
		cfg.AcademicService.URL,
		time.Duration(cfg.AcademicService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CampusService=%s timeout=%ds, AcademicService=%s timeout=%ds)",
		cfg.CampusService.URL, cfg.CampusService.Timeout, cfg.AcademicService.URL, cfg.AcademicService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		loanRepository   *loanRepo.Repository
		fusionRepository *fusionRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		loanRepository = loanRepo.NewRepository(wrappedDB)
		fusionRepository = fusionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		loanRepository = loanRepo.NewRepository(db)
		fusionRepository = fusionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	loanSvc := loansService.NewService(loanRepository, log)
	fusionSvc := fusionsService.NewService(fusionRepository, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(campusClient, log)

	createFusionUseCase := createFusionUC.NewUseCase(
		fusionRepository,
		academicClient,
		campusClient,
		log,
	)

	submitLoanRequestUseCase := submitLoanRequestUC.NewUseCase(
		loanRepository,
		campusClient,
		log,
	)

	approveLoanRequestUseCase := approveLoanRequestUC.NewUseCase(
		loanRepository,
		checkAvailabilityUseCase,
		txMgr,
		log,
	)

	aggregateOccupancyUseCase := aggregateOccupancyUC.NewUseCase(campusClient, log)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createFusion := createFusionHandler.NewHandler(createFusionUseCase, log)
	getFusion := getFusionHandler.NewHandler(fusionSvc, log)
	listFusions := listFusionsHandler.NewHandler(fusionSvc, log)
	deleteFusion := deleteFusionHandler.NewHandler(fusionSvc, log)
	submitLoanRequest := submitLoanRequestHandler.NewHandler(submitLoanRequestUseCase, log)
	approveLoanRequest := approveLoanRequestHandler.NewHandler(approveLoanRequestUseCase, log)
	rejectLoanRequest := rejectLoanRequestHandler.NewHandler(loanSvc, log)
	getLoanRequest := getLoanRequestHandler.NewHandler(loanSvc, log)
	listLoanRequests := listLoanRequestsHandler.NewHandler(loanSvc, log)
	getOccupancyReport := getOccupancyReportHandler.NewHandler(aggregateOccupancyUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Проверка доступности помещения в недельном интервале
	api.HandleFunc("/spaces/{spaceId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Сводка загруженности помещений (с кешированием ответов)
	occupancyRoute := http.Handler(http.HandlerFunc(getOccupancyReport.Handle))
	if cfg.ReportCache.Enabled {
		ttl := time.Duration(cfg.ReportCache.TTLSeconds) * time.Second
		reportCache := cache.New(ttl, 2*ttl)
		occupancyRoute = middleware.Cache(reportCache, ttl)(occupancyRoute)
		log.Info("Occupancy report cache enabled (ttl=%ds)", cfg.ReportCache.TTLSeconds)
	}
	api.Handle("/reports/occupancy", occupancyRoute).Methods(http.MethodGet)

	// Подача заявки на разовую аренду (публичная, с rate limit по IP)
	submitRoute := http.Handler(http.HandlerFunc(submitLoanRequest.Handle))
	if cfg.SubmitRateLimit.Enabled {
		submitRoute = middleware.RateLimit(rate.Limit(cfg.SubmitRateLimit.RPS), cfg.SubmitRateLimit.Burst)(submitRoute)
		log.Info("Loan submission rate limit enabled (rps=%.2f, burst=%d)",
			cfg.SubmitRateLimit.RPS, cfg.SubmitRateLimit.Burst)
	}
	api.Handle("/loan-requests", submitRoute).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Объединения групп ---
	// Создание объединения
	protected.HandleFunc("/fusions", createFusion.Handle).Methods(http.MethodPost)

	// Список объединений
	protected.HandleFunc("/fusions", listFusions.Handle).Methods(http.MethodGet)

	// Получение объединения по ID
	protected.HandleFunc("/fusions/{fusionId}", getFusion.Handle).Methods(http.MethodGet)

	// Удаление объединения
	protected.HandleFunc("/fusions/{fusionId}", deleteFusion.Handle).Methods(http.MethodDelete)

	// --- Заявки на аренду (администрирование) ---
	// Список заявок
	protected.HandleFunc("/loan-requests", listLoanRequests.Handle).Methods(http.MethodGet)

	// Получение заявки по ID
	protected.HandleFunc("/loan-requests/{requestId}", getLoanRequest.Handle).Methods(http.MethodGet)

	// Одобрение заявки
	protected.HandleFunc("/loan-requests/{requestId}/approve", approveLoanRequest.Handle).Methods(http.MethodPatch)

	// Отклонение заявки
	protected.HandleFunc("/loan-requests/{requestId}/reject", rejectLoanRequest.Handle).Methods(http.MethodPatch)

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
