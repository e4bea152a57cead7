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

	addDraftRowHandler "github.com/m04kA/GCC-TeeSheetService/internal/api/handlers/add_draft_row"
	createDraftHandler "github.com/m04kA/GCC-TeeSheetService/internal/api/handlers/create_draft"
	getDraftHandler "github.com/m04kA/GCC-TeeSheetService/internal/api/handlers/get_draft"
	getTeeSheetHandler "github.com/m04kA/GCC-TeeSheetService/internal/api/handlers/get_tee_sheet"
	removeDraftRowHandler "github.com/m04kA/GCC-TeeSheetService/internal/api/handlers/remove_draft_row"
	searchMembersHandler "github.com/m04kA/GCC-TeeSheetService/internal/api/handlers/search_members"
	submitDraftHandler "github.com/m04kA/GCC-TeeSheetService/internal/api/handlers/submit_draft"
	updateDraftRowHandler "github.com/m04kA/GCC-TeeSheetService/internal/api/handlers/update_draft_row"
	"github.com/m04kA/GCC-TeeSheetService/internal/api/middleware"
	"github.com/m04kA/GCC-TeeSheetService/internal/config"
	draftRepo "github.com/m04kA/GCC-TeeSheetService/internal/infra/storage/draft"
	clubServiceClient "github.com/m04kA/GCC-TeeSheetService/internal/integrations/clubservice"
	draftsService "github.com/m04kA/GCC-TeeSheetService/internal/service/drafts"
	getTeeSheetUC "github.com/m04kA/GCC-TeeSheetService/internal/usecase/get_tee_sheet"
	submitDraftUC "github.com/m04kA/GCC-TeeSheetService/internal/usecase/submit_draft"
	"github.com/m04kA/GCC-TeeSheetService/pkg/dbmetrics"
	"github.com/m04kA/GCC-TeeSheetService/pkg/logger"
	"github.com/m04kA/GCC-TeeSheetService/pkg/metrics"
	"github.com/m04kA/GCC-TeeSheetService/pkg/simpletxmanager"
	"github.com/m04kA/GCC-TeeSheetService/pkg/txmanager"
	"github.com/m04kA/GCC-TeeSheetService/pkg/types"
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

	log.Info("Starting GCC-TeeSheetService...")
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

	// Инициализируем клиента бэкенда клуба
	clubClient := clubServiceClient.NewClient(
		cfg.ClubService.URL,
		time.Duration(cfg.ClubService.Timeout)*time.Second,
		log,
	)
	log.Info("Club backend client initialized (url=%s, timeout=%ds)",
		cfg.ClubService.URL, cfg.ClubService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		draftRepository *draftRepo.Repository
		txMgr           draftsService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		draftRepository = draftRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		draftRepository = draftRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	draftsSvc := draftsService.NewService(
		draftRepository,
		clubClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	getTeeSheetUseCase := getTeeSheetUC.NewUseCase(
		clubClient,
		getTeeSheetUC.Params{
			IntervalMinutes: cfg.TeeSheet.IntervalMinutes,
			Capacity:        cfg.TeeSheet.Capacity,
			Tees:            cfg.TeeSheet.Tees,
			DayStart:        types.TimeString(cfg.TeeSheet.DayStart),
			DayEnd:          types.TimeString(cfg.TeeSheet.DayEnd),
			NineHoleStart:   types.TimeString(cfg.TeeSheet.NineHoleStart),
			NineHoleEnd:     types.TimeString(cfg.TeeSheet.NineHoleEnd),
		},
		log,
	)
	submitDraftUseCase := submitDraftUC.NewUseCase(
		draftRepository,
		clubClient,
		log,
	)

	// Инициализируем handlers
	getTeeSheet := getTeeSheetHandler.NewHandler(getTeeSheetUseCase, log)
	createDraft := createDraftHandler.NewHandler(draftsSvc, log)
	getDraft := getDraftHandler.NewHandler(draftsSvc, log)
	addDraftRow := addDraftRowHandler.NewHandler(draftsSvc, log)
	updateDraftRow := updateDraftRowHandler.NewHandler(draftsSvc, log)
	removeDraftRow := removeDraftRowHandler.NewHandler(draftsSvc, log)
	submitDraft := submitDraftHandler.NewHandler(submitDraftUseCase, log)
	searchMembers := searchMembersHandler.NewHandler(clubClient, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все остальные маршруты требуют bearer-токен оператора: он транзитом
	// уходит на бэкенд клуба с каждым исходящим запросом
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Расписание стартов ---
	api.HandleFunc("/tee-sheet", getTeeSheet.Handle).Methods(http.MethodGet)

	// --- Черновики бронирований ---
	api.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{draftId}/rows", addDraftRow.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}/rows/{rowId}", updateDraftRow.Handle).Methods(http.MethodPut)
	api.HandleFunc("/drafts/{draftId}/rows/{rowId}", removeDraftRow.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/drafts/{draftId}/submit", submitDraft.Handle).Methods(http.MethodPost)

	// --- Справочник членов клуба ---
	api.HandleFunc("/members/search", searchMembers.Handle).Methods(http.MethodGet)

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
