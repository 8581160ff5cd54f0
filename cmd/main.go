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

	approveBookingPageHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/approve_booking_page"
	cancelBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/cancel_booking"
	cancelMeetingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/cancel_meeting"
	createBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_booking"
	createBookingPageHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_booking_page"
	createCalendarHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_calendar"
	createMeetingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_meeting"
	createTeamHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_team"
	deleteCalendarHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/delete_calendar"
	getAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_booking"
	getBookingPageHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_booking_page"
	getDashboardStatsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_dashboard_stats"
	getPublicPageHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_public_page"
	listBookingPagesHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_booking_pages"
	listCalendarsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_calendars"
	listMeetingsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_meetings"
	listPageBookingsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_page_bookings"
	listPendingPagesHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_pending_pages"
	listTeamsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_teams"
	manageBlacklistHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/manage_blacklist"
	setAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/set_availability"
	updateBookingPageHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_booking_page"
	updateCalendarHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_calendar"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	blacklistRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/blacklist"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	bookingPageRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/bookingpage"
	calendarRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/calendar"
	meetingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/meeting"
	teamRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/team"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	calendarProviderClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/calendarprovider"
	availabilityService "github.com/m04kA/SMC-SchedulingService/internal/service/availability"
	blacklistService "github.com/m04kA/SMC-SchedulingService/internal/service/blacklist"
	bookingPagesService "github.com/m04kA/SMC-SchedulingService/internal/service/bookingpages"
	bookingsService "github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
	calendarsService "github.com/m04kA/SMC-SchedulingService/internal/service/calendars"
	dashboardService "github.com/m04kA/SMC-SchedulingService/internal/service/dashboard"
	meetingsService "github.com/m04kA/SMC-SchedulingService/internal/service/meetings"
	teamsService "github.com/m04kA/SMC-SchedulingService/internal/service/teams"
	createBookingUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
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

	log.Info("Starting SMC-SchedulingService...")
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

	// Инициализируем клиент календарного провайдера
	providerClient := calendarProviderClient.NewClient(
		cfg.CalendarProvider.URL,
		time.Duration(cfg.CalendarProvider.Timeout)*time.Second,
		log,
	)
	log.Info("Calendar provider client initialized (url=%s, timeout=%ds)",
		cfg.CalendarProvider.URL, cfg.CalendarProvider.Timeout)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Репозитории работают через общий DBExecutor: с метриками или без
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	userRepository := userRepo.NewRepository(executor)
	calendarRepository := calendarRepo.NewRepository(executor)
	blacklistRepository := blacklistRepo.NewRepository(executor)
	bookingRepository := bookingRepo.NewRepository(executor)
	pageRepository := bookingPageRepo.NewRepository(executor)
	meetingRepository := meetingRepo.NewRepository(executor)
	availabilityRepository := availabilityRepo.NewRepository(executor)
	teamRepository := teamRepo.NewRepository(executor)

	// Инициализируем сервисы
	pagesSvc := bookingPagesService.NewService(
		pageRepository,
		calendarRepository,
		blacklistRepository,
		userRepository,
		log,
	)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		pageRepository,
		log,
	)
	meetingsSvc := meetingsService.NewService(
		meetingRepository,
		calendarRepository,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		txMgr,
		log,
	)
	blacklistSvc := blacklistService.NewService(
		blacklistRepository,
		userRepository,
		log,
	)
	calendarsSvc := calendarsService.NewService(
		calendarRepository,
		userRepository,
		log,
	)
	teamsSvc := teamsService.NewService(
		teamRepository,
		log,
	)
	dashboardSvc := dashboardService.NewService(
		meetingRepository,
		bookingRepository,
		teamRepository,
		calendarRepository,
		userRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		pageRepository,
		bookingRepository,
		meetingRepository,
		availabilityRepository,
		userRepository,
		providerClient,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		pageRepository,
		bookingRepository,
		meetingRepository,
		availabilityRepository,
		userRepository,
		providerClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getPublicPage := getPublicPageHandler.NewHandler(pagesSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createBookingPage := createBookingPageHandler.NewHandler(pagesSvc, log)
	listBookingPages := listBookingPagesHandler.NewHandler(pagesSvc, log)
	getBookingPage := getBookingPageHandler.NewHandler(pagesSvc, log)
	updateBookingPage := updateBookingPageHandler.NewHandler(pagesSvc, log)
	listPageBookings := listPageBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	setAvailability := setAvailabilityHandler.NewHandler(availabilitySvc, log)
	createMeeting := createMeetingHandler.NewHandler(meetingsSvc, log)
	listMeetings := listMeetingsHandler.NewHandler(meetingsSvc, log)
	cancelMeeting := cancelMeetingHandler.NewHandler(meetingsSvc, log)
	listPendingPages := listPendingPagesHandler.NewHandler(pagesSvc, log)
	approveBookingPage := approveBookingPageHandler.NewHandler(pagesSvc, log)
	manageBlacklist := manageBlacklistHandler.NewHandler(blacklistSvc, log)
	createCalendar := createCalendarHandler.NewHandler(calendarsSvc, log)
	listCalendars := listCalendarsHandler.NewHandler(calendarsSvc, log)
	updateCalendar := updateCalendarHandler.NewHandler(calendarsSvc, log)
	deleteCalendar := deleteCalendarHandler.NewHandler(calendarsSvc, log)
	createTeam := createTeamHandler.NewHandler(teamsSvc, log)
	listTeams := listTeamsHandler.NewHandler(teamsSvc, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(dashboardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Публичная информация о странице бронирования
	api.HandleFunc("/public/{userAlias}/{pageAlias}",
		getPublicPage.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/public/{userAlias}/{pageAlias}/slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования посетителем
	api.HandleFunc("/public/{userAlias}/{pageAlias}/bookings",
		createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Страницы бронирования ---
	protected.HandleFunc("/booking-pages", createBookingPage.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking-pages", listBookingPages.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/booking-pages/{pageId}", getBookingPage.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/booking-pages/{pageId}", updateBookingPage.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/booking-pages/{pageId}/bookings", listPageBookings.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Рабочие часы ---
	protected.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/availability", setAvailability.Handle).Methods(http.MethodPut)

	// --- Календари ---
	protected.HandleFunc("/calendars", createCalendar.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/calendars", listCalendars.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/calendars/{calendarId}", updateCalendar.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/calendars/{calendarId}", deleteCalendar.Handle).Methods(http.MethodDelete)

	// --- Команды ---
	protected.HandleFunc("/teams", createTeam.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/teams", listTeams.Handle).Methods(http.MethodGet)

	// --- Дашборд ---
	protected.HandleFunc("/dashboard/stats", getDashboardStats.Handle).Methods(http.MethodGet)

	// --- Встречи ---
	protected.HandleFunc("/meetings", createMeeting.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/meetings", listMeetings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/meetings/{meetingId}/cancel", cancelMeeting.Handle).Methods(http.MethodPatch)

	// --- Администрирование ---
	protected.HandleFunc("/admin/booking-pages/pending", listPendingPages.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/booking-pages/{pageId}/approve", approveBookingPage.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/admin/blacklist", manageBlacklist.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/admin/blacklist", manageBlacklist.HandleAdd).Methods(http.MethodPost)
	protected.HandleFunc("/admin/blacklist/{alias}", manageBlacklist.HandleRemove).Methods(http.MethodDelete)

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
