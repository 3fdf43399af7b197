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

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/artizaho/workshop-booking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/artizaho/workshop-booking/internal/api/handlers/create_booking"
	createUnavailabilityHandler "github.com/artizaho/workshop-booking/internal/api/handlers/create_unavailability"
	deleteUnavailabilityHandler "github.com/artizaho/workshop-booking/internal/api/handlers/delete_unavailability"
	deleteWorkshopConfigHandler "github.com/artizaho/workshop-booking/internal/api/handlers/delete_workshop_config"
	evaluateBookingHandler "github.com/artizaho/workshop-booking/internal/api/handlers/evaluate_booking"
	getArtisanConfigsHandler "github.com/artizaho/workshop-booking/internal/api/handlers/get_artisan_configs"
	getAvailableSlotsHandler "github.com/artizaho/workshop-booking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/artizaho/workshop-booking/internal/api/handlers/get_booking"
	getCustomRequestHandler "github.com/artizaho/workshop-booking/internal/api/handlers/get_custom_request"
	getSelectableDatesHandler "github.com/artizaho/workshop-booking/internal/api/handlers/get_selectable_dates"
	getUserBookingsHandler "github.com/artizaho/workshop-booking/internal/api/handlers/get_user_bookings"
	getWorkshopBookingsHandler "github.com/artizaho/workshop-booking/internal/api/handlers/get_workshop_bookings"
	getWorkshopConfigHandler "github.com/artizaho/workshop-booking/internal/api/handlers/get_workshop_config"
	listUnavailabilityHandler "github.com/artizaho/workshop-booking/internal/api/handlers/list_unavailability"
	listWorkshopCustomRequestsHandler "github.com/artizaho/workshop-booking/internal/api/handlers/list_workshop_custom_requests"
	quotePrivatizationHandler "github.com/artizaho/workshop-booking/internal/api/handlers/quote_privatization"
	submitCustomRequestHandler "github.com/artizaho/workshop-booking/internal/api/handlers/submit_custom_request"
	updateArtisanConfigHandler "github.com/artizaho/workshop-booking/internal/api/handlers/update_artisan_config"
	updateBookingStatusHandler "github.com/artizaho/workshop-booking/internal/api/handlers/update_booking_status"
	updateCustomRequestStatusHandler "github.com/artizaho/workshop-booking/internal/api/handlers/update_custom_request_status"
	updateUnavailabilityStatusHandler "github.com/artizaho/workshop-booking/internal/api/handlers/update_unavailability_status"
	updateWorkshopConfigHandler "github.com/artizaho/workshop-booking/internal/api/handlers/update_workshop_config"
	"github.com/artizaho/workshop-booking/internal/api/middleware"
	"github.com/artizaho/workshop-booking/internal/config"
	"github.com/artizaho/workshop-booking/internal/eligibility"
	bookingRepo "github.com/artizaho/workshop-booking/internal/infra/storage/booking"
	configRepo "github.com/artizaho/workshop-booking/internal/infra/storage/config"
	customRequestRepo "github.com/artizaho/workshop-booking/internal/infra/storage/customrequest"
	unavailabilityRepo "github.com/artizaho/workshop-booking/internal/infra/storage/unavailability"
	catalogServiceClient "github.com/artizaho/workshop-booking/internal/integrations/catalogservice"
	"github.com/artizaho/workshop-booking/internal/jobs"
	bookingsService "github.com/artizaho/workshop-booking/internal/service/bookings"
	configService "github.com/artizaho/workshop-booking/internal/service/config"
	customRequestsService "github.com/artizaho/workshop-booking/internal/service/customrequests"
	unavailabilityService "github.com/artizaho/workshop-booking/internal/service/unavailability"
	"github.com/artizaho/workshop-booking/internal/usecase/calendar"
	createBookingUC "github.com/artizaho/workshop-booking/internal/usecase/create_booking"
	evaluateBookingUC "github.com/artizaho/workshop-booking/internal/usecase/evaluate_booking"
	getAvailableSlotsUC "github.com/artizaho/workshop-booking/internal/usecase/get_available_slots"
	getCustomRequestUC "github.com/artizaho/workshop-booking/internal/usecase/get_custom_request"
	getSelectableDatesUC "github.com/artizaho/workshop-booking/internal/usecase/get_selectable_dates"
	quotePrivatizationUC "github.com/artizaho/workshop-booking/internal/usecase/quote_privatization"
	submitCustomRequestUC "github.com/artizaho/workshop-booking/internal/usecase/submit_custom_request"
	"github.com/artizaho/workshop-booking/pkg/dbmetrics"
	"github.com/artizaho/workshop-booking/pkg/logger"
	"github.com/artizaho/workshop-booking/pkg/metrics"
	"github.com/artizaho/workshop-booking/pkg/txmanager"
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

	log.Info("Starting workshop booking service...")

	// Validate уже проверил timezone и секцию [booking]
	loc, _ := cfg.Booking.Location()
	policy, _ := cfg.Booking.Policy()
	clock := eligibility.NewLocationClock(loc)

	// Инициализируем метрики (если включены); методы *metrics.Metrics безопасны для nil
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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Интеграционные клиенты
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog client initialized (url=%s, timeout=%ds)", cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	configRepository := configRepo.NewRepository(wrappedDB)
	periodRepository := unavailabilityRepo.NewRepository(wrappedDB)
	requestRepository := customRequestRepo.NewRepository(wrappedDB)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, catalogClient, log)
	configSvc := configService.NewService(configRepository, catalogClient, policy, log)
	unavailabilitySvc := unavailabilityService.NewService(periodRepository, clock, log)
	customRequestSvc := customRequestsService.NewService(requestRepository, catalogClient, log)

	// Use cases
	calendarLoader := calendar.NewLoader(catalogClient, configSvc, unavailabilitySvc, clock, log)

	evaluateBookingUseCase := evaluateBookingUC.NewUseCase(calendarLoader, bookingRepository, metricsCollector, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(calendarLoader, bookingRepository, log)
	getSelectableDatesUseCase := getSelectableDatesUC.NewUseCase(calendarLoader, clock, log)
	quotePrivatizationUseCase := quotePrivatizationUC.NewUseCase(catalogClient, log)
	createBookingUseCase := createBookingUC.NewUseCase(calendarLoader, bookingRepository, txMgr, metricsCollector, log)
	submitCustomRequestUseCase := submitCustomRequestUC.NewUseCase(calendarLoader, requestRepository, metricsCollector, log)
	getCustomRequestUseCase := getCustomRequestUC.NewUseCase(requestRepository, log)

	// Handlers
	evaluateBooking := evaluateBookingHandler.NewHandler(evaluateBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getSelectableDates := getSelectableDatesHandler.NewHandler(getSelectableDatesUseCase, log)
	quotePrivatization := quotePrivatizationHandler.NewHandler(quotePrivatizationUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getWorkshopBookings := getWorkshopBookingsHandler.NewHandler(bookingSvc, log)
	getWorkshopConfig := getWorkshopConfigHandler.NewHandler(configSvc, log)
	updateWorkshopConfig := updateWorkshopConfigHandler.NewHandler(configSvc, log)
	deleteWorkshopConfig := deleteWorkshopConfigHandler.NewHandler(configSvc, log)
	getArtisanConfigs := getArtisanConfigsHandler.NewHandler(configSvc, log)
	updateArtisanConfig := updateArtisanConfigHandler.NewHandler(configSvc, log)
	listUnavailability := listUnavailabilityHandler.NewHandler(unavailabilitySvc, log)
	createUnavailability := createUnavailabilityHandler.NewHandler(unavailabilitySvc, log)
	deleteUnavailability := deleteUnavailabilityHandler.NewHandler(unavailabilitySvc, log)
	updateUnavailabilityStatus := updateUnavailabilityStatusHandler.NewHandler(unavailabilitySvc, log)
	submitCustomRequest := submitCustomRequestHandler.NewHandler(submitCustomRequestUseCase, log)
	getCustomRequest := getCustomRequestHandler.NewHandler(getCustomRequestUseCase, log)
	listWorkshopCustomRequests := listWorkshopCustomRequestsHandler.NewHandler(customRequestSvc, log)
	updateCustomRequestStatus := updateCustomRequestStatusHandler.NewHandler(customRequestSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/workshops/{workshopId}/eligibility", evaluateBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/workshops/{workshopId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/workshops/{workshopId}/selectable-dates", getSelectableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/workshops/{workshopId}/privatization-quote", quotePrivatization.Handle).Methods(http.MethodPost)
	api.HandleFunc("/workshops/{workshopId}/config", getWorkshopConfig.Handle).Methods(http.MethodGet)

	// Автор видит и свои периоды на модерации
	optional := api.PathPrefix("").Subrouter()
	optional.Use(middleware.OptionalAuth)
	optional.HandleFunc("/artisans/{artisanId}/unavailability", listUnavailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Заявки вне слотов ---
	protected.HandleFunc("/custom-requests", submitCustomRequest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/custom-requests/{requestId}", getCustomRequest.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/custom-requests/{requestId}/status", updateCustomRequestStatus.Handle).Methods(http.MethodPatch)

	// --- Управление мастерской (для мастеров) ---
	protected.HandleFunc("/workshops/{workshopId}/bookings", getWorkshopBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/workshops/{workshopId}/custom-requests", listWorkshopCustomRequests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/workshops/{workshopId}/config", updateWorkshopConfig.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/workshops/{workshopId}/config", deleteWorkshopConfig.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/artisans/{artisanId}/configs", getArtisanConfigs.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/artisans/{artisanId}/config", updateArtisanConfig.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/artisans/{artisanId}/unavailability", createUnavailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/artisans/{artisanId}/unavailability/{periodId}", deleteUnavailability.Handle).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES (Bearer JWT с ролью admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.JWTSecret, log))
	admin.HandleFunc("/unavailability/{periodId}/status", updateUnavailabilityStatus.Handle).Methods(http.MethodPatch)

	// CORS для фронтенда и recovery от паник в handlers
	handler := handlers.CORS(
		handlers.AllowedOrigins(cfg.Auth.AllowedOrigins),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", middleware.UserIDHeader}),
	)(handlers.RecoveryHandler()(r))

	// Фоновые задачи
	scheduler := jobs.NewScheduler(loc, requestRepository, clock, metricsCollector, log)
	if cfg.Jobs.Enabled {
		if err := scheduler.RegisterExpireCustomRequests(cfg.Jobs.ExpireCustomRequests); err != nil {
			log.Fatal("Failed to register custom request expiry job: %v", err)
		}
		scheduler.Start()
		log.Info("Scheduler started (expire_custom_requests=%q)", cfg.Jobs.ExpireCustomRequests)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := scheduler.Stop(shutdownCtx); err != nil {
		log.Warn("Scheduler did not stop in time: %v", err)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
