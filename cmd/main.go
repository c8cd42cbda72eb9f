package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-BookingPortal/internal/api/handlers/cancel_booking"
	changePasswordHandler "github.com/m04kA/SMC-BookingPortal/internal/api/handlers/change_password"
	createBookingHandler "github.com/m04kA/SMC-BookingPortal/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-BookingPortal/internal/api/handlers/get_booking"
	getScheduleHandler "github.com/m04kA/SMC-BookingPortal/internal/api/handlers/get_schedule"
	getServicesHandler "github.com/m04kA/SMC-BookingPortal/internal/api/handlers/get_services"
	getUserBookingsHandler "github.com/m04kA/SMC-BookingPortal/internal/api/handlers/get_user_bookings"
	updateProfileHandler "github.com/m04kA/SMC-BookingPortal/internal/api/handlers/update_profile"
	"github.com/m04kA/SMC-BookingPortal/internal/api/middleware"
	"github.com/m04kA/SMC-BookingPortal/internal/config"
	authProviderClient "github.com/m04kA/SMC-BookingPortal/internal/integrations/authprovider"
	contentStoreClient "github.com/m04kA/SMC-BookingPortal/internal/integrations/contentstore"
	accountService "github.com/m04kA/SMC-BookingPortal/internal/service/account"
	bookingsService "github.com/m04kA/SMC-BookingPortal/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-BookingPortal/internal/usecase/create_booking"
	getScheduleUC "github.com/m04kA/SMC-BookingPortal/internal/usecase/get_schedule"
	"github.com/m04kA/SMC-BookingPortal/pkg/logger"
	"github.com/m04kA/SMC-BookingPortal/pkg/metrics"
	"github.com/m04kA/SMC-BookingPortal/pkg/storemetrics"
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

	log.Info("Starting SMC-BookingPortal...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	var storeTransport http.RoundTripper
	if cfg.Metrics.Enabled {
		storeTransport = storemetrics.NewTransport(http.DefaultTransport, metricsCollector, "content-store")
		log.Info("Content store metrics transport enabled")
	}

	storeClient := contentStoreClient.NewClient(
		cfg.ContentStore.BaseURL,
		time.Duration(cfg.ContentStore.Timeout)*time.Second,
		storeTransport,
		log,
	)
	log.Info("Content store client initialized (url=%s, timeout=%ds)",
		cfg.ContentStore.BaseURL, cfg.ContentStore.Timeout)

	authClient, err := authProviderClient.NewClient(
		context.Background(),
		cfg.Auth.CredentialsFile,
		cfg.Auth.APIKey,
		cfg.Auth.IdentityEndpoint,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize auth provider client: %v", err)
	}
	log.Info("Auth provider client initialized")

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(storeClient, log)
	accountSvc := accountService.NewService(authClient, log)

	// Инициализируем use cases
	getScheduleUseCase := getScheduleUC.NewUseCase(time.Local, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingSvc, time.Local, log)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	getServices := getServicesHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, &getScheduleUC.RealTimeProvider{}, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateProfile := updateProfileHandler.NewHandler(accountSvc, log)
	changePassword := changePasswordHandler.NewHandler(accountSvc, log)

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

	// Календарная сетка месяца и каталог слотов
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Каталог услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authClient))

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Бронирования пользователя, разбитые по вкладкам
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Профиль ---
	// Обновление профиля
	protected.HandleFunc("/account/profile", updateProfile.Handle).Methods(http.MethodPut)

	// Смена пароля
	protected.HandleFunc("/account/password", changePassword.Handle).Methods(http.MethodPut)

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
