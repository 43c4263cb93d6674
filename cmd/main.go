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

	adminRemoveBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/admin_remove_booking"
	cancelBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/cancel_booking"
	confirmPaymentHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/confirm_payment"
	createHoldHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_hold"
	getAccountHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_account"
	getAllBookingsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_all_bookings"
	getAvailabilityHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_availability"
	getAvailableCourtsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_available_courts"
	getCatalogHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_catalog"
	getUserBookingsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_user_bookings"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/config"
	accountsRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/accounts"
	catalogRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/catalog"
	ledgerRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/ledger"
	accountsService "github.com/m04kA/SMC-CourtBookingService/internal/service/accounts"
	bookingsService "github.com/m04kA/SMC-CourtBookingService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-CourtBookingService/internal/service/catalog"
	pricingService "github.com/m04kA/SMC-CourtBookingService/internal/service/pricing"
	confirmPaymentUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/confirm_payment"
	createHoldUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_hold"
	getAvailabilityUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_availability"
	getAvailableCourtsUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_available_courts"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
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

	log.Info("Starting SMC-CourtBookingService (venue=%s)...", cfg.Venue.Name)
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем in-memory хранилища
	catalogStore := catalogRepo.NewFromConfig(cfg.Catalog)
	accountStore := accountsRepo.NewFromConfig(cfg.Accounts)

	holdTimeout := time.Duration(cfg.Venue.HoldTimeoutMinutes) * time.Minute
	var ledgerStore *ledgerRepo.Store
	if cfg.Metrics.Enabled {
		ledgerStore = ledgerRepo.New(holdTimeout, &ledgerRepo.RealTimeProvider{}, metricsCollector)
	} else {
		ledgerStore = ledgerRepo.New(holdTimeout, &ledgerRepo.RealTimeProvider{}, nil)
	}
	log.Info("Stores initialized: sports=%d, hold_timeout=%s, booking_window=%d days",
		len(cfg.Catalog.Sports), holdTimeout, cfg.Venue.BookingWindowDays)

	// Инициализируем сервисы
	pricingSvc := pricingService.NewService(catalogStore)
	catalogSvc := catalogService.NewService(catalogStore, log)
	accountsSvc := accountsService.NewService(accountStore, log)
	bookingsSvc := bookingsService.NewService(ledgerStore, accountStore, log)

	// Инициализируем use cases
	createHoldUseCase := createHoldUC.NewUseCase(
		catalogStore,
		pricingSvc,
		ledgerStore,
		cfg.Venue.BookingWindowDays,
		log,
	)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(ledgerStore, accountStore, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(catalogStore, ledgerStore, log)
	getAvailableCourtsUseCase := getAvailableCourtsUC.NewUseCase(catalogStore, ledgerStore, log)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getAvailableCourts := getAvailableCourtsHandler.NewHandler(getAvailableCourtsUseCase, log)
	createHold := createHoldHandler.NewHandler(createHoldUseCase, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	adminRemoveBooking := adminRemoveBookingHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingsSvc, log)
	getAccount := getAccountHandler.NewHandler(accountsSvc, log)

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

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог видов спорта с тарифами и кортами
	api.HandleFunc("/sports", getCatalog.Handle).Methods(http.MethodGet)

	// Сетка доступности кортов на дату
	api.HandleFunc("/sports/{sport}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Корты, свободные на интервале
	api.HandleFunc("/sports/{sport}/available-courts", getAvailableCourts.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание hold (PENDING-бронирования)
	protected.HandleFunc("/bookings", createHold.Handle).Methods(http.MethodPost)

	// Список всех живых бронирований (только для администраторов)
	protected.HandleFunc("/bookings", getAllBookings.Handle).Methods(http.MethodGet)

	// Подтверждение оплаты hold
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmPayment.Handle).Methods(http.MethodPost)

	// Отмена pending-бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Административное удаление бронирования в любом статусе
	protected.HandleFunc("/bookings/{bookingId}", adminRemoveBooking.Handle).Methods(http.MethodDelete)

	// --- Пользователи ---
	// Бронирования пользователя
	protected.HandleFunc("/users/{username}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Данные аккаунта (роль, баланс)
	protected.HandleFunc("/users/{username}", getAccount.Handle).Methods(http.MethodGet)

	// Запускаем фоновую очистку истекших holds
	stopSweepCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.Venue.SweepIntervalSeconds) * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if removed := ledgerStore.SweepExpired(); removed > 0 {
					log.Info("Expiry sweep removed %d expired holds", removed)
				}
			case <-stopSweepCh:
				return
			}
		}
	}()
	log.Info("Background expiry sweep started (interval=%ds)", cfg.Venue.SweepIntervalSeconds)

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

	// Останавливаем фоновую очистку
	close(stopSweepCh)
	log.Info("Expiry sweep stopped")

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
