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
	"github.com/redis/go-redis/v9"

	completeSessionHandler "github.com/valle1212i/Glow-SessionService/internal/api/handlers/complete_session"
	createBookingHandler "github.com/valle1212i/Glow-SessionService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/valle1212i/Glow-SessionService/internal/api/handlers/get_available_slots"
	getBookingOptionsHandler "github.com/valle1212i/Glow-SessionService/internal/api/handlers/get_booking_options"
	refreshCatalogHandler "github.com/valle1212i/Glow-SessionService/internal/api/handlers/refresh_catalog"
	submitCheckoutHandler "github.com/valle1212i/Glow-SessionService/internal/api/handlers/submit_checkout"
	"github.com/valle1212i/Glow-SessionService/internal/api/middleware"
	"github.com/valle1212i/Glow-SessionService/internal/config"
	"github.com/valle1212i/Glow-SessionService/internal/infra/sessionstore"
	bookingClient "github.com/valle1212i/Glow-SessionService/internal/integrations/bookingservice"
	campaignClient "github.com/valle1212i/Glow-SessionService/internal/integrations/campaignservice"
	cartTrackerClient "github.com/valle1212i/Glow-SessionService/internal/integrations/carttracker"
	catalogClient "github.com/valle1212i/Glow-SessionService/internal/integrations/catalogservice"
	checkoutClient "github.com/valle1212i/Glow-SessionService/internal/integrations/checkoutservice"
	settingsClient "github.com/valle1212i/Glow-SessionService/internal/integrations/settingsservice"
	stripeClient "github.com/valle1212i/Glow-SessionService/internal/integrations/stripecheckout"
	"github.com/valle1212i/Glow-SessionService/internal/service/availability"
	"github.com/valle1212i/Glow-SessionService/internal/service/catalogcache"
	sessionsService "github.com/valle1212i/Glow-SessionService/internal/service/sessions"
	createBookingUC "github.com/valle1212i/Glow-SessionService/internal/usecase/create_booking"
	resolveAvailabilityUC "github.com/valle1212i/Glow-SessionService/internal/usecase/resolve_availability"
	submitCheckoutUC "github.com/valle1212i/Glow-SessionService/internal/usecase/submit_checkout"
	"github.com/valle1212i/Glow-SessionService/pkg/logger"
	"github.com/valle1212i/Glow-SessionService/pkg/metrics"
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

	log.Info("Starting Glow-SessionService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов портала
	catalog := catalogClient.NewClient(
		cfg.Portal.Catalog.URL,
		time.Duration(cfg.Portal.Catalog.Timeout)*time.Second,
		log, metricsCollector,
	)
	campaigns := campaignClient.NewClient(
		cfg.Portal.Campaign.URL,
		time.Duration(cfg.Portal.Campaign.Timeout)*time.Second,
		log, metricsCollector,
	)
	settings := settingsClient.NewClient(
		cfg.Portal.Settings.URL,
		time.Duration(cfg.Portal.Settings.Timeout)*time.Second,
		log, metricsCollector,
	)
	bookings := bookingClient.NewClient(
		cfg.Portal.Booking.URL,
		time.Duration(cfg.Portal.Booking.Timeout)*time.Second,
		log, metricsCollector,
	)
	cartTracker := cartTrackerClient.NewClient(
		cfg.Portal.CartTracker.URL,
		time.Duration(cfg.Portal.CartTracker.Timeout)*time.Second,
		log, metricsCollector,
	)
	log.Info("Portal clients initialized (catalog=%s, settings=%s, booking=%s)",
		cfg.Portal.Catalog.URL, cfg.Portal.Settings.URL, cfg.Portal.Booking.URL)

	// Выбираем драйвер создания checkout-сессий
	var sessionCreator submitCheckoutUC.SessionCreator
	switch cfg.Checkout.Driver {
	case "stripe":
		sessionCreator = stripeClient.NewClient(cfg.Stripe.SecretKey, log)
		log.Info("Checkout driver: stripe")
	default:
		sessionCreator = checkoutClient.NewClient(
			cfg.Portal.Checkout.URL,
			time.Duration(cfg.Portal.Checkout.Timeout)*time.Second,
			log, metricsCollector,
		)
		log.Info("Checkout driver: portal (%s)", cfg.Portal.Checkout.URL)
	}

	// Хранилище сессий
	sessionTTL := time.Duration(cfg.Checkout.SessionTTLMinutes) * time.Minute
	var sessionStore sessionsService.SessionStore
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		sessionStore = sessionstore.NewRedisStore(rdb, sessionTTL)
		log.Info("Session store: redis (%s)", cfg.Redis.Addr)
	} else {
		sessionStore = sessionstore.NewMemoryStore()
		log.Info("Session store: in-memory")
	}

	// Инициализируем сервисы
	sessionSvc := sessionsService.New(sessionStore, cartTracker, log)

	catalogCache := catalogcache.New(
		bookings,
		cfg.Portal.DefaultTenant,
		time.Duration(cfg.Polling.IntervalSeconds)*time.Second,
		log,
	)
	coordinator := availability.NewCoordinator[*resolveAvailabilityUC.Response]()

	// Инициализируем use cases
	resolveAvailabilityUseCase := resolveAvailabilityUC.NewUseCase(bookings, settings, bookings, log)
	createBookingUseCase := createBookingUC.NewUseCase(settings, bookings, log)
	submitCheckoutUseCase := submitCheckoutUC.New(catalog, campaigns, sessionCreator, sessionSvc, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(resolveAvailabilityUseCase, catalogCache, coordinator, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, catalogCache, log)
	submitCheckout := submitCheckoutHandler.NewHandler(submitCheckoutUseCase, cfg.Checkout.SuccessURL, cfg.Checkout.CancelURL, log)
	completeSession := completeSessionHandler.NewHandler(sessionSvc, log)
	getBookingOptions := getBookingOptionsHandler.NewHandler(catalogCache, log)
	refreshCatalog := refreshCatalogHandler.NewHandler(catalogCache, log)

	// Запускаем фоновое обновление каталога
	pollCtx, stopPolling := context.WithCancel(context.Background())
	defer stopPolling()
	if cfg.Polling.Enabled {
		catalogCache.Start(pollCtx)
		defer catalogCache.Stop()
		log.Info("Catalog polling started (interval=%ds, tenant=%s)",
			cfg.Polling.IntervalSeconds, cfg.Portal.DefaultTenant)
	} else if err := catalogCache.Refresh(pollCtx); err != nil {
		log.Warn("Initial catalog load failed: %v", err)
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без tenant-заголовка)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix: все маршруты требуют X-Tenant-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Tenant)

	// --- Бронирование ---
	api.HandleFunc("/providers/{providerId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking-options", getBookingOptions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/catalog/refresh", refreshCatalog.Handle).Methods(http.MethodPost)

	// --- Оформление заказа ---
	api.HandleFunc("/checkout/sessions", submitCheckout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/checkout/sessions/{sessionId}/complete", completeSession.Handle).Methods(http.MethodPost)

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
