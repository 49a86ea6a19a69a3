package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	adminLoginHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/admin_logout"
	createReservationHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/delete_reservation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_available_slots"
	getDatesHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_dates"
	getRatesHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_rates"
	getStatsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_stats"
	listReservationsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_reservations"
	startPaymentHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/start_payment"
	updateRatesHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/update_rates"
	updateReservationStatusHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/update_reservation_status"
	updateSelectionHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/update_selection"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/config"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/cache"
	ratesRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/rates"
	reservationRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/paytech"
	authService "github.com/m04kA/SMC-StudioBooking/internal/service/auth"
	ratesService "github.com/m04kA/SMC-StudioBooking/internal/service/rates"
	reservationsService "github.com/m04kA/SMC-StudioBooking/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
	startPaymentUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/start_payment"
	updateSelectionUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/update_selection"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/metrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/txmanager"
)

const rateLimiterCleanupInterval = time.Minute

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath)
		},
	}
}

func runServe(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting %s booking service...", cfg.Studio.Name)
	log.Info("Configuration loaded from %s", configPath)

	location, _ := cfg.Studio.Location()
	closedDay, _ := cfg.Studio.Weekday()

	// Метрики собираются всегда, наружу отдаются только если включены
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopCh := make(chan struct{})

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var dbObserver *metrics.Metrics
	if cfg.Metrics.Enabled {
		dbObserver = metricsCollector
	}
	wrappedDB := dbmetrics.WrapWithDefault(db, dbObserver, stopCh)
	txMgr := txmanager.New(wrappedDB)

	// Кеш занятых слотов
	slotsCache, closeCache := newSlotsCache(cfg, log)
	defer closeCache()

	// Репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	ratesRepository := ratesRepo.NewRepository(wrappedDB)

	studioCatalog := catalog.New(
		location,
		cfg.Studio.BookingWindowDays,
		closedDay,
		time.Duration(cfg.Studio.MinLeadTimeMinutes)*time.Minute,
	)

	// Интеграции
	paytechClient := paytech.NewClient(
		cfg.Payment.PaytechURL,
		time.Duration(cfg.Payment.PaytechTimeout)*time.Second,
		log,
	)
	log.Info("PayTech client initialized (url=%s, timeout=%ds)", cfg.Payment.PaytechURL, cfg.Payment.PaytechTimeout)

	// Сервисы
	ratesSvc := ratesService.NewService(ratesRepository, txMgr, domain.Rates{
		Currency: cfg.Rates.Currency,
		Hourly:   cfg.Rates.Hourly,
		Mix:      cfg.Rates.Mix,
		Master:   cfg.Rates.Master,
	}, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, slotsCache, txMgr, location, cfg.Rates.Currency, log)
	authSvc := authService.NewService(authService.Config{
		Login:        cfg.Admin.Login,
		PasswordHash: cfg.Admin.PasswordHash,
		HashKey:      []byte(cfg.Admin.HashKey),
		BlockKey:     []byte(cfg.Admin.BlockKey),
		CookieName:   cfg.Admin.CookieName,
		SessionTTL:   time.Duration(cfg.Admin.SessionTTLMin) * time.Minute,
		Secure:       cfg.Admin.SecureCookie,
	}, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		slotsCache,
		studioCatalog,
		metricsCollector,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		ratesSvc,
		slotsCache,
		txMgr,
		studioCatalog,
		metricsCollector,
		createReservationUC.LinksConfig{
			WaveBaseURL:   cfg.Payment.WaveURL,
			StudioPhone:   cfg.Contact.Phone,
			WhatsAppPhone: cfg.Contact.WhatsApp,
		},
		log,
	)
	updateSelectionUseCase := updateSelectionUC.NewUseCase(getAvailableSlotsUseCase, ratesSvc, log)
	startPaymentUseCase := startPaymentUC.NewUseCase(
		reservationRepository,
		paytechClient,
		startPaymentUC.Config{
			WaveBaseURL: cfg.Payment.WaveURL,
			Currency:    cfg.Rates.Currency,
		},
		log,
	)

	// Handlers
	getDates := getDatesHandler.NewHandler(studioCatalog, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	updateSelection := updateSelectionHandler.NewHandler(updateSelectionUseCase, log)
	getRates := getRatesHandler.NewHandler(ratesSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	startPayment := startPaymentHandler.NewHandler(startPaymentUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	adminLogout := adminLogoutHandler.NewHandler(authSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getStats := getStatsHandler.NewHandler(reservationsSvc, log)
	updateRates := updateRatesHandler.NewHandler(ratesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log), middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/dates", getDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/selection", updateSelection.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rates", getRates.Handle).Methods(http.MethodGet)

	// ============================================================
	// RATE LIMITED ROUTES (записи и вход)
	// ============================================================

	trustedProxies, err := cfg.RateLimit.TrustedNets()
	if err != nil {
		return fmt.Errorf("rate limit trusted proxies: %w", err)
	}
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, trustedProxies, log)
	go limiter.RunCleanup(rateLimiterCleanupInterval, stopCh)

	limited := api.PathPrefix("").Subrouter()
	limited.Use(limiter.Middleware)

	limited.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	limited.HandleFunc("/reservations/{id}/payment", startPayment.Handle).Methods(http.MethodPost)
	limited.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)
	limited.HandleFunc("/admin/logout", adminLogout.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют cookie-сессию)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, log))

	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{id}", deleteReservation.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/rates", updateRates.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения или падение сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		close(stopCh)
		return fmt.Errorf("server failed: %w", err)
	}

	log.Info("Shutting down server...")
	close(stopCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// newSlotsCache выбирает реализацию кеша по cache.driver
func newSlotsCache(cfg *config.Config, log *logger.Logger) (cache.SlotsCache, func()) {
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second

	switch cfg.Cache.Driver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		redisCache := cache.NewRedis(client, ttl, log)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := redisCache.Ping(ctx); err != nil {
			// кеш работает в режиме fail-open, поэтому стартуем и без Redis
			log.Warn("Redis at %s is unreachable, every lookup will hit the database: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Booked-slot cache: redis at %s (ttl=%s)", cfg.Redis.Addr, ttl)
		}
		return redisCache, func() { _ = client.Close() }

	case "none":
		log.Info("Booked-slot cache disabled")
		return cache.Noop{}, func() {}

	default:
		log.Info("Booked-slot cache: in-memory (ttl=%s)", ttl)
		return cache.NewMemory(ttl, nil), func() {}
	}
}
