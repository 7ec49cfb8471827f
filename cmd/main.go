package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	confirmBookingHandler "github.com/m04kA/ASTB-BookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/ASTB-BookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/ASTB-BookingService/internal/api/handlers/get_availability"
	getBookingsHandler "github.com/m04kA/ASTB-BookingService/internal/api/handlers/get_bookings"
	"github.com/m04kA/ASTB-BookingService/internal/api/middleware"
	"github.com/m04kA/ASTB-BookingService/internal/config"
	bookingRepo "github.com/m04kA/ASTB-BookingService/internal/infra/storage/booking"
	resendClient "github.com/m04kA/ASTB-BookingService/internal/integrations/resend"
	bookingsService "github.com/m04kA/ASTB-BookingService/internal/service/bookings"
	createBookingUC "github.com/m04kA/ASTB-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/ASTB-BookingService/internal/usecase/get_availability"
	"github.com/m04kA/ASTB-BookingService/pkg/logger"
	"github.com/m04kA/ASTB-BookingService/pkg/metrics"
	"github.com/m04kA/ASTB-BookingService/pkg/redismetrics"
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

	log.Info("Starting ASTB-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к хранилищу. Без REDIS_ADDR сервис работает в
	// деградированном режиме: доступность пустая, запись отдаёт 500.
	var redisClient *redis.Client
	if cfg.Store.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:         cfg.Store.Addr,
			Password:     cfg.Store.Password,
			ReadTimeout:  time.Duration(cfg.Store.Timeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Store.Timeout) * time.Second,
		})
		defer redisClient.Close()

		if metricsCollector != nil {
			redisClient.AddHook(redismetrics.NewHook(metricsCollector))
			log.Info("Store metrics collection started")
		}

		pingCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Store.Timeout)*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Store ping failed, continuing anyway: %v", err)
		} else {
			log.Info("Successfully connected to store (addr=%s, key=%s)", cfg.Store.Addr, cfg.Store.BookingsKey)
		}
		cancel()
	} else {
		log.Warn("REDIS_ADDR is not set, store disabled: availability reads degrade to empty, writes fail")
	}

	// Инициализируем репозиторий
	bookingRepository := bookingRepo.NewRepository(redisClient, cfg.Store.BookingsKey)

	// Инициализируем клиент уведомлений
	notifier := resendClient.NewClient(
		cfg.Notifier.APIKey,
		cfg.Notifier.From,
		cfg.Notifier.NotifyEmail,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	if notifier.Enabled() {
		log.Info("Email notifications enabled (to=%s)", cfg.Notifier.NotifyEmail)
	} else {
		log.Info("RESEND_API_KEY is not set, email notifications disabled")
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, notifier, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Занятые слоты для публичной страницы записи
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание заявки на сессию
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Bearer ASTB_ADMIN_SECRET)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Secret, log))

	if cfg.Admin.Secret == "" {
		log.Warn("ASTB_ADMIN_SECRET is not set, admin endpoints are open")
	}

	// Полный список бронирований
	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Подтверждение оплаты бронирования
	admin.HandleFunc("/bookings/confirm", confirmBooking.Handle).Methods(http.MethodPost)

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
