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

	callNextHandler "github.com/m04kA/HMS-TriageService/internal/api/handlers/call_next"
	confirmBookingHandler "github.com/m04kA/HMS-TriageService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/HMS-TriageService/internal/api/handlers/create_booking"
	getEquipmentHandler "github.com/m04kA/HMS-TriageService/internal/api/handlers/get_equipment"
	getPendingBookingsHandler "github.com/m04kA/HMS-TriageService/internal/api/handlers/get_pending_bookings"
	getQueueHandler "github.com/m04kA/HMS-TriageService/internal/api/handlers/get_queue"
	"github.com/m04kA/HMS-TriageService/internal/api/middleware"
	"github.com/m04kA/HMS-TriageService/internal/config"
	bookingRepo "github.com/m04kA/HMS-TriageService/internal/infra/storage/booking"
	equipmentRepo "github.com/m04kA/HMS-TriageService/internal/infra/storage/equipment"
	availabilityService "github.com/m04kA/HMS-TriageService/internal/service/availability"
	bookingsService "github.com/m04kA/HMS-TriageService/internal/service/bookings"
	equipmentService "github.com/m04kA/HMS-TriageService/internal/service/equipment"
	callNextUC "github.com/m04kA/HMS-TriageService/internal/usecase/call_next"
	requestBookingUC "github.com/m04kA/HMS-TriageService/internal/usecase/request_booking"
	"github.com/m04kA/HMS-TriageService/pkg/logger"
	"github.com/m04kA/HMS-TriageService/pkg/metrics"
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

	log.Info("Starting HMS-TriageService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилища: реестр оборудования из конфигурации и
	// пустое хранилище заявок. Всё состояние живёт только в процессе.
	equipmentRepository := equipmentRepo.NewRepository(cfg.SeedEquipment())
	bookingRepository := bookingRepo.NewRepository()
	log.Info("Equipment registry seeded with %d items", len(cfg.Equipment))

	// Инициализируем сервисы
	estimator := availabilityService.NewService(bookingRepository)
	equipmentSvc := equipmentService.NewService(equipmentRepository, estimator, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	releaseDelay := time.Duration(cfg.Dispatch.ReleaseDelaySeconds) * time.Second
	requestBookingUseCase := requestBookingUC.NewUseCase(bookingRepository, log)
	callNextUseCase := callNextUC.NewUseCase(bookingRepository, equipmentRepository, releaseDelay, log)
	log.Info("Dispatcher configured with release delay %s", releaseDelay)

	// Инициализируем handlers
	var (
		createBookingMetrics createBookingHandler.Metrics
		callNextMetrics      callNextHandler.Metrics
	)
	if cfg.Metrics.Enabled {
		createBookingMetrics = metricsCollector
		callNextMetrics = metricsCollector
	}

	getEquipment := getEquipmentHandler.NewHandler(equipmentSvc, log)
	createBooking := createBookingHandler.NewHandler(requestBookingUseCase, createBookingMetrics, log)
	getPendingBookings := getPendingBookingsHandler.NewHandler(bookingsSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingsSvc, log)
	getQueue := getQueueHandler.NewHandler(bookingsSvc, log)
	callNext := callNextHandler.NewHandler(callNextUseCase, callNextMetrics, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.CORS)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Оборудование с производной доступностью
	api.HandleFunc("/equipment", getEquipment.Handle).Methods(http.MethodGet, http.MethodOptions)

	// Заявки: приём, список ожидающих, подтверждение администратором
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/bookings/pending", getPendingBookings.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Очередь: упорядоченный просмотр и вызов следующего пациента
	api.HandleFunc("/queue/{equipmentId}", getQueue.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/queue/{equipmentId}/next", callNext.Handle).Methods(http.MethodPost, http.MethodOptions)

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
