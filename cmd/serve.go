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
	"github.com/spf13/cobra"

	closeBookingHandler "github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers/close_booking"
	createBookingHandler "github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers/get_availability"
	getBookingHandler "github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers/get_booking"
	getDoctorHandler "github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers/get_doctor"
	listAppointmentsHandler "github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers/list_appointments"
	searchDoctorsHandler "github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers/search_doctors"
	submitBookingHandler "github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers/submit_booking"
	updateBookingFormHandler "github.com/goutam1234567890/nirogGyan-Assignment/internal/api/handlers/update_booking_form"
	"github.com/goutam1234567890/nirogGyan-Assignment/internal/api/middleware"
	"github.com/goutam1234567890/nirogGyan-Assignment/internal/config"
	"github.com/goutam1234567890/nirogGyan-Assignment/internal/service/directory"
	"github.com/goutam1234567890/nirogGyan-Assignment/internal/state"
	createBookingUC "github.com/goutam1234567890/nirogGyan-Assignment/internal/usecase/create_booking"
	getAvailabilityUC "github.com/goutam1234567890/nirogGyan-Assignment/internal/usecase/get_availability"
	"github.com/goutam1234567890/nirogGyan-Assignment/pkg/logger"
	"github.com/goutam1234567890/nirogGyan-Assignment/pkg/metrics"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return runServer(configPath)
		},
	}
}

func runServer(configPath string) error {
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

	log.Info("Starting appointment booking service...")
	log.Info("Configuration loaded from %q", configPath)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		bookingMetrics   createBookingUC.MetricsRecorder
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, nil)
		bookingMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем каталог врачей
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	doctors, err := loadCatalog(loadCtx, cfg, log)
	cancelLoad()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Info("Catalog loaded: %d doctors (source=%s)", len(doctors), cfg.Catalog.Source)

	// Хранилище состояния
	store := state.NewStore(doctors)
	if metricsCollector != nil {
		metricsCollector.CatalogDoctors.Set(float64(len(doctors)))
		unsubscribe := store.Subscribe(func(s state.State) {
			metricsCollector.CatalogDoctors.Set(float64(len(s.Doctors)))
		})
		defer unsubscribe()
	}

	// Сервисы и use cases
	directorySvc := directory.NewService(store, log)
	resolver := getAvailabilityUC.NewResolver(log)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(directorySvc, resolver, log)
	bookingUseCase := createBookingUC.NewUseCaseWithTime(
		directorySvc,
		store,
		&createBookingUC.UUIDGenerator{},
		cfg.Booking.SubmitLatency(),
		cfg.Booking.FlowTTL(),
		&createBookingUC.RealTimeProvider{},
		bookingMetrics,
		log,
	)
	defer bookingUseCase.Shutdown()

	// Инициализируем handlers
	searchDoctors := searchDoctorsHandler.NewHandler(store, directorySvc, log)
	getDoctor := getDoctorHandler.NewHandler(directorySvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(bookingUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(bookingUseCase, log)
	updateBookingForm := updateBookingFormHandler.NewHandler(bookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingUseCase, log)
	closeBooking := closeBookingHandler.NewHandler(bookingUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(store, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог ---
	api.HandleFunc("/doctors", searchDoctors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}", getDoctor.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/doctors/{doctorId}/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{flowId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{flowId}", closeBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{flowId}/form", updateBookingForm.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{flowId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// --- Записи ---
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения или ошибку сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

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
	return nil
}
