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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brightdental/booking-web/internal/admin"
	createSessionHandler "github.com/brightdental/booking-web/internal/api/handlers/create_session"
	deleteAppointmentHandler "github.com/brightdental/booking-web/internal/api/handlers/delete_appointment"
	getSessionHandler "github.com/brightdental/booking-web/internal/api/handlers/get_session"
	healthHandler "github.com/brightdental/booking-web/internal/api/handlers/health"
	listAppointmentsHandler "github.com/brightdental/booking-web/internal/api/handlers/list_appointments"
	messagePatientHandler "github.com/brightdental/booking-web/internal/api/handlers/message_patient"
	selectDateHandler "github.com/brightdental/booking-web/internal/api/handlers/select_date"
	selectServiceHandler "github.com/brightdental/booking-web/internal/api/handlers/select_service"
	selectTimeHandler "github.com/brightdental/booking-web/internal/api/handlers/select_time"
	stepBackHandler "github.com/brightdental/booking-web/internal/api/handlers/step_back"
	submitBookingHandler "github.com/brightdental/booking-web/internal/api/handlers/submit_booking"
	updateStatusHandler "github.com/brightdental/booking-web/internal/api/handlers/update_appointment_status"
	verifyAdminHandler "github.com/brightdental/booking-web/internal/api/handlers/verify_admin"
	"github.com/brightdental/booking-web/internal/api/middleware"
	"github.com/brightdental/booking-web/internal/booking"
	"github.com/brightdental/booking-web/internal/config"
	clinicClient "github.com/brightdental/booking-web/internal/integrations/clinicapi"
	"github.com/brightdental/booking-web/internal/notify"
	"github.com/brightdental/booking-web/pkg/logger"
	"github.com/brightdental/booking-web/pkg/metrics"
)

func main() {
	// Переменные окружения из .env (если файл есть)
	_ = godotenv.Load()

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

	log.Info("Starting booking-web...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент REST-бэкенда клиники, при включённых метриках его транспорт
	// инструментируется
	var transport http.RoundTripper
	if cfg.Metrics.Enabled {
		transport = metricsCollector.Transport(nil)
	}
	backend := clinicClient.NewClient(
		cfg.Backend.URL,
		cfg.Backend.AdminToken,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		transport,
		log,
	)
	log.Info("Clinic backend client initialized (url=%s timeout=%ds, admin_token=%t)",
		cfg.Backend.URL, cfg.Backend.Timeout, cfg.Backend.AdminToken != "")

	// Диспетчер уведомлений
	whatsapp := notify.NewWhatsApp(cfg.Clinic.Phone, log)

	// Хранилище сессий мастера с фоновой уборкой протухших сессий
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	store := booking.NewStore(sessionTTL, &booking.RealTimeProvider{}, log)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	store.StartJanitor(janitorCtx, time.Duration(cfg.Session.SweepIntervalMinutes)*time.Minute)
	log.Info("Session store initialized (ttl=%s)", sessionTTL)

	// Сервисы
	flow := booking.NewFlow(backend, whatsapp, store, log)
	dashboard := admin.NewService(backend, whatsapp, cfg.Clinic.AveragePriceEGP, log)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(flow, log)
	getSession := getSessionHandler.NewHandler(flow, log)
	selectService := selectServiceHandler.NewHandler(flow, log)
	selectDate := selectDateHandler.NewHandler(flow, log)
	selectTime := selectTimeHandler.NewHandler(flow, log)
	stepBack := stepBackHandler.NewHandler(flow, log)
	submitBooking := submitBookingHandler.NewHandler(flow, log)
	listAppointments := listAppointmentsHandler.NewHandler(dashboard, log)
	updateStatus := updateStatusHandler.NewHandler(dashboard, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(dashboard, log)
	messagePatient := messagePatientHandler.NewHandler(backend, dashboard, log)
	verifyAdmin := verifyAdminHandler.NewHandler(dashboard, log)
	healthCheck := healthHandler.NewHandler(backend, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health endpoint живёт вне локализованного поддерева
	r.HandleFunc("/health", healthCheck.Handle).Methods(http.MethodGet)

	// Локализованное поддерево: каждый маршрут несёт префикс /ar или /en
	localized := r.PathPrefix("/{locale:ar|en}").Subrouter()
	localized.Use(middleware.Locale())

	api := localized.PathPrefix("/api/v1").Subrouter()

	// --- Мастер бронирования ---
	api.HandleFunc("/booking/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking/sessions/{sessionId}/service", selectService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking/sessions/{sessionId}/date", selectDate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking/sessions/{sessionId}/time", selectTime.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking/sessions/{sessionId}/back", stepBack.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking/sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// --- Админ-дашборд ---
	api.HandleFunc("/admin/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/admin/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/admin/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/admin/appointments/{appointmentId}/message", messagePatient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/verify", verifyAdmin.Handle).Methods(http.MethodPost)

	// Запрос без префикса локали получает редирект на вариант с локалью
	// из Accept-Language
	r.NotFoundHandler = middleware.RedirectMissingLocale(log)

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
	stopJanitor()

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
