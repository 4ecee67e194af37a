package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	panelhttp "github.com/suchimauz/clinic-admin-panel/internal/adapters/in/http"
	"github.com/suchimauz/clinic-admin-panel/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/clinic-admin-panel/internal/adapters/out/clinicapi"
	"github.com/suchimauz/clinic-admin-panel/internal/adapters/out/logger"
	"github.com/suchimauz/clinic-admin-panel/internal/adapters/out/session"
	"github.com/suchimauz/clinic-admin-panel/internal/adapters/out/store"
	"github.com/suchimauz/clinic-admin-panel/internal/config"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
	"github.com/suchimauz/clinic-admin-panel/internal/core/services"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"clinicUrl":       cfg.Clinic.URL,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализация адаптеров
	doctorSession := session.NewMemorySession(cfg, mainLogger)
	clinicAdapter := clinicapi.NewClinicAdapter(cfg, doctorSession, mainLogger.WithModule("ClinicAdapter"))

	draftStore, err := store.NewLRUDraftStore(cfg, mainLogger)
	if err != nil {
		log.Error("app.drafts.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Инициализация сервисов
	draftService := services.NewAppointmentDraftService(
		clinicAdapter,
		draftStore,
		mainLogger,
	)
	panelService := services.NewPanelService(
		clinicAdapter,
		doctorSession,
		mainLogger,
	)

	// Настройка HTTP сервера
	router := gin.Default()
	api := router.Group("/api/v1")
	api.Use(panelhttp.BasicAuth(cfg))

	panelhttp.NewDraftController(draftService).RegisterRoutes(api)
	panelhttp.NewAppointmentController(panelService).RegisterRoutes(api)
	panelhttp.NewPatientController(panelService).RegisterRoutes(api)
	panelhttp.NewProfileController(panelService).RegisterRoutes(api)
	panelhttp.NewPrescriptionController(panelService).RegisterRoutes(api)

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewAppointmentListener(
			draftService,
			cfg,
			mainLogger.WithModule("RabbitMQListener"),
		)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
