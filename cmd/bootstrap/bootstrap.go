package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"ambulance-reservation-console/config"
	"ambulance-reservation-console/internal/calendar"
	"ambulance-reservation-console/internal/delivery/console"
	"ambulance-reservation-console/internal/gateway"
	"ambulance-reservation-console/internal/navigation"
	"ambulance-reservation-console/internal/usecase"
	"ambulance-reservation-console/pkg/validator"
)

// App holds all dependencies for the reservation console
type App struct {
	Config  *config.Config
	Console *console.Console
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := setupLogger(cfg)
	log.Info("Configuration loaded successfully")

	app.Console = initializeConsole(cfg, log)
	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// initializeConsole wires the gateway client, navigation, and root shell.
func initializeConsole(cfg *config.Config, log *logrus.Logger) *console.Console {
	customValidator := validator.NewValidator()

	client := gateway.NewClient(cfg.API.Base, cfg.API.Timeout, log)
	ambulanceGw := gateway.NewAmbulanceGateway(client)
	patientGw := gateway.NewPatientGateway(client)
	reservationGw := gateway.NewReservationGateway(client)

	resolver := navigation.NewResolver(cfg.App.BasePath)
	history := navigation.NewMemoryHistory(resolver.RootPath())

	shell := usecase.NewShell(log, history, resolver, ambulanceGw, patientGw, cfg.App.ToastDuration)

	return console.NewConsole(
		log,
		customValidator,
		resolver,
		shell,
		ambulanceGw,
		patientGw,
		reservationGw,
		calendar.Factory(func() calendar.Surface { return calendar.NewMemorySurface() }),
		os.Stdin,
		os.Stdout,
	)
}

// Run starts the console loop and stops it on SIGINT/SIGTERM.
func (app *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		cancel()
	}()

	return app.Console.Run(ctx)
}
