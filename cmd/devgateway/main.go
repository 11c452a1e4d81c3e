package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"ambulance-reservation-console/config"
	"ambulance-reservation-console/internal/devgateway"
	"ambulance-reservation-console/pkg/validator"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	store := devgateway.NewStore()
	if err := devgateway.Seed(store); err != nil {
		logrus.Fatalf("Failed to seed store: %v", err)
	}

	customValidator := validator.NewValidator()
	router := devgateway.NewRouter(
		devgateway.NewAmbulanceHandler(store, customValidator),
		devgateway.NewPatientHandler(store, customValidator),
		devgateway.NewReservationHandler(store, customValidator),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Gateway.Port),
		Handler: router.Setup(),
	}

	go func() {
		logrus.Infof("Gateway starting on port %s", cfg.Gateway.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start gateway: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down gateway...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logrus.Errorf("Gateway forced to shutdown: %v", err)
	}
	logrus.Info("Gateway shutdown complete")
}
