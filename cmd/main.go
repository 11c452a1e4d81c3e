package main

import (
	"github.com/sirupsen/logrus"

	"ambulance-reservation-console/cmd/bootstrap"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(); err != nil {
		logrus.Fatalf("Console stopped: %v", err)
	}
}
