package main

import (
	"errors"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// fatalConfig logs a configuration failure at Fatal, our critical level, which
// exits with status 1 before any poll happens.
func fatalConfig(log *logrus.Entry, err error) {
	var credErr *config.CredentialError
	if errors.As(err, &credErr) {
		log.WithFields(logrus.Fields{
			"missing": credErr.Missing,
			"invalid": credErr.Invalid,
		}).Fatalf("Required environment variable is missing, bot stopped: %v", err)
		return
	}
	log.Fatalf("Could not load application configuration: %v", err)
}
