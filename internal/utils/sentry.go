package utils

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// InitSentry initializes Sentry for error tracking. It reports false when no DSN is configured.
func InitSentry(dsn string) (bool, error) {
	if dsn == "" {
		logrus.Info("SENTRY_DSN not set, error tracking disabled")
		return false, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
		AttachStacktrace: true,
	})
	if err != nil {
		return false, fmt.Errorf("sentry.Init: %w", err)
	}

	logrus.Info("Sentry initialized")
	return true, nil
}
