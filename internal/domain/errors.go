package domain

import "errors"

// Sentinel errors returned while loading configuration.
var (
	ErrInvalidSchedule = errors.New("invalid health check schedule: expected a 5-field cron expression")
	ErrInvalidURL      = errors.New("invalid health check URL: expected an absolute http or https URL")
)
