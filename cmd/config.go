package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StaleSessionMonitorSpec is the cron spec of the stale-session monitor.
	StaleSessionMonitorSpec string
	// StaleSessionThreshold is how long a stage session may stay open before
	// the monitor flags it.
	StaleSessionThreshold time.Duration
}
