package cmd

import "time"

// Config carries everything the composition root needs to wire the
// application, read from the environment by the entrypoint.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// OTPTTL is how long an issued delivery code stays valid.
	OTPTTL time.Duration
	// LockTimeout bounds how long a request waits on a busy entity lock
	// before failing with a contention error.
	LockTimeout time.Duration

	// Batch builder defaults, used when a build request or the scheduled
	// job leaves the limits unset.
	BatchAlgorithm string
	BatchMaxWeight float64
	BatchMaxOrders int
	// AutoBatchSchedule is a five-field cron expression for the background
	// builder run.
	AutoBatchSchedule string
}
