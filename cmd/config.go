package cmd

import "time"

// Config holds everything the application reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string
	JWTTokenTTL   time.Duration

	StaleOrderThreshold time.Duration
}
