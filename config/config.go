package config

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultPendingReleaseSchedule = "@hourly"
	defaultRequestTimeout         = 30 * time.Second
)

// Config holds the project config values
type Config struct {
	URL                    string
	DatabaseName           string
	BaseURL                string
	Port                   string
	Env                    string
	SecretKey              string
	SendGridAPIKey         string
	SendGridFromEmail      string
	PendingReleaseSchedule string
	RequestTimeout         time.Duration
}

// New sets up all config related services
func New() *Config {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	env := os.Getenv("ENV")

	//setup zap logger and replace default logger
	logger, err := setLogger(env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	schedule := os.Getenv("PENDING_RELEASE_SCHEDULE")
	if schedule == "" {
		schedule = defaultPendingReleaseSchedule
	}

	timeout := defaultRequestTimeout
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			zap.S().Warnw("invalid REQUEST_TIMEOUT, using default", "value", v, "default", timeout)
		} else {
			timeout = d
		}
	}

	return &Config{
		URL:                    os.Getenv("DB_URI"),
		DatabaseName:           os.Getenv("DB_NAME"),
		BaseURL:                os.Getenv("BASE_URL"),
		Port:                   os.Getenv("PORT"),
		Env:                    env,
		SecretKey:              os.Getenv("SECRET_KEY"),
		SendGridAPIKey:         os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail:      os.Getenv("SENDGRID_FROM_EMAIL"),
		PendingReleaseSchedule: schedule,
		RequestTimeout:         timeout,
	}
}

func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}
