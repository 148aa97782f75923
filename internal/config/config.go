package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable is invalid")

const (
	apiPortEnvKey          = "API_PORT"
	dbConnEnvKey           = "DB_CONNECTION_URL"
	jwtSecretEnvKey        = "JWT_SECRET"
	jwtTTLEnvKey           = "JWT_TTL"
	requestTimeoutEnvKey   = "REQUEST_TIMEOUT"
	corsOriginEnvKey       = "CORS_ORIGIN"
	trustProxyEnvKey       = "TRUST_PROXY_HEADERS"
	redisURLEnvKey         = "REDIS_URL"
	loginMaxAttemptsEnvKey = "LOGIN_MAX_ATTEMPTS"
	loginWindowEnvKey      = "LOGIN_WINDOW"
	natsURLEnvKey          = "NATS_URL"
	otelCollectorEnvKey    = "OTEL_COLLECTOR_URL"
	seedAdminNameEnvKey    = "SEED_ADMIN_NAME"
	seedAdminEmailEnvKey   = "SEED_ADMIN_EMAIL"
	seedAdminPassEnvKey    = "SEED_ADMIN_PASSWORD"
)

const (
	defaultPort             = "3000"
	defaultJWTTTL           = time.Hour
	defaultRequestTimeout   = 15 * time.Second
	defaultCORSOrigin       = "*"
	defaultLoginMaxAttempts = 10
	defaultLoginWindow      = time.Minute
)

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	JWTTTL          time.Duration
	RequestTimeout  time.Duration
	CORSOrigin      string
	// TrustProxyHeaders takes the client address from X-Forwarded-For and
	// X-Real-IP. Enable only behind a proxy that overwrites them.
	TrustProxyHeaders bool
	RedisURL          string
	LoginMaxAttempts  int
	LoginWindow       time.Duration
	NATSURL           string
	OTelCollectorURL  string
	SeedAdmin         *SeedAccount
}

// SeedAccount is the bootstrap account inserted into an empty users table.
type SeedAccount struct {
	Name     string
	Email    string
	Password string
}

// NewApp reads the application configuration from the environment. A .env
// file in the working directory is loaded first when present.
func NewApp() (App, error) {
	_ = godotenv.Load()

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok || dbConn == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok || jwtSecret == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	jwtTTL, err := durationEnv(jwtTTLEnvKey, defaultJWTTTL)
	if err != nil {
		return App{}, err
	}

	requestTimeout, err := durationEnv(requestTimeoutEnvKey, defaultRequestTimeout)
	if err != nil {
		return App{}, err
	}

	loginWindow, err := durationEnv(loginWindowEnvKey, defaultLoginWindow)
	if err != nil {
		return App{}, err
	}

	trustProxy, err := boolEnv(trustProxyEnvKey)
	if err != nil {
		return App{}, err
	}

	loginMaxAttempts, err := intEnv(loginMaxAttemptsEnvKey, defaultLoginMaxAttempts)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:              stringEnv(apiPortEnvKey, defaultPort),
		DBConnectionURL:   dbConn,
		JWTSecret:         jwtSecret,
		JWTTTL:            jwtTTL,
		RequestTimeout:    requestTimeout,
		CORSOrigin:        stringEnv(corsOriginEnvKey, defaultCORSOrigin),
		TrustProxyHeaders: trustProxy,
		RedisURL:          os.Getenv(redisURLEnvKey),
		LoginMaxAttempts:  loginMaxAttempts,
		LoginWindow:       loginWindow,
		NATSURL:           os.Getenv(natsURLEnvKey),
		OTelCollectorURL:  os.Getenv(otelCollectorEnvKey),
		SeedAdmin:         seedAccount(),
	}, nil
}

func seedAccount() *SeedAccount {
	name := os.Getenv(seedAdminNameEnvKey)
	email := os.Getenv(seedAdminEmailEnvKey)
	password := os.Getenv(seedAdminPassEnvKey)
	if name == "" || email == "" || password == "" {
		return nil
	}

	return &SeedAccount{
		Name:     name,
		Email:    email,
		Password: password,
	}
}

func stringEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, v)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, v)
	}
	return n, nil
}

func boolEnv(key string) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, v)
	}
	return b, nil
}
