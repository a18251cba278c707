package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Port            string
	HTTPBindAddr    string
	APIEnabled      bool
	Environment     string
	LoggingConfig   LoggingConfig
	PostgresConfig  PostgresConfig
	RedisConfig     RedisConfig
	WorkerConfig    WorkerConfig
	IngestionConfig IngestionConfig
	ForecastConfig  ForecastConfig
	AdminAuthConfig AdminAuthConfig
	WorkerEnabled   bool
	InitSchema      bool
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string
	Format string
}

// PostgresConfig holds PostgreSQL connection configuration.
type PostgresConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	RequireSSL bool
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Host                   string
	Port                   string
	Password               string
	DB                     int
	QueueGroup             string
	QueueStreamPrefix      string
	QueueBlockTimeout      time.Duration
	QueueVisibilityTimeout time.Duration
}

// WorkerConfig holds ingestion worker pool configuration.
type WorkerConfig struct {
	Concurrency        int
	MaxRetries         int
	RetryDelay         time.Duration
	JobTimeout         time.Duration
	ShutdownTimeout    time.Duration
	SchedulerLockTTL   time.Duration
	SchedulerLockRenew time.Duration
	SchedulerLockKey   string
	WorkerID           string
	RegistryNamespace  string
	HeartbeatInterval  time.Duration
	HeartbeatTTL       time.Duration
}

// IngestionConfig holds upstream weather/holiday API configuration and the
// historical/forecast cutover, per spec §4.1 and §6.
type IngestionConfig struct {
	IAPPAPIKey             string
	IAPPAPIURL             string
	OpenWeatherMapAPIKey   string
	OpenWeatherMapAPIURL   string
	Provinces              []string
	HistoricalCutoverDate  string // D_hist, YYYY-MM-DD; historical weather is authoritative through this date (inclusive)
	HolidayYearRangeBack   int
	HolidayYearRangeAhead  int
	ChunkPauseMillis       int // between historical weather month-chunks, >=200ms per §4.1
	ProvincePauseMillis    int // between provinces for the forecast API, >=1s per §4.1
	HolidayYearPauseMillis int // between holiday year calls, >=200ms per §4.1
}

// ForecastConfig holds gradient-boosted regression training parameters (§4.6).
type ForecastConfig struct {
	Shrinkage      float64
	MaxDepth       int
	Rounds         int
	CVFolds        int
	MinTrainingDay int // lower bound of training window, days before "today"
	MaxForecastDay int // upper bound of training window, days after "today"
	MinRows        int // below this, train on all available rows (§4.6)
}

// AdminAuthConfig holds admin authentication configuration for ingestion trigger endpoints.
type AdminAuthConfig struct {
	Enabled  bool
	Username string
	Password string
	Token    string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	port := getEnv("PORT", "8080")
	httpBindAddr := getEnv("HTTP_BIND_ADDR", "")
	environment := getEnv("ENVIRONMENT", "development")
	apiEnabled, _ := strconv.ParseBool(getEnv("API_ENABLED", "true"))
	workerEnabled, _ := strconv.ParseBool(getEnv("WORKER_ENABLED", "true"))
	initSchema, _ := strconv.ParseBool(getEnv("INIT_SCHEMA", "true"))

	loggingConfig := LoggingConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "json"),
	}

	postgresConfig := PostgresConfig{
		Host:       getEnv("DB_HOST", "postgres"),
		Port:       getEnv("DB_PORT", "5432"),
		User:       getEnv("DB_USER", "flightanalytics"),
		Password:   getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "flightanalytics"),
		SSLMode:    getEnv("DB_SSLMODE", "disable"),
		RequireSSL: getEnv("DB_REQUIRE_SSL", "false") == "true",
	}

	queueBlockTimeout, err := time.ParseDuration(getEnv("REDIS_QUEUE_BLOCK_TIMEOUT", "5s"))
	if err != nil {
		queueBlockTimeout = 5 * time.Second
	}
	queueVisibilityTimeout, err := time.ParseDuration(getEnv("REDIS_QUEUE_VISIBILITY_TIMEOUT", "2m"))
	if err != nil {
		queueVisibilityTimeout = 2 * time.Minute
	}

	redisConfig := RedisConfig{
		Host:                   getEnv("REDIS_HOST", "redis"),
		Port:                   getEnv("REDIS_PORT", "6379"),
		Password:               getEnv("REDIS_PASSWORD", ""),
		DB:                     0,
		QueueGroup:             getEnv("REDIS_QUEUE_GROUP", "ingestion_workers"),
		QueueStreamPrefix:      getEnv("REDIS_QUEUE_STREAM_PREFIX", "flightanalytics"),
		QueueBlockTimeout:      queueBlockTimeout,
		QueueVisibilityTimeout: queueVisibilityTimeout,
	}

	concurrency, _ := strconv.Atoi(getEnv("WORKER_CONCURRENCY", "5"))
	maxRetries, _ := strconv.Atoi(getEnv("WORKER_MAX_RETRIES", "3"))
	retryDelay, _ := time.ParseDuration(getEnv("WORKER_RETRY_DELAY", "30s"))
	jobTimeout, _ := time.ParseDuration(getEnv("WORKER_JOB_TIMEOUT", "10m"))
	shutdownTimeout, _ := time.ParseDuration(getEnv("WORKER_SHUTDOWN_TIMEOUT", "30s"))
	schedulerLockTTL, _ := time.ParseDuration(getEnv("SCHEDULER_LOCK_TTL", "30s"))
	schedulerLockRenew, _ := time.ParseDuration(getEnv("SCHEDULER_LOCK_RENEW", "10s"))
	schedulerLockKey := getEnv("SCHEDULER_LOCK_KEY", "scheduler:leader")
	heartbeatInterval, _ := time.ParseDuration(getEnv("WORKER_HEARTBEAT_INTERVAL", "10s"))
	heartbeatTTL, _ := time.ParseDuration(getEnv("WORKER_HEARTBEAT_TTL", "45s"))

	hostname, _ := os.Hostname()
	workerConfig := WorkerConfig{
		Concurrency:        concurrency,
		MaxRetries:         maxRetries,
		RetryDelay:         retryDelay,
		JobTimeout:         jobTimeout,
		ShutdownTimeout:    shutdownTimeout,
		SchedulerLockTTL:   schedulerLockTTL,
		SchedulerLockRenew: schedulerLockRenew,
		SchedulerLockKey:   schedulerLockKey,
		WorkerID:           getEnv("WORKER_ID", hostname),
		RegistryNamespace:  getEnv("WORKER_REGISTRY_NAMESPACE", "thai-flight-analytics"),
		HeartbeatInterval:  heartbeatInterval,
		HeartbeatTTL:       heartbeatTTL,
	}

	provincesStr := getEnv("INGEST_PROVINCES", "Bangkok,Phuket,Chiang Mai,Krabi,Surat Thani,Chon Buri")
	var provinces []string
	for _, p := range strings.Split(provincesStr, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			provinces = append(provinces, p)
		}
	}

	chunkPause, _ := strconv.Atoi(getEnv("INGEST_CHUNK_PAUSE_MS", "200"))
	provincePause, _ := strconv.Atoi(getEnv("INGEST_PROVINCE_PAUSE_MS", "1000"))
	holidayPause, _ := strconv.Atoi(getEnv("INGEST_HOLIDAY_PAUSE_MS", "200"))
	backYears, _ := strconv.Atoi(getEnv("INGEST_HOLIDAY_YEARS_BACK", "1"))
	aheadYears, _ := strconv.Atoi(getEnv("INGEST_HOLIDAY_YEARS_AHEAD", "1"))

	ingestionConfig := IngestionConfig{
		IAPPAPIKey:             os.Getenv("IAPP_API_KEY"),
		IAPPAPIURL:             getEnv("IAPP_API_URL", "https://api.iapp.co.th"),
		OpenWeatherMapAPIKey:   os.Getenv("OPENWEATHERMAP_API_KEY"),
		OpenWeatherMapAPIURL:   getEnv("OPENWEATHERMAP_API_URL", "https://api.openweathermap.org/data/2.5"),
		Provinces:              provinces,
		HistoricalCutoverDate:  getEnv("INGEST_HISTORICAL_CUTOVER", time.Now().UTC().Format("2006-01-02")),
		HolidayYearRangeBack:   backYears,
		HolidayYearRangeAhead:  aheadYears,
		ChunkPauseMillis:       chunkPause,
		ProvincePauseMillis:    provincePause,
		HolidayYearPauseMillis: holidayPause,
	}

	cvFolds, _ := strconv.Atoi(getEnv("FORECAST_CV_FOLDS", "5"))
	rounds, _ := strconv.Atoi(getEnv("FORECAST_ROUNDS", "100"))
	depth, _ := strconv.Atoi(getEnv("FORECAST_MAX_DEPTH", "6"))
	shrinkage, _ := strconv.ParseFloat(getEnv("FORECAST_SHRINKAGE", "0.1"), 64)
	minTrainDay, _ := strconv.Atoi(getEnv("FORECAST_MIN_TRAIN_DAY", "180"))
	maxForecastDay, _ := strconv.Atoi(getEnv("FORECAST_MAX_TRAIN_DAY", "60"))
	minRows, _ := strconv.Atoi(getEnv("FORECAST_MIN_ROWS", "5"))

	forecastConfig := ForecastConfig{
		Shrinkage:      shrinkage,
		MaxDepth:       depth,
		Rounds:         rounds,
		CVFolds:        cvFolds,
		MinTrainingDay: minTrainDay,
		MaxForecastDay: maxForecastDay,
		MinRows:        minRows,
	}

	adminAuthEnabled, _ := strconv.ParseBool(getEnv("ADMIN_AUTH_ENABLED", "false"))
	adminAuthConfig := AdminAuthConfig{
		Enabled:  adminAuthEnabled,
		Username: getEnv("ADMIN_AUTH_USERNAME", ""),
		Password: getEnv("ADMIN_AUTH_PASSWORD", ""),
		Token:    getEnv("ADMIN_AUTH_TOKEN", ""),
	}

	return &Config{
		Port:            port,
		HTTPBindAddr:    httpBindAddr,
		APIEnabled:      apiEnabled,
		Environment:     environment,
		LoggingConfig:   loggingConfig,
		PostgresConfig:  postgresConfig,
		RedisConfig:     redisConfig,
		WorkerConfig:    workerConfig,
		IngestionConfig: ingestionConfig,
		ForecastConfig:  forecastConfig,
		AdminAuthConfig: adminAuthConfig,
		WorkerEnabled:   workerEnabled,
		InitSchema:      initSchema,
	}, nil
}

// LoadTestConfig loads configuration suitable for integration tests.
func LoadTestConfig() *Config {
	return &Config{
		PostgresConfig: PostgresConfig{
			Host:    getEnv("DB_HOST", "localhost"),
			Port:    getEnv("DB_PORT", "5432"),
			User:    getEnv("DB_USER", "flightanalytics"),
			DBName:  getEnv("DB_NAME_TEST", "flightanalytics_test"),
			SSLMode: getEnv("DB_SSLMODE", "disable"),
		},
		RedisConfig: RedisConfig{
			Host:                   getEnv("REDIS_HOST", "localhost"),
			Port:                   getEnv("REDIS_PORT", "6379"),
			QueueGroup:             getEnv("REDIS_QUEUE_GROUP", "ingestion_workers"),
			QueueStreamPrefix:      getEnv("REDIS_QUEUE_STREAM_PREFIX", "flightanalytics"),
			QueueBlockTimeout:      5 * time.Second,
			QueueVisibilityTimeout: 2 * time.Minute,
		},
		ForecastConfig: ForecastConfig{
			Shrinkage:      0.1,
			MaxDepth:       6,
			Rounds:         100,
			CVFolds:        5,
			MinTrainingDay: 180,
			MaxForecastDay: 60,
			MinRows:        5,
		},
		Environment: "test",
	}
}

// TestConfig returns a default test configuration with the worker pool disabled.
func TestConfig() *Config {
	cfg := LoadTestConfig()
	cfg.WorkerEnabled = false
	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if len(strings.TrimSpace(value)) == 0 {
		return defaultValue
	}
	return strings.TrimSpace(value)
}
