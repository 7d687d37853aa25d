package main

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config is the container for app configuration
type Config struct {
	// VSOURL - collection url, e.g. https://account.visualstudio.com/DefaultCollection
	VSOURL string `envconfig:"VSO_URL" required:"true"`

	// VSOUser - user name of alternate authentication credentials
	VSOUser string `envconfig:"VSO_USER" required:"true"`

	// VSOPassword - password or personal access token
	VSOPassword string `envconfig:"VSO_PASSWORD" required:"true"`

	// VSOAPIVersion - api-version query param sent with every request
	VSOAPIVersion string `envconfig:"VSO_API_VERSION" default:"2.0"`

	// VSORateLimit - max frequency for vso api calls, 0 disables rate limiting
	VSORateLimit float64 `envconfig:"VSO_RATE_LIMIT" default:"20"`

	// VSOMaxConcurrentRequests - max number of vso api calls in flight
	VSOMaxConcurrentRequests int64 `envconfig:"VSO_MAX_CONCURRENT_REQUESTS" default:"16"`

	// VSOTimeout - timeout for a single vso api call
	VSOTimeout time.Duration `envconfig:"VSO_TIMEOUT" default:"30s"`

	// RunTimeout - timeout for collecting all data of a single report run, 0 disables it
	RunTimeout time.Duration `envconfig:"RUN_TIMEOUT" default:"0s"`

	// CommitReportGroupBy - "name" merges members sharing display name, "id" keeps them apart
	CommitReportGroupBy string `envconfig:"COMMIT_REPORT_GROUP_BY" default:"name"`

	// CommitCacheSize - maximum number of commit authors kept in memory
	CommitCacheSize int `envconfig:"COMMIT_CACHE_SIZE" default:"100000"`

	// CommitDBPath - filepath for bolt db with commit authors. If empty, authors are not persisted
	CommitDBPath string `envconfig:"COMMIT_DB_PATH" default:""`

	// CommitDBBucketName - bolt db bucket name
	CommitDBBucketName string `envconfig:"COMMIT_DB_BUCKET_NAME" default:"commits"`

	// OutputDir - directory for report files
	OutputDir string `envconfig:"OUTPUT_DIR" default:"."`

	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `envconfig:"HTTP_SERVER_ADDRESS" default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `envconfig:"HTTP_PROFILE_SERVER_ADDRESS" default:""`

	// HTTPHandlerTimeout - timeout for handling single http request
	HTTPHandlerTimeout time.Duration `envconfig:"HTTP_HANDLER_TIMEOUT" default:"5m"`

	// LogLevel - logrus level name
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// loadConfig reads config from environment. Variables from .env file are loaded first if the file exists.
func loadConfig(l logrus.FieldLogger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		l.Debugf("no .env file loaded, continuing with existing environment: %v", err)
	}

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &conf, nil
}
