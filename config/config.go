/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_PORT      = "5001"
	DEFAULT_DRIVER    = "postgres"
	DEFAULT_PAGE_SIZE = 10
)

var ConfigStore atomic.Value

type ServerConfig struct {
	Port            string        `json:"port" envconfig:"PURCHASE_SERVER_PORT"`
	ReadTimeout     time.Duration `json:"read_timeout" envconfig:"PURCHASE_SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `json:"write_timeout" envconfig:"PURCHASE_SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" envconfig:"PURCHASE_SERVER_SHUTDOWN_TIMEOUT"`
}

type DataSourceConfig struct {
	Dns             string        `json:"dns" envconfig:"PURCHASE_DATA_SOURCE_DNS"`
	Driver          string        `json:"driver" envconfig:"PURCHASE_DATA_SOURCE_DRIVER"`
	MaxOpenConns    int           `json:"max_open_conns" envconfig:"PURCHASE_DATA_SOURCE_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `json:"max_idle_conns" envconfig:"PURCHASE_DATA_SOURCE_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime" envconfig:"PURCHASE_DATA_SOURCE_CONN_MAX_LIFETIME"`
	ConnMaxIdleTime time.Duration `json:"conn_max_idle_time" envconfig:"PURCHASE_DATA_SOURCE_CONN_MAX_IDLE_TIME"`
	ConnectTimeout  time.Duration `json:"connect_timeout" envconfig:"PURCHASE_DATA_SOURCE_CONNECT_TIMEOUT"`
}

type QueryConfig struct {
	PageSize int `json:"page_size" envconfig:"PURCHASE_QUERY_PAGE_SIZE"`
}

type RateLimitConfig struct {
	RequestsPerSecond  *float64 `json:"requests_per_second" envconfig:"PURCHASE_RATE_LIMIT_RPS"`
	Burst              *int     `json:"burst" envconfig:"PURCHASE_RATE_LIMIT_BURST"`
	CleanupIntervalSec *int     `json:"cleanup_interval_sec" envconfig:"PURCHASE_RATE_LIMIT_CLEANUP_INTERVAL_SEC"`
}

type CORSConfig struct {
	AllowedOrigins []string `json:"allowed_origins" envconfig:"PURCHASE_CORS_ALLOWED_ORIGINS"`
}

type SlackConfig struct {
	WebhookUrl string `json:"webhook_url" envconfig:"PURCHASE_SLACK_WEBHOOK_URL"`
}

type NotificationConfig struct {
	Slack SlackConfig `json:"slack"`
}

// OtlpExporter carries the OTLP exporter settings handed to the OpenTelemetry SDK through its standard env vars.
type OtlpExporter struct {
	Protocol string `json:"protocol" envconfig:"PURCHASE_OTEL_EXPORTER_OTLP_PROTOCOL"`
	Endpoint string `json:"endpoint" envconfig:"PURCHASE_OTEL_EXPORTER_OTLP_ENDPOINT"`
	Headers  string `json:"headers" envconfig:"PURCHASE_OTEL_EXPORTER_OTLP_HEADERS"`
}

type Configuration struct {
	ProjectName     string             `json:"project_name" envconfig:"PURCHASE_PROJECT_NAME"`
	Server          ServerConfig       `json:"server"`
	DataSource      DataSourceConfig   `json:"data_source"`
	Query           QueryConfig        `json:"query"`
	RateLimit       RateLimitConfig    `json:"rate_limit"`
	CORS            CORSConfig         `json:"cors"`
	EnableTelemetry bool               `json:"enable_telemetry" envconfig:"PURCHASE_ENABLE_TELEMETRY"`
	OtlpExporter    OtlpExporter       `json:"otlp_exporter"`
	Notification    NotificationConfig `json:"notification"`
	Debug           bool               `json:"debug" envconfig:"PURCHASE_DEBUG"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}

	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("purchase", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called purchase.json with your config ❌")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	if cnf.ProjectName == "" {
		log.Println("Warning: Project name is empty. Setting a default name.")
		cnf.ProjectName = "Purchase Lookup"
	}

	// DATABASE_URL is honoured for deployments that only provide a connection string.
	if strings.TrimSpace(cnf.DataSource.Dns) == "" {
		cnf.DataSource.Dns = os.Getenv("DATABASE_URL")
	}

	if strings.TrimSpace(cnf.DataSource.Dns) == "" {
		log.Println("Error: Data source DNS is empty. It's a required field.")
		return errors.New("data source DNS is required")
	}

	// Trim white spaces from fields
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Server.Port = strings.TrimSpace(cnf.Server.Port)
	cnf.DataSource.Dns = strings.TrimSpace(cnf.DataSource.Dns)
	cnf.DataSource.Driver = strings.ToLower(strings.TrimSpace(cnf.DataSource.Driver))

	// Set default value for Port if it's empty
	if cnf.Server.Port == "" {
		cnf.Server.Port = DEFAULT_PORT
		log.Printf("Warning: Port not specified in config. Setting default port: %s", DEFAULT_PORT)
	}
	if cnf.Server.ReadTimeout <= 0 {
		cnf.Server.ReadTimeout = 15 * time.Second
	}
	if cnf.Server.WriteTimeout <= 0 {
		cnf.Server.WriteTimeout = 30 * time.Second
	}
	if cnf.Server.ShutdownTimeout <= 0 {
		cnf.Server.ShutdownTimeout = 10 * time.Second
	}

	switch cnf.DataSource.Driver {
	case "":
		cnf.DataSource.Driver = DEFAULT_DRIVER
	case "postgres", "mysql", "sqlite3":
	default:
		return fmt.Errorf("unsupported data source driver: %s", cnf.DataSource.Driver)
	}

	// Pool limits
	if cnf.DataSource.MaxOpenConns <= 0 {
		cnf.DataSource.MaxOpenConns = 25
	}
	if cnf.DataSource.MaxIdleConns <= 0 {
		cnf.DataSource.MaxIdleConns = 10
	}
	if cnf.DataSource.ConnMaxLifetime <= 0 {
		cnf.DataSource.ConnMaxLifetime = 30 * time.Minute
	}
	if cnf.DataSource.ConnMaxIdleTime <= 0 {
		cnf.DataSource.ConnMaxIdleTime = 5 * time.Minute
	}
	if cnf.DataSource.ConnectTimeout <= 0 {
		cnf.DataSource.ConnectTimeout = 30 * time.Second
	}

	if cnf.Query.PageSize <= 0 {
		cnf.Query.PageSize = DEFAULT_PAGE_SIZE
		log.Printf("Warning: Page size not specified in config. Setting default value: %d", DEFAULT_PAGE_SIZE)
	}

	// Rate limiting is disabled by default (when both RPS and Burst are nil)
	if cnf.RateLimit.RequestsPerSecond != nil && cnf.RateLimit.Burst == nil {
		defaultBurst := 2 * int(*cnf.RateLimit.RequestsPerSecond)
		cnf.RateLimit.Burst = &defaultBurst
		log.Printf("Warning: Rate limit burst not specified. Setting default value: %d", defaultBurst)
	}
	if cnf.RateLimit.RequestsPerSecond == nil && cnf.RateLimit.Burst != nil {
		defaultRPS := float64(*cnf.RateLimit.Burst) / 2
		cnf.RateLimit.RequestsPerSecond = &defaultRPS
		log.Printf("Warning: Rate limit RPS not specified. Setting default value: %.2f", defaultRPS)
	}

	// Set default cleanup interval if not specified
	if cnf.RateLimit.CleanupIntervalSec == nil {
		defaultCleanup := 10800 // 3 hours in seconds
		cnf.RateLimit.CleanupIntervalSec = &defaultCleanup
		log.Printf("Warning: Rate limit cleanup interval not specified. Setting default value: %d seconds", defaultCleanup)
	}

	if len(cnf.CORS.AllowedOrigins) == 0 {
		cnf.CORS.AllowedOrigins = []string{"*"}
	}

	return nil
}

// SetOtlpExporterEnvs exports the configured OTLP settings so otlptracehttp picks them up.
func SetOtlpExporterEnvs() error {
	cnf, err := Fetch()
	if err != nil {
		return err
	}

	envs := map[string]string{
		"OTEL_EXPORTER_OTLP_PROTOCOL": cnf.OtlpExporter.Protocol,
		"OTEL_EXPORTER_OTLP_ENDPOINT": cnf.OtlpExporter.Endpoint,
		"OTEL_EXPORTER_OTLP_HEADERS":  cnf.OtlpExporter.Headers,
	}
	for key, value := range envs {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
