package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"
)

func TestValidateAndAddDefaults(t *testing.T) {
	// Test case with empty ProjectName and DataSource DNS
	os.Unsetenv("DATABASE_URL")
	cnf := Configuration{
		ProjectName: "",
		DataSource: DataSourceConfig{
			Dns: "",
		},
	}

	err := cnf.validateAndAddDefaults()
	if err == nil || err.Error() != "data source DNS is required" {
		t.Errorf("Expected data source DNS required error, got %v", err)
	}

	// Unsupported driver
	cnf = Configuration{
		DataSource: DataSourceConfig{
			Dns:    "some-dns",
			Driver: "oracle",
		},
	}
	err = cnf.validateAndAddDefaults()
	if err == nil {
		t.Error("Expected unsupported driver error, got nil")
	}

	// Test case with all required fields filled, expect no error
	cnf = Configuration{
		ProjectName: "Test Project",
		DataSource: DataSourceConfig{
			Dns: "some-dns",
		},
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test default settings
	if cnf.Server.Port != DEFAULT_PORT {
		t.Errorf("Expected default port %s, got %s", DEFAULT_PORT, cnf.Server.Port)
	}
	if cnf.DataSource.Driver != DEFAULT_DRIVER {
		t.Errorf("Expected default driver %s, got %s", DEFAULT_DRIVER, cnf.DataSource.Driver)
	}
	if cnf.Query.PageSize != DEFAULT_PAGE_SIZE {
		t.Errorf("Expected default page size %d, got %d", DEFAULT_PAGE_SIZE, cnf.Query.PageSize)
	}
	if cnf.DataSource.MaxOpenConns != 25 || cnf.DataSource.MaxIdleConns != 10 {
		t.Errorf("Unexpected pool defaults: %+v", cnf.DataSource)
	}
	if cnf.DataSource.ConnMaxLifetime != 30*time.Minute {
		t.Errorf("Expected default conn max lifetime, got %v", cnf.DataSource.ConnMaxLifetime)
	}
	if cnf.RateLimit.CleanupIntervalSec == nil || *cnf.RateLimit.CleanupIntervalSec != 10800 {
		t.Errorf("Expected default rate limit cleanup interval")
	}
	if cnf.RateLimit.RequestsPerSecond != nil || cnf.RateLimit.Burst != nil {
		t.Errorf("Expected rate limiting to stay disabled")
	}
	if len(cnf.CORS.AllowedOrigins) != 1 || cnf.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("Expected wildcard CORS origin, got %v", cnf.CORS.AllowedOrigins)
	}
}

func TestValidateAndAddDefaults_RateLimit(t *testing.T) {
	rps := 50.0
	cnf := Configuration{
		DataSource: DataSourceConfig{Dns: "some-dns"},
		RateLimit:  RateLimitConfig{RequestsPerSecond: &rps},
	}
	if err := cnf.validateAndAddDefaults(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cnf.RateLimit.Burst == nil || *cnf.RateLimit.Burst != 100 {
		t.Errorf("Expected burst to default to twice the RPS")
	}

	burst := 10
	cnf = Configuration{
		DataSource: DataSourceConfig{Dns: "some-dns"},
		RateLimit:  RateLimitConfig{Burst: &burst},
	}
	if err := cnf.validateAndAddDefaults(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cnf.RateLimit.RequestsPerSecond == nil || *cnf.RateLimit.RequestsPerSecond != 5 {
		t.Errorf("Expected RPS to default to half the burst")
	}
}

func TestValidateAndAddDefaults_DatabaseURL(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://lookup@localhost:5432/purchases")
	defer os.Unsetenv("DATABASE_URL")

	cnf := Configuration{}
	if err := cnf.validateAndAddDefaults(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cnf.DataSource.Dns != "postgres://lookup@localhost:5432/purchases" {
		t.Errorf("Expected DATABASE_URL to be used, got '%s'", cnf.DataSource.Dns)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	// Create a temporary file
	tmpFile, err := os.CreateTemp("", "purchase.json")
	if err != nil {
		t.Fatalf("Unable to create temporary file: %v", err)
	}
	defer os.Remove(tmpFile.Name()) // Clean up after the test

	// Sample configuration to write to the temp file
	sampleConfig := Configuration{
		ProjectName: "Temp Project",
		DataSource: DataSourceConfig{
			Dns:    "temp-dns",
			Driver: "sqlite3",
		},
		Query: QueryConfig{
			PageSize: 25,
		},
	}
	if err := json.NewEncoder(tmpFile).Encode(sampleConfig); err != nil {
		t.Fatalf("Unable to write to temporary file: %v", err)
	}
	tmpFile.Close() // Close the file so loadConfigFromFile can open it

	// Set environment variables to override the file
	os.Setenv("PURCHASE_PROJECT_NAME", "Env Project")
	defer os.Unsetenv("PURCHASE_PROJECT_NAME")
	os.Setenv("PURCHASE_QUERY_PAGE_SIZE", "5")
	defer os.Unsetenv("PURCHASE_QUERY_PAGE_SIZE")

	// Load the configuration from the file
	if err := loadConfigFromFile(tmpFile.Name()); err != nil {
		t.Fatalf("loadConfigFromFile failed: %v", err)
	}

	// Fetch the loaded configuration
	loadedConfig, err := Fetch()
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	// Check if the environment variable override worked
	if loadedConfig.ProjectName != "Env Project" {
		t.Errorf("Expected ProjectName to be 'Env Project', got '%s'", loadedConfig.ProjectName)
	}
	if loadedConfig.Query.PageSize != 5 {
		t.Errorf("Expected page size override 5, got %d", loadedConfig.Query.PageSize)
	}

	// Check if the file values were loaded correctly
	if loadedConfig.DataSource.Dns != "temp-dns" {
		t.Errorf("Expected DataSource.Dns to be 'temp-dns', got '%s'", loadedConfig.DataSource.Dns)
	}
	if loadedConfig.DataSource.Driver != "sqlite3" {
		t.Errorf("Expected DataSource.Driver to be 'sqlite3', got '%s'", loadedConfig.DataSource.Driver)
	}
}

func TestInitConfig(t *testing.T) {
	// Create a temporary file
	tmpFile, err := os.CreateTemp("", "purchase.json")
	if err != nil {
		t.Fatalf("Unable to create temporary file: %v", err)
	}
	defer os.Remove(tmpFile.Name()) // Clean up after the test

	// Sample configuration to write to the temp file
	sampleConfig := Configuration{
		ProjectName: "InitConfig Test",
		DataSource: DataSourceConfig{
			Dns: "init-config-dns",
		},
	}
	if err := json.NewEncoder(tmpFile).Encode(sampleConfig); err != nil {
		t.Fatalf("Unable to write to temporary file: %v", err)
	}
	tmpFile.Close() // Close the file so InitConfig can open it

	// Attempt to initialize the configuration using the temporary file
	if err := InitConfig(tmpFile.Name()); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	// Fetch the loaded configuration to verify it was loaded correctly
	loadedConfig, err := Fetch()
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	// Verify the configuration was loaded correctly
	if loadedConfig.ProjectName != "InitConfig Test" {
		t.Errorf("Expected ProjectName to be 'InitConfig Test', got '%s'", loadedConfig.ProjectName)
	}
	if loadedConfig.DataSource.Dns != "init-config-dns" {
		t.Errorf("Expected DataSource.Dns to be 'init-config-dns', got '%s'", loadedConfig.DataSource.Dns)
	}
}

func TestSetOtlpExporterEnvs(t *testing.T) {
	// Load a mock configuration into ConfigStore
	mockConfig := Configuration{
		OtlpExporter: OtlpExporter{
			Protocol: "http/protobuf",
			Endpoint: "localhost:4318",
			Headers:  "api-key=12345",
		},
	}
	MockConfig(&mockConfig)
	defer func() {
		os.Unsetenv("OTEL_EXPORTER_OTLP_PROTOCOL")
		os.Unsetenv("OTEL_EXPORTER_OTLP_ENDPOINT")
		os.Unsetenv("OTEL_EXPORTER_OTLP_HEADERS")
	}()

	// Attempt to set the exporter environment variables
	err := SetOtlpExporterEnvs()
	if err != nil {
		t.Fatalf("SetOtlpExporterEnvs failed: %v", err)
	}

	// Verify the environment variables were set correctly
	if os.Getenv("OTEL_EXPORTER_OTLP_PROTOCOL") != "http/protobuf" {
		t.Errorf("Expected OTEL_EXPORTER_OTLP_PROTOCOL to be 'http/protobuf', got '%s'", os.Getenv("OTEL_EXPORTER_OTLP_PROTOCOL"))
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "localhost:4318" {
		t.Errorf("Expected OTEL_EXPORTER_OTLP_ENDPOINT to be 'localhost:4318', got '%s'", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") != "api-key=12345" {
		t.Errorf("Expected OTEL_EXPORTER_OTLP_HEADERS to be 'api-key=12345', got '%s'", os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
	}
}
