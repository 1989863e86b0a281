package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestServiceConfigApplyDefaults(t *testing.T) {
	t.Run("development exposes details", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc"}
		cfg.ApplyDefaults()
		if cfg.Environment != EnvDevelopment {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
		if !cfg.DetailsExposed() {
			t.Error("expected details to be exposed in development")
		}
		if cfg.Logging.ServiceName != "svc" {
			t.Errorf("expected logging service name to follow config name, got %q", cfg.Logging.ServiceName)
		}
		if cfg.Server.Port != 8080 {
			t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
		}
	})

	t.Run("production hides details", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc", Environment: EnvProduction}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
		if cfg.DetailsExposed() {
			t.Error("expected details to be hidden in production")
		}
	})

	t.Run("explicit setting wins", func(t *testing.T) {
		expose := true
		cfg := ServiceConfig{Name: "svc", Environment: EnvProduction, Errors: ErrorsConfig{ExposeDetails: &expose}}
		cfg.ApplyDefaults()
		if !cfg.DetailsExposed() {
			t.Error("expected explicit expose_details to be kept")
		}
	})
}

func TestDetailsExposedWithoutDefaults(t *testing.T) {
	hide := false
	tests := []struct {
		name string
		cfg  ServiceConfig
		want bool
	}{
		{"production", ServiceConfig{Environment: EnvProduction}, false},
		{"staging", ServiceConfig{Environment: EnvStaging}, true},
		{"empty environment", ServiceConfig{}, true},
		{"explicit", ServiceConfig{Environment: EnvDevelopment, Errors: ErrorsConfig{ExposeDetails: &hide}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.DetailsExposed(); got != tt.want {
				t.Errorf("DetailsExposed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr string
	}{
		{"valid", ServiceConfig{Name: "svc", Environment: EnvStaging}, ""},
		{"missing name", ServiceConfig{Environment: EnvProduction}, "config.name is required"},
		{"invalid environment", ServiceConfig{Name: "svc", Environment: "qa"}, "config.environment must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			env := cfg.Environment
			cfg.ApplyDefaults()
			cfg.Environment = env
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
name: test-service
environment: production
errors:
  expose_details: true
server:
  port: 9090
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cfg ServiceConfig
	if err := LoadConfig("test-service", &cfg, WithConfigFile(configPath), WithEnvPrefix("SVCERR_TEST_")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Name != "test-service" {
		t.Errorf("expected name 'test-service', got %q", cfg.Name)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %q", cfg.Logging.Level)
	}
	if cfg.Errors.ExposeDetails == nil || !*cfg.Errors.ExposeDetails {
		t.Error("expected expose_details=true from file")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("name: svc\nerrors:\n  expose_details: true\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("SVCERR_TEST_ERRORS_EXPOSE_DETAILS", "false")

	var cfg ServiceConfig
	if err := LoadConfig("svc", &cfg, WithConfigFile(configPath), WithEnvPrefix("SVCERR_TEST_")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.DetailsExposed() {
		t.Error("expected env var to override expose_details")
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("SVCERR_ENVFILE_NAME=from-dotenv\n"), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("SVCERR_ENVFILE_NAME") })

	var cfg ServiceConfig
	err := LoadConfig("svc", &cfg,
		WithConfigFile(filepath.Join(dir, "missing.yml")),
		WithEnvFile(envPath),
		WithEnvPrefix("SVCERR_ENVFILE_"),
	)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "from-dotenv" {
		t.Errorf("expected name from .env, got %q", cfg.Name)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg ServiceConfig
	err := LoadConfig("nonexistent-service", &cfg, WithConfigFile("/nonexistent/path.yml"), WithEnvPrefix("SVCERR_NONE_"))
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("name: [unterminated"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cfg ServiceConfig
	if err := LoadConfig("svc", &cfg, WithConfigFile(configPath)); err == nil {
		t.Fatal("expected malformed config to fail")
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/my-svc/config.yml": true,
		"./config/.env":           true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("my-svc", LoaderConfig{})
	if files.ConfigFile != "./cmd/my-svc/config.yml" {
		t.Errorf("expected config file at ./cmd/my-svc/config.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./config/.env" {
		t.Errorf("expected env file at ./config/.env, got %q", files.EnvFile)
	}
}

func TestResolverShortName(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"./cmd/demo/config.yml": true}}
	files := (&Resolver{FileSystem: fs}).ResolveFiles("svcerrors-demo", LoaderConfig{})
	if files.ConfigFile != "./cmd/demo/config.yml" {
		t.Errorf("expected short-name match, got %q", files.ConfigFile)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	variants := envKeyVariants("ERRORS_EXPOSE_DETAILS")
	want := map[string]bool{
		"errors_expose_details": true,
		"errors.expose.details": true,
		"errors.expose_details": true,
		"errors_expose.details": true,
	}
	for _, v := range variants {
		delete(want, v)
	}
	if len(want) != 0 {
		t.Errorf("missing variants %v in %v", want, variants)
	}
	if got := envKeyVariants("NAME"); len(got) != 1 || got[0] != "name" {
		t.Errorf("unexpected single-part variants %v", got)
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	WithFileSystem(&mockFS{})(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("APP_")(&lc)
	if lc.FileSystem == nil || lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" || lc.EnvPrefix != "APP_" {
		t.Errorf("unexpected loader config %+v", lc)
	}
}
