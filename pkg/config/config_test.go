package config

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", testSecret)
	t.Setenv("STORAGE_DRIVER", "local")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "crewdesk" {
		t.Errorf("Database.Name = %q, want crewdesk", cfg.Database.Name)
	}
	if cfg.Auth.Session.TTL != 24*time.Hour {
		t.Errorf("Session.TTL = %v, want 24h", cfg.Auth.Session.TTL)
	}
	if cfg.Notify.Workers != 2 {
		t.Errorf("Notify.Workers = %d, want 2", cfg.Notify.Workers)
	}
	if cfg.Email.UsesSMTP() {
		t.Error("UsesSMTP() = true without SMTP_HOST")
	}
	if cfg.Bootstrap.Enabled() {
		t.Error("Bootstrap.Enabled() = true without credentials")
	}
	if !cfg.IsDevelopment() {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", testSecret)
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("AWS_BUCKET", "resumes")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("ENVIRONMENT", "Production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Auth.Session.TTL != 2*time.Hour {
		t.Errorf("Session.TTL = %v, want 2h", cfg.Auth.Session.TTL)
	}
	if got := strings.Join(cfg.Server.CORSOrigins, "|"); got != "https://a.example|https://b.example" {
		t.Errorf("CORSOrigins = %q", got)
	}
	if cfg.Redis.Address() != "localhost:6380" {
		t.Errorf("Redis.Address() = %q", cfg.Redis.Address())
	}
	if !cfg.IsProd() {
		t.Errorf("Environment = %q, want production", cfg.Environment)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing secret",
			env:     map[string]string{"STORAGE_DRIVER": "local"},
			wantErr: "JWT_SECRET_KEY is required",
		},
		{
			name:    "short secret",
			env:     map[string]string{"JWT_SECRET_KEY": "short", "STORAGE_DRIVER": "local"},
			wantErr: "at least 32 characters",
		},
		{
			name:    "s3 without bucket",
			env:     map[string]string{"JWT_SECRET_KEY": testSecret},
			wantErr: "AWS_BUCKET",
		},
		{
			name:    "zero session ttl",
			env:     map[string]string{"JWT_SECRET_KEY": testSecret, "STORAGE_DRIVER": "local", "SESSION_TTL": "0s"},
			wantErr: "SESSION_TTL must be positive",
		},
		{
			name:    "negative session ttl",
			env:     map[string]string{"JWT_SECRET_KEY": testSecret, "STORAGE_DRIVER": "local", "SESSION_TTL": "-1h"},
			wantErr: "SESSION_TTL must be positive",
		},
		{
			name:    "unknown driver",
			env:     map[string]string{"JWT_SECRET_KEY": testSecret, "STORAGE_DRIVER": "ftp"},
			wantErr: "unknown STORAGE_DRIVER",
		},
		{
			name: "half bootstrap",
			env: map[string]string{
				"JWT_SECRET_KEY":           testSecret,
				"STORAGE_DRIVER":           "local",
				"BOOTSTRAP_ADMIN_USERNAME": "root",
			},
			wantErr: "must be set together",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"JWT_SECRET_KEY", "STORAGE_DRIVER", "AWS_BUCKET", "BOOTSTRAP_ADMIN_USERNAME", "BOOTSTRAP_ADMIN_PASSWORD", "SESSION_TTL"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatalf("Load() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
