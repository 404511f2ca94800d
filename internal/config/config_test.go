package config

import (
	"testing"
	"time"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("GCS_BUCKET", "test-bucket")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Address() != "0.0.0.0:8080" {
		t.Fatalf("unexpected address %q", cfg.Server.Address())
	}
	if cfg.GCS.Bucket != "test-bucket" {
		t.Fatalf("unexpected bucket %q", cfg.GCS.Bucket)
	}
	if !cfg.GCS.AllowPublicAccess {
		t.Fatalf("public access should default to enabled")
	}
	if !cfg.GCS.ValidateBucketOnStartup {
		t.Fatalf("startup validation should default to enabled")
	}
	if cfg.GCS.SignedURLTTL != 15*time.Minute {
		t.Fatalf("unexpected signed url ttl %v", cfg.GCS.SignedURLTTL)
	}
	if cfg.Auth.Enabled() {
		t.Fatalf("auth should be disabled without a secret")
	}
}

func TestLoadRequiresBucket(t *testing.T) {
	t.Setenv("GCS_BUCKET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without bucket")
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("GCS_BUCKET", "other")
	t.Setenv("GOSTORE_API_PORT", "9090")
	t.Setenv("GCS_ALLOW_PUBLIC_ACCESS", "false")
	t.Setenv("GCS_VALIDATE_BUCKET_ON_STARTUP", "no")
	t.Setenv("GCS_DEFAULT_USER_ID", "anon")
	t.Setenv("GOSTORE_JWT_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Fatalf("unexpected port %d", cfg.Server.Port)
	}
	if cfg.GCS.AllowPublicAccess {
		t.Fatalf("public access should be disabled")
	}
	if cfg.GCS.ValidateBucketOnStartup {
		t.Fatalf("startup validation should be disabled")
	}
	if cfg.GCS.DefaultUserID != "anon" {
		t.Fatalf("unexpected default user %q", cfg.GCS.DefaultUserID)
	}
	if !cfg.Auth.Enabled() {
		t.Fatalf("auth should be enabled with a secret")
	}
}
