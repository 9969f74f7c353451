package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Service.Account != "000000000000" {
		t.Fatalf("unexpected account %q", cfg.Service.Account)
	}
	if cfg.Limits.PollInterval() != 500*time.Millisecond {
		t.Fatalf("unexpected poll interval %s", cfg.Limits.PollInterval())
	}
	if len(cfg.Lending.PageTypes) == 0 {
		t.Fatalf("expected lending page types")
	}
}

func TestPermissionsUnion(t *testing.T) {
	cfg := Default()
	perms := cfg.Permissions([]string{"reader"})
	if !perms["job.read"] || perms["document.analyze"] {
		t.Fatalf("unexpected reader permissions: %v", perms)
	}
	perms = cfg.Permissions([]string{"reader", "analyst", "ghost"})
	if !perms["document.analyze"] || perms["adapter.write"] {
		t.Fatalf("unexpected union: %v", perms)
	}
	if len(cfg.Permissions([]string{"admin"})) != 8 {
		t.Fatalf("admin should hold every permission")
	}
}

func TestFromYAMLOverridesDefaults(t *testing.T) {
	cfg, err := FromYAML([]byte(`
service:
  region: eu-test-1
  account: "123456789012"
limits:
  runner_poll_interval: 2s
notifications:
  topics:
    "arn:aws:sns:eu-test-1:123456789012:done":
      url: http://127.0.0.1:9000/hook
      timeout: 3s
`))
	if err != nil {
		t.Fatalf("from yaml: %v", err)
	}
	if cfg.Service.Region != "eu-test-1" || cfg.Service.Account != "123456789012" {
		t.Fatalf("service not overridden: %+v", cfg.Service)
	}
	if cfg.Limits.SyncMaxBytes != 10485760 {
		t.Fatalf("defaults lost: %d", cfg.Limits.SyncMaxBytes)
	}
	if cfg.Limits.PollInterval() != 2*time.Second {
		t.Fatalf("unexpected poll interval %s", cfg.Limits.PollInterval())
	}
	if cfg.Notification.Topics["arn:aws:sns:eu-test-1:123456789012:done"].URL == "" {
		t.Fatalf("topic missing: %+v", cfg.Notification.Topics)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown store", "object_store:\n  kind: tape\n", "object_store.kind"},
		{"minio without endpoint", "object_store:\n  kind: minio\n", "endpoint"},
		{"sync over async", "limits:\n  sync_max_bytes: 600000000\n", "exceeds"},
		{"page sizes", "limits:\n  default_page_size: 2000\n", "page sizes"},
		{"anonymous role", "auth:\n  anonymous_role: ghost\n", "unknown role"},
		{"topic arn", "notifications:\n  topics:\n    done:\n      url: http://x\n", "not an arn"},
		{"topic url", "notifications:\n  topics:\n    \"arn:aws:sns:local-1:0:done\": {}\n", "no url"},
		{"threshold", "human_loop:\n  confidence_threshold: 120\n", "confidence_threshold"},
		{"poll interval", "limits:\n  runner_poll_interval: soon\n", "runner_poll_interval"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromYAML([]byte(tc.yaml))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestEnvSecretsOverlay(t *testing.T) {
	t.Setenv("DOCANALYSIS_JWT_SECRET", "s3cret")
	t.Setenv("DOCANALYSIS_MINIO_ENDPOINT", "127.0.0.1:9000")
	cfg, err := FromYAML([]byte("object_store:\n  kind: minio\n"))
	if err != nil {
		t.Fatalf("from yaml: %v", err)
	}
	if cfg.Auth.JWTSecret != "s3cret" {
		t.Fatalf("jwt secret not overlaid: %q", cfg.Auth.JWTSecret)
	}
	if cfg.ObjectStore.Endpoint != "127.0.0.1:9000" {
		t.Fatalf("endpoint not overlaid: %q", cfg.ObjectStore.Endpoint)
	}
}

func TestLoadOptionalAndLoad(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("load optional: %v", err)
	}
	if cfg.ObjectStore.Kind != "filesystem" {
		t.Fatalf("expected defaults, got %+v", cfg.ObjectStore)
	}
	if _, err := Load(dir); err == nil || !strings.Contains(err.Error(), "docan config init") {
		t.Fatalf("expected missing config error, got %v", err)
	}
	if err := os.WriteFile(Path(dir), []byte(GenerateDefault("111122223333")), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err = Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Service.Account != "111122223333" {
		t.Fatalf("unexpected account %q", cfg.Service.Account)
	}
	if Path(dir) != filepath.Join(dir, "docanalysis.yml") {
		t.Fatalf("unexpected path %s", Path(dir))
	}
}
