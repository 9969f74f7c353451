package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config models docanalysis.yml.
type Config struct {
	Service struct {
		Region       string `yaml:"region"`
		Account      string `yaml:"account"`
		ModelVersion string `yaml:"model_version"`
	} `yaml:"service"`
	Server struct {
		Addr     string `yaml:"addr"`
		BasePath string `yaml:"base_path"`
	} `yaml:"server"`
	Limits       Limits       `yaml:"limits"`
	ObjectStore  ObjectStore  `yaml:"object_store"`
	Auth         Auth         `yaml:"auth"`
	Notification Notification `yaml:"notifications"`
	HumanLoop    struct {
		ConfidenceThreshold float32 `yaml:"confidence_threshold"`
		MaxActiveLoops      int     `yaml:"max_active_loops"`
	} `yaml:"human_loop"`
	Lending struct {
		PageTypes []LendingPageType `yaml:"page_types"`
	} `yaml:"lending"`
	Adapters struct {
		MaxAdapters           int `yaml:"max_adapters"`
		MaxVersionsPerAdapter int `yaml:"max_versions_per_adapter"`
	} `yaml:"adapters"`
}

type Limits struct {
	SyncMaxBytes       int64   `yaml:"sync_max_bytes"`
	AsyncMaxBytes      int64   `yaml:"async_max_bytes"`
	AsyncMaxPages      int     `yaml:"async_max_pages"`
	DefaultPageSize    int32   `yaml:"default_page_size"`
	MaxPageSize        int32   `yaml:"max_page_size"`
	SyncRate           float64 `yaml:"sync_rate"`
	SyncBurst          int     `yaml:"sync_burst"`
	MaxConcurrentJobs  int     `yaml:"max_concurrent_jobs"`
	RunnerPollInterval string  `yaml:"runner_poll_interval"`
}

// PollInterval returns the runner poll interval, defaulting to one second.
func (l Limits) PollInterval() time.Duration {
	d, err := time.ParseDuration(l.RunnerPollInterval)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

type ObjectStore struct {
	Kind      string `yaml:"kind"`
	Root      string `yaml:"root"`
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Secure    bool   `yaml:"secure"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

type Auth struct {
	JWTSecret string          `yaml:"jwt_secret"`
	Anonymous string          `yaml:"anonymous_role"`
	Roles     map[string]Role `yaml:"roles"`
}

type Role struct {
	Description string   `yaml:"description"`
	Permissions []string `yaml:"permissions"`
}

type Notification struct {
	Topics map[string]Topic `yaml:"topics"`
}

type Topic struct {
	URL     string   `yaml:"url"`
	Secret  string   `yaml:"secret"`
	Timeout string   `yaml:"timeout"`
	Events  []string `yaml:"events"`
}

type LendingPageType struct {
	Type     string   `yaml:"type"`
	Keywords []string `yaml:"keywords"`
}

// secrets are overlaid from the environment after the YAML is read.
type secrets struct {
	JWTSecret      string `env:"JWT_SECRET"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioEndpoint  string `env:"MINIO_ENDPOINT"`
}

// Load reads and validates config from workspace.
func Load(workspace string) (*Config, error) {
	path := Path(workspace)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config %s not found; create one with docan config init", path)
		}
		return nil, err
	}
	return FromYAML(data)
}

// Validate ensures the config meets required structure.
func (c *Config) Validate() error {
	if c.Service.Region == "" {
		return fmt.Errorf("config.service.region is required")
	}
	if c.Service.Account == "" {
		return fmt.Errorf("config.service.account is required")
	}
	if c.Limits.SyncMaxBytes <= 0 || c.Limits.AsyncMaxBytes <= 0 {
		return fmt.Errorf("config.limits byte caps must be positive")
	}
	if c.Limits.SyncMaxBytes > c.Limits.AsyncMaxBytes {
		return fmt.Errorf("config.limits.sync_max_bytes exceeds async_max_bytes")
	}
	if c.Limits.DefaultPageSize <= 0 || c.Limits.MaxPageSize < c.Limits.DefaultPageSize {
		return fmt.Errorf("config.limits page sizes must satisfy 0 < default_page_size <= max_page_size")
	}
	if c.Limits.MaxConcurrentJobs <= 0 {
		return fmt.Errorf("config.limits.max_concurrent_jobs must be positive")
	}
	if c.Limits.RunnerPollInterval != "" {
		if _, err := time.ParseDuration(c.Limits.RunnerPollInterval); err != nil {
			return fmt.Errorf("config.limits.runner_poll_interval: %w", err)
		}
	}
	switch c.ObjectStore.Kind {
	case "filesystem":
	case "minio":
		if c.ObjectStore.Endpoint == "" {
			return fmt.Errorf("config.object_store.endpoint is required for minio")
		}
	default:
		return fmt.Errorf("config.object_store.kind must be filesystem or minio")
	}
	if len(c.Auth.Roles) > 0 {
		if _, ok := c.Auth.Roles["admin"]; !ok {
			return fmt.Errorf("config.auth.roles must include admin")
		}
		for roleID, role := range c.Auth.Roles {
			if roleID == "" {
				return fmt.Errorf("config.auth.roles contains empty role id")
			}
			for _, perm := range role.Permissions {
				if perm == "" {
					return fmt.Errorf("role %s has empty permission id", roleID)
				}
			}
		}
	}
	if c.Auth.Anonymous != "" {
		if _, ok := c.Auth.Roles[c.Auth.Anonymous]; !ok {
			return fmt.Errorf("config.auth.anonymous_role references unknown role %s", c.Auth.Anonymous)
		}
	}
	for arn, topic := range c.Notification.Topics {
		if !strings.HasPrefix(arn, "arn:") {
			return fmt.Errorf("notification topic %q is not an arn", arn)
		}
		if topic.URL == "" {
			return fmt.Errorf("notification topic %s has no url", arn)
		}
		if topic.Timeout != "" {
			if _, err := time.ParseDuration(topic.Timeout); err != nil {
				return fmt.Errorf("notification topic %s timeout: %w", arn, err)
			}
		}
	}
	if c.HumanLoop.ConfidenceThreshold < 0 || c.HumanLoop.ConfidenceThreshold > 100 {
		return fmt.Errorf("config.human_loop.confidence_threshold must be within 0..100")
	}
	for _, pt := range c.Lending.PageTypes {
		if pt.Type == "" || len(pt.Keywords) == 0 {
			return fmt.Errorf("lending page types need a type and keywords")
		}
	}
	if c.Adapters.MaxAdapters <= 0 || c.Adapters.MaxVersionsPerAdapter <= 0 {
		return fmt.Errorf("config.adapters quotas must be positive")
	}
	return nil
}

// Permissions returns the union of permissions granted by roles.
func (c *Config) Permissions(roles []string) map[string]bool {
	perms := map[string]bool{}
	for _, r := range roles {
		for _, p := range c.Auth.Roles[r].Permissions {
			perms[p] = true
		}
	}
	return perms
}

// Path returns the config file path for a workspace.
func Path(workspace string) string {
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, "docanalysis.yml")
}

// GenerateDefault returns default config YAML.
func GenerateDefault(account string) string {
	return fmt.Sprintf(defaultTemplate, account)
}

// LoadOptional returns the default config if the file does not exist.
func LoadOptional(workspace string) (*Config, error) {
	path := Path(workspace)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			return cfg, cfg.applyEnv()
		}
		return nil, err
	}
	return FromYAML(data)
}

// Default returns the default Config.
func Default() *Config {
	var cfg Config
	_ = yaml.NewDecoder(bytes.NewBufferString(GenerateDefault("000000000000"))).Decode(&cfg)
	return &cfg
}

// FromYAML parses config from raw YAML bytes, overlays environment secrets
// and validates the result.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config yaml: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromFile reads YAML config from the given path.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(data)
}

func (c *Config) applyEnv() error {
	s, err := env.ParseAsWithOptions[secrets](env.Options{Prefix: "DOCANALYSIS_"})
	if err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	if s.JWTSecret != "" {
		c.Auth.JWTSecret = s.JWTSecret
	}
	if s.MinioAccessKey != "" {
		c.ObjectStore.AccessKey = s.MinioAccessKey
	}
	if s.MinioSecretKey != "" {
		c.ObjectStore.SecretKey = s.MinioSecretKey
	}
	if s.MinioEndpoint != "" {
		c.ObjectStore.Endpoint = s.MinioEndpoint
	}
	return nil
}

const defaultTemplate = `service:
  region: local-1
  account: "%s"
  model_version: "1.0"

server:
  addr: 127.0.0.1:8720
  base_path: ""

limits:
  sync_max_bytes: 10485760
  async_max_bytes: 524288000
  async_max_pages: 3000
  default_page_size: 1000
  max_page_size: 1000
  sync_rate: 10
  sync_burst: 20
  max_concurrent_jobs: 100
  runner_poll_interval: 500ms

object_store:
  kind: filesystem
  root: objects
  region: us-east-1
  secure: false

auth:
  anonymous_role: admin
  roles:
    admin:
      description: "Full access"
      permissions:
        - document.analyze
        - job.start
        - job.read
        - adapter.read
        - adapter.write
        - tag.read
        - tag.write
        - apikey.manage
    analyst:
      description: "Analyze documents and read jobs"
      permissions:
        - document.analyze
        - job.start
        - job.read
        - adapter.read
        - tag.read
    reader:
      description: "Read-only access"
      permissions:
        - job.read
        - adapter.read
        - tag.read

notifications:
  topics: {}

human_loop:
  confidence_threshold: 50
  max_active_loops: 10

lending:
  page_types:
    - type: PAYSLIPS
      keywords: [payslip, "pay stub", "earnings statement", "net pay"]
    - type: BANK_STATEMENT
      keywords: ["bank statement", "account summary", "statement period"]
    - type: W2
      keywords: ["form w-2", "wage and tax statement"]
    - type: 1099_INT
      keywords: ["1099-int", "interest income"]
    - type: IDENTITY_DOCUMENT
      keywords: ["driver license", "passport", "date of birth"]
    - type: CHECKS
      keywords: ["pay to the order of"]
    - type: INVOICES
      keywords: [invoice, "amount due"]
    - type: RECEIPTS
      keywords: [receipt, "thank you for your purchase"]

adapters:
  max_adapters: 100
  max_versions_per_adapter: 20
`
