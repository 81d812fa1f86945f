package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultPageSize           = 50
	defaultMaxPageSize        = 200
	defaultBroadcastPageSize  = 20
	defaultMaxContentLength   = 4000
	defaultExchange           = "restops.topics"
	defaultMetricsPath        = "/metrics"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	// Messaging configuration for pagination and content limits
	Messaging *MessagingConfig `json:"messaging" yaml:"messaging"`

	// WebSocket configuration for the live transport
	WebSocket *WebSocketConfig `json:"websocket" yaml:"websocket"`

	// RabbitMQ configuration for cross-node topic fan-out
	RabbitMQ *RabbitMQConfig `json:"rabbitmq" yaml:"rabbitmq"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// SecretKeyConfig holds token verification secrets.
type SecretKeyConfig struct {
	Access string `json:"access" yaml:"access"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MessagingConfig defines pagination and validation limits for messages
type MessagingConfig struct {
	DefaultPageSize   int `json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize       int `json:"maxPageSize" yaml:"maxPageSize"`
	BroadcastPageSize int `json:"broadcastPageSize" yaml:"broadcastPageSize"`
	MaxContentLength  int `json:"maxContentLength" yaml:"maxContentLength"`
}

// WebSocketConfig defines connection buffers and keepalive timing
type WebSocketConfig struct {
	ReadBufferSize  int           `json:"readBufferSize" yaml:"readBufferSize"`
	WriteBufferSize int           `json:"writeBufferSize" yaml:"writeBufferSize"`
	SendBufferSize  int           `json:"sendBufferSize" yaml:"sendBufferSize"`
	WriteWait       time.Duration `json:"writeWait" yaml:"writeWait"`
	PongWait        time.Duration `json:"pongWait" yaml:"pongWait"`
	PingPeriod      time.Duration `json:"pingPeriod" yaml:"pingPeriod"`
	MaxMessageSize  int64         `json:"maxMessageSize" yaml:"maxMessageSize"`
	AllowedOrigins  []string      `json:"allowedOrigins" yaml:"allowedOrigins"`
}

// RabbitMQConfig defines the broker used to share topic events between nodes
type RabbitMQConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	URL      string `json:"url" yaml:"url"`
	Exchange string `json:"exchange" yaml:"exchange"`
}

// MetricsConfig defines the Prometheus scrape endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Messaging == nil {
		c.Messaging = &MessagingConfig{}
	}
	if c.Messaging.DefaultPageSize <= 0 {
		c.Messaging.DefaultPageSize = defaultPageSize
	}
	if c.Messaging.MaxPageSize < c.Messaging.DefaultPageSize {
		c.Messaging.MaxPageSize = max(defaultMaxPageSize, c.Messaging.DefaultPageSize)
	}
	if c.Messaging.BroadcastPageSize <= 0 {
		c.Messaging.BroadcastPageSize = defaultBroadcastPageSize
	}
	if c.Messaging.MaxContentLength <= 0 {
		c.Messaging.MaxContentLength = defaultMaxContentLength
	}

	if c.WebSocket == nil {
		c.WebSocket = &WebSocketConfig{}
	}
	c.WebSocket.applyDefaults()

	if c.RabbitMQ == nil {
		c.RabbitMQ = &RabbitMQConfig{}
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = defaultExchange
	}

	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{}
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = defaultMetricsPath
	}
}

func (w *WebSocketConfig) applyDefaults() {
	if w.ReadBufferSize <= 0 {
		w.ReadBufferSize = 1024
	}
	if w.WriteBufferSize <= 0 {
		w.WriteBufferSize = 1024
	}
	if w.SendBufferSize <= 0 {
		w.SendBufferSize = 256
	}
	if w.WriteWait <= 0 {
		w.WriteWait = 10 * time.Second
	}
	if w.PongWait <= 0 {
		w.PongWait = 60 * time.Second
	}
	// Pings must go out before the peer's read deadline expires.
	if w.PingPeriod <= 0 || w.PingPeriod >= w.PongWait {
		w.PingPeriod = w.PongWait * 9 / 10
	}
	if w.MaxMessageSize <= 0 {
		w.MaxMessageSize = 64 * 1024
	}
}

// Defaults returns a config with every optional section filled in.
func Defaults() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
