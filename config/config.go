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
	defaultMaxRequestBodySize = "2MB"

	defaultBcryptCost           = 12
	defaultAccessTokenTTL       = time.Hour
	defaultConfirmTokenTTL      = 24 * time.Hour
	defaultResetTokenTTL        = time.Hour
	defaultConfirmationCooldown = 15 * time.Minute
	defaultPasswordMinLength    = 6
	defaultPasswordMaxLength    = 72
	defaultMailMaxRetries       = 3
	defaultMailRetryBase        = 500 * time.Millisecond
	defaultAvatarMaxBytes       = 1 << 20
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

	// Migration configures golang-migrate; DatabaseURL is a pgx5:// URL.
	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Mail configuration for confirmation and reset emails
	Mailer *MailerConfig `json:"mailer" yaml:"mailer"`

	// PubSub configuration for auth event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Avatar configuration for profile picture storage
	Avatar *AvatarConfig `json:"avatar" yaml:"avatar"`
}

// SecretKeyConfig holds the HMAC secrets for session and confirmation tokens.
type SecretKeyConfig struct {
	Access  string `json:"access" yaml:"access"`
	Confirm string `json:"confirm" yaml:"confirm"`
}

type MigrationConfig struct {
	DatabaseURL string `json:"databaseUrl" yaml:"databaseUrl"`
	AutoApply   bool   `json:"autoApply" yaml:"autoApply"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost           int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL       time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	ConfirmTokenTTL      time.Duration `json:"confirmTokenTTL" yaml:"confirmTokenTTL"`
	ResetTokenTTL        time.Duration `json:"resetTokenTTL" yaml:"resetTokenTTL"`
	ConfirmationCooldown time.Duration `json:"confirmationCooldown" yaml:"confirmationCooldown"`

	// PublicBaseURL is the origin used to build links sent by email.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MailerConfig defines the outbound mail transport
type MailerConfig struct {
	// Provider type: "smtp" or "log"
	Provider string `json:"provider" yaml:"provider"`

	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`

	// Secure selects implicit TLS (SMTPS); otherwise STARTTLS is attempted.
	Secure bool `json:"secure" yaml:"secure"`

	From     string `json:"from" yaml:"from"`
	FromName string `json:"fromName" yaml:"fromName"`

	MaxRetries int           `json:"maxRetries" yaml:"maxRetries"`
	RetryBase  time.Duration `json:"retryBase" yaml:"retryBase"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// AvatarConfig defines where uploaded avatars are stored
type AvatarConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. mem://, file:///var/avatars or s3://bucket?region=eu-west-1
	BucketURL     string `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	MaxBytes      int64  `json:"maxBytes" yaml:"maxBytes"`
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

	ApplyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills optional sections and zero values.
func ApplyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Migration == nil {
		cfg.Migration = &MigrationConfig{}
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.ConfirmTokenTTL == 0 {
		cfg.Auth.ConfirmTokenTTL = defaultConfirmTokenTTL
	}
	if cfg.Auth.ResetTokenTTL == 0 {
		cfg.Auth.ResetTokenTTL = defaultResetTokenTTL
	}
	if cfg.Auth.ConfirmationCooldown == 0 {
		cfg.Auth.ConfirmationCooldown = defaultConfirmationCooldown
	}
	cfg.Auth.PublicBaseURL = strings.TrimRight(cfg.Auth.PublicBaseURL, "/")

	if cfg.PasswordStrength == nil {
		cfg.PasswordStrength = &PasswordStrengthConfig{}
	}
	if cfg.PasswordStrength.MinLength == 0 {
		cfg.PasswordStrength.MinLength = defaultPasswordMinLength
	}
	if cfg.PasswordStrength.MaxLength == 0 {
		cfg.PasswordStrength.MaxLength = defaultPasswordMaxLength
	}

	if cfg.Mailer == nil {
		cfg.Mailer = &MailerConfig{}
	}
	if cfg.Mailer.MaxRetries == 0 {
		cfg.Mailer.MaxRetries = defaultMailMaxRetries
	}
	if cfg.Mailer.RetryBase == 0 {
		cfg.Mailer.RetryBase = defaultMailRetryBase
	}

	if cfg.Avatar == nil {
		cfg.Avatar = &AvatarConfig{}
	}
	if cfg.Avatar.MaxBytes == 0 {
		cfg.Avatar.MaxBytes = defaultAvatarMaxBytes
	}
	cfg.Avatar.PublicBaseURL = strings.TrimRight(cfg.Avatar.PublicBaseURL, "/")
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
