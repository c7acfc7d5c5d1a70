package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"

	CheckpointCommand  = "command"
	CheckpointSession  = "session"
	CheckpointMutation = "mutation"
)

type Config struct {
	App      AppConfig
	Log      LogConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type LogConfig struct {
	Level string
}

type StorageConfig struct {
	Backend       string
	Dir           string
	SkillsPath    string
	ProjectsPath  string
	EmployeesPath string
	Checkpoint    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host      string
	Port      string
	Password  string
	DB        int
	KeyPrefix string
}

type AuthConfig struct {
	TokenSecret string
	TokenTTL    time.Duration
	Issuer      string
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidValue       = errors.New("invalid configuration value")
)

func Load() (Config, error) {
	return LoadFile("")
}

// LoadFile reads defaults, then the YAML file at path (or an optional
// config.yaml in the usual places when path is empty), then the
// environment. APP_NAME overrides app.name and so on.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	str := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg := Config{}
	cfg.App = AppConfig{
		AppName:     str("app.name"),
		Environment: str("app.env"),
		HTTPPort:    str("http.port"),
	}
	cfg.Log = LogConfig{Level: str("log.level")}
	cfg.Storage = StorageConfig{
		Backend:       strings.ToLower(str("storage.backend")),
		Dir:           str("storage.dir"),
		SkillsPath:    str("storage.skills_path"),
		ProjectsPath:  str("storage.projects_path"),
		EmployeesPath: str("storage.employees_path"),
		Checkpoint:    strings.ToLower(str("storage.checkpoint")),
	}
	cfg.Database = DatabaseConfig{
		DBHost:                str("postgres.host"),
		DBPort:                str("postgres.port"),
		DBName:                str("postgres.db"),
		DBUser:                str("postgres.user"),
		DBPassword:            v.GetString("postgres.password"),
		DBSSLMode:             str("postgres.ssl_mode"),
		ConnectTimeout:        v.GetDuration("postgres.connect_timeout"),
		PoolMaxConns:          v.GetInt32("postgres.max_conns"),
		PoolMinConns:          v.GetInt32("postgres.min_conns"),
		PoolMaxConnLifetime:   v.GetDuration("postgres.max_conn_lifetime"),
		PoolMaxConnIdleTime:   v.GetDuration("postgres.max_conn_idle_time"),
		PoolHealthCheckPeriod: v.GetDuration("postgres.health_check_period"),
	}
	cfg.Redis = RedisConfig{
		Host:      str("redis.host"),
		Port:      str("redis.port"),
		Password:  v.GetString("redis.password"),
		DB:        v.GetInt("redis.db"),
		KeyPrefix: v.GetString("redis.key_prefix"),
	}
	cfg.Auth = AuthConfig{
		TokenSecret: v.GetString("auth.token_secret"),
		TokenTTL:    v.GetDuration("auth.token_ttl"),
		Issuer:      str("auth.issuer"),
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "skill-manager")
	v.SetDefault("app.env", "development")
	v.SetDefault("http.port", "8080")

	v.SetDefault("log.level", "info")

	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.dir", ".")
	v.SetDefault("storage.skills_path", "")
	v.SetDefault("storage.projects_path", "")
	v.SetDefault("storage.employees_path", "")
	v.SetDefault("storage.checkpoint", CheckpointMutation)

	v.SetDefault("postgres.host", "")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.db", "")
	v.SetDefault("postgres.user", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.connect_timeout", 5*time.Second)
	v.SetDefault("postgres.max_conns", 4)
	v.SetDefault("postgres.min_conns", 0)
	v.SetDefault("postgres.max_conn_lifetime", time.Hour)
	v.SetDefault("postgres.max_conn_idle_time", 30*time.Minute)
	v.SetDefault("postgres.health_check_period", time.Minute)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "skill-manager:")

	v.SetDefault("auth.token_secret", "")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("auth.issuer", "skill-manager")
}

func validate(cfg Config) error {
	switch cfg.Storage.Backend {
	case BackendFile, BackendPostgres, BackendRedis:
	default:
		return fmt.Errorf("%w: storage.backend=%q", errInvalidValue, cfg.Storage.Backend)
	}
	switch cfg.Storage.Checkpoint {
	case CheckpointCommand, CheckpointSession, CheckpointMutation:
	default:
		return fmt.Errorf("%w: storage.checkpoint=%q", errInvalidValue, cfg.Storage.Checkpoint)
	}

	var missing []string
	req := func(key, val string) {
		if val == "" {
			missing = append(missing, key)
		}
	}
	req("APP_NAME", cfg.App.AppName)
	req("HTTP_PORT", cfg.App.HTTPPort)
	switch cfg.Storage.Backend {
	case BackendPostgres:
		req("POSTGRES_HOST", cfg.Database.DBHost)
		req("POSTGRES_DB", cfg.Database.DBName)
		req("POSTGRES_USER", cfg.Database.DBUser)
	case BackendRedis:
		req("REDIS_HOST", cfg.Redis.Host)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	if cfg.IsProduction() && cfg.Storage.Backend == BackendFile && cfg.Storage.Dir == "" {
		return fmt.Errorf("%w: storage.dir must be set in production", errInvalidValue)
	}
	return nil
}
