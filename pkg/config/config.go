package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Gateway drivers select which remote data store implementation serves reads.
const (
	GatewayPostgres  = "postgres"
	GatewayPostgREST = "postgrest"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Gateway  GatewayConfig
	Supabase SupabaseConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Log      LogConfig
	Academy  AcademyConfig
	Calendar CalendarConfig
}

// GatewayConfig chooses the remote data store backend.
type GatewayConfig struct {
	Driver string `validate:"oneof=postgres postgrest"`
}

// SupabaseConfig carries the PostgREST endpoint and its anon key.
type SupabaseConfig struct {
	URL     string `validate:"omitempty,url"`
	AnonKey string
	Timeout time.Duration
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Issuer string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// AcademyConfig holds academy-wide settings such as the local timezone
// used to compute "today".
type AcademyConfig struct {
	Timezone string
}

// CalendarConfig governs the iCalendar feed cache and subscription links.
type CalendarConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
	LinkSecret   string
	LinkTTL      time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Gateway = GatewayConfig{
		Driver: strings.ToLower(strings.TrimSpace(v.GetString("GATEWAY_DRIVER"))),
	}

	cfg.Supabase = SupabaseConfig{
		URL:     strings.TrimRight(v.GetString("SUPABASE_URL"), "/"),
		AnonKey: v.GetString("SUPABASE_ANON_KEY"),
		Timeout: parseDuration(v.GetString("SUPABASE_TIMEOUT"), 10*time.Second),
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret: v.GetString("JWT_SECRET"),
		Issuer: v.GetString("JWT_ISSUER"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Academy = AcademyConfig{Timezone: strings.TrimSpace(v.GetString("ACADEMY_TIMEZONE"))}

	cfg.Calendar = CalendarConfig{
		CacheEnabled: v.GetBool("ENABLE_ICS_CACHE"),
		CacheTTL:     parseDuration(v.GetString("ICS_CACHE_TTL"), time.Minute),
		LinkSecret:   v.GetString("CALENDAR_LINK_SECRET"),
		LinkTTL:      parseDuration(v.GetString("CALENDAR_LINK_TTL"), 30*24*time.Hour),
	}
	if cfg.Calendar.LinkSecret == "" {
		cfg.Calendar.LinkSecret = cfg.JWT.Secret
	}

	return cfg
}

// Validate checks the settings the process cannot start without.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Gateway.Driver == GatewayPostgREST && (c.Supabase.URL == "" || c.Supabase.AnonKey == "") {
		return errors.New("invalid config: SUPABASE_URL and SUPABASE_ANON_KEY are required for the postgrest gateway")
	}
	if _, err := c.Academy.Location(); err != nil {
		return fmt.Errorf("invalid config: ACADEMY_TIMEZONE: %w", err)
	}
	return nil
}

// Location resolves the academy timezone, falling back to the server's local zone.
func (c AcademyConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("GATEWAY_DRIVER", GatewayPostgREST)
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_ANON_KEY", "")
	v.SetDefault("SUPABASE_TIMEOUT", "10s")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "academy")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_ISSUER", "")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ACADEMY_TIMEZONE", "")

	v.SetDefault("ENABLE_ICS_CACHE", false)
	v.SetDefault("ICS_CACHE_TTL", "1m")
	v.SetDefault("CALENDAR_LINK_SECRET", "")
	v.SetDefault("CALENDAR_LINK_TTL", "720h")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
