package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"colonoscopy-prep/internal/dates"
	"colonoscopy-prep/internal/domain/schedule"
)

type Config struct {
	Port      string `mapstructure:"PORT"`
	Env       string `mapstructure:"ENV"`
	AppName   string `mapstructure:"APP_NAME"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Almacenamiento: DB_DSN > REDIS_URL > memoria.
	DBDSN       string `mapstructure:"DB_DSN"`
	RedisURL    string `mapstructure:"REDIS_URL"`
	RedisPrefix string `mapstructure:"REDIS_PREFIX"`

	TimeZone        string `mapstructure:"TIMEZONE"`
	DefaultLanguage string `mapstructure:"DEFAULT_LANGUAGE"`
	DefaultExamTime string `mapstructure:"DEFAULT_EXAM_TIME"`
	PublicBaseURL   string `mapstructure:"PUBLIC_BASE_URL"`

	ContentBaseURL string        `mapstructure:"CONTENT_BASE_URL"`
	ContentAPIKey  string        `mapstructure:"CONTENT_API_KEY"`
	ContentTimeout time.Duration `mapstructure:"CONTENT_TIMEOUT"`
}

var keys = []string{
	"PORT", "ENV", "APP_NAME", "LOG_LEVEL", "LOG_FORMAT",
	"DB_DSN", "REDIS_URL", "REDIS_PREFIX",
	"TIMEZONE", "DEFAULT_LANGUAGE", "DEFAULT_EXAM_TIME", "PUBLIC_BASE_URL",
	"CONTENT_BASE_URL", "CONTENT_API_KEY", "CONTENT_TIMEOUT",
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("APP_NAME", "colonoscopy-prep")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("REDIS_PREFIX", "prepara")
	v.SetDefault("TIMEZONE", defaultTimeZone)
	v.SetDefault("DEFAULT_LANGUAGE", string(schedule.DefaultLanguage))
	v.SetDefault("DEFAULT_EXAM_TIME", dates.DefaultClock)
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080/")
	v.SetDefault("CONTENT_TIMEOUT", "10s")

	// Bind explícito para que Unmarshal vea las variables de entorno
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env opcional
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate se llama antes de arrancar (serve y CLI).
func (c *Config) Validate() error {
	if _, ok := schedule.ParseLanguage(c.DefaultLanguage); !ok {
		return fmt.Errorf("DEFAULT_LANGUAGE must be one of pt, en, got %q", c.DefaultLanguage)
	}
	if _, _, err := dates.ParseClock(c.DefaultExamTime); err != nil {
		return fmt.Errorf("DEFAULT_EXAM_TIME must be HH:MM: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := url.Parse(c.PublicBaseURL); err != nil {
		return fmt.Errorf("PUBLIC_BASE_URL: %w", err)
	}
	if c.ContentBaseURL != "" && !strings.HasPrefix(c.ContentBaseURL, "http") {
		return fmt.Errorf("CONTENT_BASE_URL must be an http(s) url, got %q", c.ContentBaseURL)
	}
	return nil
}

const defaultTimeZone = "Europe/Lisbon"

// Location resuelve TIMEZONE (vacío => Europe/Lisbon).
func (c *Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.TimeZone)
	if name == "" {
		name = defaultTimeZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

// CalendarZone es el nombre IANA que se manda como ctz al calendario externo.
// Vacío, "Local" o una zona inválida no sirven ahí: se usa Europe/Lisbon.
func (c *Config) CalendarZone() string {
	name := strings.TrimSpace(c.TimeZone)
	switch name {
	case "", "Local":
		return defaultTimeZone
	}
	if _, err := time.LoadLocation(name); err != nil {
		return defaultTimeZone
	}
	return name
}

// Language es DEFAULT_LANGUAGE ya tipado (pt si no es válido).
func (c *Config) Language() schedule.Language {
	return schedule.Language(c.DefaultLanguage).OrDefault()
}

// Parser arma el parser de fechas con la zona y la hora por defecto configuradas.
func (c *Config) Parser() (dates.Parser, error) {
	loc, err := c.Location()
	if err != nil {
		return dates.Parser{}, err
	}
	return dates.NewParser(loc, c.DefaultExamTime), nil
}
