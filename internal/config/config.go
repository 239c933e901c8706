package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rengifo/usermanager/internal/security/secretbox"
)

// Drivers soportados.
const (
	DriverConsole  = "console"
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSMTP     = "smtp"
)

// ErrInvalid se retorna cuando la configuración final no es utilizable.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	App struct {
		// dev | prod
		Env  string `yaml:"env"`
		Name string `yaml:"name"`
	} `yaml:"app"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Validation struct {
		MinPasswordLength int `yaml:"min_password_length"`
	} `yaml:"validation"`

	Storage struct {
		// console | memory | redis | postgres
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
		Memory struct {
			DefaultTTL string `yaml:"default_ttl"`
		} `yaml:"memory"`
		Redis struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"storage"`

	Notify struct {
		// console | smtp
		Driver  string `yaml:"driver"`
		Subject string `yaml:"subject"`
	} `yaml:"notify"`

	SMTP struct {
		Host               string `yaml:"host"`
		Port               int    `yaml:"port"`
		Username           string `yaml:"username"`
		Password           string `yaml:"password"`
		From               string `yaml:"from"`
		TLS                string `yaml:"tls"`                  // auto | starttls | ssl | none
		InsecureSkipVerify bool   `yaml:"insecure_skip_verify"` // sólo dev
	} `yaml:"smtp"`

	Server struct {
		Addr string `yaml:"addr"`
		// Si no está vacío, POST /v1/users exige Bearer firmado con este secreto.
		AdminSecret string `yaml:"admin_secret"`
		AdminTTL    string `yaml:"admin_ttl"`
	} `yaml:"server"`

	Security struct {
		// base64/hex de 32 bytes; descifra valores "enc:..." (ver secretbox).
		MasterKey string `yaml:"master_key"`
	} `yaml:"security"`
}

// Load lee .env (si existe), el YAML en path (si path no está vacío) y
// aplica overrides de entorno USERMANAGER_*. Sin archivo se usan defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(".env")

	var c Config
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	c.applyEnv()
	c.applyDefaults()
	if err := c.revealSecrets(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default retorna la configuración por defecto (consola, sin archivo ni env).
func Default() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.App.Name == "" {
		c.App.Name = "usermanager"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Validation.MinPasswordLength == 0 {
		c.Validation.MinPasswordLength = 8
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverConsole
	}
	if c.Storage.Memory.DefaultTTL == "" {
		c.Storage.Memory.DefaultTTL = "0s"
	}
	if c.Storage.Redis.Addr == "" {
		c.Storage.Redis.Addr = "localhost:6379"
	}
	if c.Storage.Redis.Prefix == "" {
		c.Storage.Redis.Prefix = "usermanager"
	}
	if c.Notify.Driver == "" {
		c.Notify.Driver = DriverConsole
	}
	if c.Notify.Subject == "" {
		c.Notify.Subject = "Welcome!"
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
	if c.SMTP.TLS == "" {
		c.SMTP.TLS = "auto"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.AdminTTL == "" {
		c.Server.AdminTTL = "1h"
	}
}

func (c *Config) applyEnv() {
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	str("USERMANAGER_ENV", &c.App.Env)
	str("USERMANAGER_LOG_LEVEL", &c.Log.Level)
	num("USERMANAGER_MIN_PASSWORD_LENGTH", &c.Validation.MinPasswordLength)
	str("USERMANAGER_STORAGE_DRIVER", &c.Storage.Driver)
	str("USERMANAGER_STORAGE_DSN", &c.Storage.DSN)
	str("USERMANAGER_REDIS_ADDR", &c.Storage.Redis.Addr)
	str("USERMANAGER_REDIS_PASSWORD", &c.Storage.Redis.Password)
	num("USERMANAGER_REDIS_DB", &c.Storage.Redis.DB)
	str("USERMANAGER_NOTIFY_DRIVER", &c.Notify.Driver)
	str("SMTP_HOST", &c.SMTP.Host)
	num("SMTP_PORT", &c.SMTP.Port)
	str("SMTP_USERNAME", &c.SMTP.Username)
	str("SMTP_PASSWORD", &c.SMTP.Password)
	str("SMTP_FROM", &c.SMTP.From)
	str("SMTP_TLS", &c.SMTP.TLS)
	str("USERMANAGER_ADDR", &c.Server.Addr)
	str("USERMANAGER_ADMIN_SECRET", &c.Server.AdminSecret)
	str("USERMANAGER_ADMIN_TTL", &c.Server.AdminTTL)
	str("USERMANAGER_MASTER_KEY", &c.Security.MasterKey)
}

// revealSecrets descifra los campos con prefijo secretbox.Prefix.
func (c *Config) revealSecrets() error {
	fields := []*string{&c.Storage.DSN, &c.Storage.Redis.Password, &c.SMTP.Password, &c.Server.AdminSecret}

	var key []byte
	for _, f := range fields {
		if !strings.HasPrefix(*f, secretbox.Prefix) {
			continue
		}
		if key == nil {
			k, err := secretbox.ParseKey(c.Security.MasterKey)
			if err != nil {
				return fmt.Errorf("%w: security.master_key: %v", ErrInvalid, err)
			}
			key = k
		}
		v, err := secretbox.Reveal(key, *f)
		if err != nil {
			return fmt.Errorf("%w: decrypt secret: %v", ErrInvalid, err)
		}
		*f = v
	}
	return nil
}

// Validate chequea combinaciones de drivers y valores.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverConsole, DriverMemory, DriverRedis:
	case DriverPostgres:
		if c.Storage.DSN == "" {
			return fmt.Errorf("%w: storage.dsn is required for postgres", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalid, c.Storage.Driver)
	}

	switch c.Notify.Driver {
	case DriverConsole:
	case DriverSMTP:
		if c.SMTP.Host == "" || c.SMTP.From == "" {
			return fmt.Errorf("%w: smtp.host and smtp.from are required for smtp notify", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown notify.driver %q", ErrInvalid, c.Notify.Driver)
	}

	if _, err := time.ParseDuration(c.Server.AdminTTL); err != nil {
		return fmt.Errorf("%w: server.admin_ttl: %v", ErrInvalid, err)
	}
	if _, err := time.ParseDuration(c.Storage.Memory.DefaultTTL); err != nil {
		return fmt.Errorf("%w: storage.memory.default_ttl: %v", ErrInvalid, err)
	}

	if c.Validation.MinPasswordLength < 0 {
		return fmt.Errorf("%w: validation.min_password_length must be >= 0", ErrInvalid)
	}
	return nil
}
