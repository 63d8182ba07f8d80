package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	QR        QRConfig        `mapstructure:"qr"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	UI        UIConfig        `mapstructure:"ui"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LoggingConfig struct {
	Level    string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format   string `mapstructure:"format" validate:"omitempty,oneof=json text"`
	Output   string `mapstructure:"output" validate:"omitempty,oneof=stdout file"`
	FilePath string `mapstructure:"file_path" validate:"required_if=Output file"`
}

type QRConfig struct {
	Size          int    `mapstructure:"size" validate:"min=128,max=2048"`
	Filename      string `mapstructure:"filename" validate:"required,endswith=.png"`
	ElementID     string `mapstructure:"element_id" validate:"required"`
	VerifyExports bool   `mapstructure:"verify_exports"`
}

type CacheConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	MaxEntries    int           `mapstructure:"max_entries" validate:"min=0"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type RateLimitConfig struct {
	PreviewPerMinute int `mapstructure:"preview_per_minute" validate:"min=1"`
	ExportPerMinute  int `mapstructure:"export_per_minute" validate:"min=1"`
}

type UIConfig struct {
	Locale       string `mapstructure:"locale" validate:"oneof=ar en"`
	Company      string `mapstructure:"company"`
	ContactPhone string `mapstructure:"contact_phone" validate:"required,numeric"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")

	v.SetDefault("qr.size", 200)
	v.SetDefault("qr.filename", "qr-code.png")
	v.SetDefault("qr.element_id", "qr-code")
	v.SetDefault("qr.verify_exports", false)

	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("cache.max_entries", 1000)
	v.SetDefault("cache.sweep_interval", time.Minute)

	v.SetDefault("rate_limit.preview_per_minute", 600)
	v.SetDefault("rate_limit.export_per_minute", 60)

	v.SetDefault("ui.locale", "ar")
	v.SetDefault("ui.contact_phone", "201117552174")
}

// Load reads path (if it exists) on top of the built-in defaults. Values from
// a .env file in the working directory and from the environment override the
// file, e.g. SERVER_PORT=9000.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func Validate(cfg *Config) error {
	return validator.New().Struct(cfg)
}
