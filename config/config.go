package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"
	DefaultEnvPath    = ".env"

	ModePrint = "print"
	ModeTUI   = "tui"
)

var validUnits = []string{"metric", "imperial", "standard"}

// Config sections map to environment prefixes (WEATHER_, RENDER_, ...). Fields
// carry no envconfig name of their own, so only the prefixed variable is read.
type Config struct {
	App     AppConfig     `yaml:"app" envconfig:"APP"`
	Weather WeatherConfig `yaml:"weather" envconfig:"WEATHER"`
	Render  RenderConfig  `yaml:"render" envconfig:"RENDER"`
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Log     LogConfig     `yaml:"log" envconfig:"LOG"`
	Sentry  SentryConfig  `yaml:"sentry" envconfig:"SENTRY"`
}

type AppConfig struct {
	Name    string `yaml:"name" split_words:"true"`
	Version string `yaml:"version" split_words:"true"`
	Env     string `yaml:"env" split_words:"true"`
}

type WeatherConfig struct {
	City        string        `yaml:"city" split_words:"true"`
	Units       string        `yaml:"units" split_words:"true"`
	APIKey      string        `yaml:"-" split_words:"true"`
	ForecastURL string        `yaml:"forecast_url" split_words:"true"`
	CurrentURL  string        `yaml:"current_url" split_words:"true"`
	Timeout     time.Duration `yaml:"timeout" split_words:"true"`
	RateLimit   float64       `yaml:"rate_limit" split_words:"true"`
	RateBurst   int           `yaml:"rate_burst" split_words:"true"`
}

type RenderConfig struct {
	Mode       string `yaml:"mode" split_words:"true"`
	Width      int    `yaml:"width" split_words:"true"`
	SampleRows int    `yaml:"sample_rows" split_words:"true"`
}

type ServerConfig struct {
	Enabled bool   `yaml:"enabled" split_words:"true"`
	Port    string `yaml:"port" split_words:"true"`
}

type LogConfig struct {
	Level  string `yaml:"level" split_words:"true"`
	Output string `yaml:"output" split_words:"true"`
}

type SentryConfig struct {
	DSN string `yaml:"dsn" split_words:"true"`
}

// Provider loads and validates a Config.
type Provider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider layers defaults, a YAML file, a dotenv file and the
// process environment, each one overriding the previous.
type FileConfigProvider struct {
	path    string
	envPath string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path, envPath: DefaultEnvPath}
}

// WithEnvFile points the provider at another dotenv file.
func (p *FileConfigProvider) WithEnvFile(path string) *FileConfigProvider {
	p.envPath = path
	return p
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-dashboard",
			Version: "1.0.0",
			Env:     "development",
		},
		Weather: WeatherConfig{
			City:        "Mumbai",
			Units:       "metric",
			ForecastURL: "https://api.openweathermap.org/data/2.5/forecast",
			CurrentURL:  "https://api.openweathermap.org/data/2.5/weather",
			Timeout:     10 * time.Second,
			RateLimit:   1,
			RateBurst:   1,
		},
		Render: RenderConfig{
			Mode:       ModePrint,
			Width:      100,
			SampleRows: 5,
		},
		Server: ServerConfig{
			Port: "8080",
		},
		Log: LogConfig{
			Level:  "info",
			Output: "stderr",
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cfg := Default()

	if err := p.loadFromFile(cfg); err != nil {
		return nil, err
	}

	if err := godotenv.Load(p.envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s: %w", p.envPath, err)
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cfg, nil
}

// loadFromFile is a no-op when the file does not exist.
func (p *FileConfigProvider) loadFromFile(cfg *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cfg *Config) error {
	return cfg.Validate()
}

func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.App.Name) == "" {
		problems = append(problems, "app.name is required")
	}
	if strings.TrimSpace(c.Weather.City) == "" {
		problems = append(problems, "weather.city is required")
	}
	if !c.ValidUnits() {
		problems = append(problems, fmt.Sprintf("weather.units must be one of %s", strings.Join(validUnits, ", ")))
	}
	if strings.TrimSpace(c.Weather.APIKey) == "" {
		problems = append(problems, "weather.api_key is required (set WEATHER_API_KEY)")
	}
	if c.Weather.Timeout <= 0 {
		problems = append(problems, "weather.timeout must be positive")
	}
	if c.Weather.RateLimit < 0 {
		problems = append(problems, "weather.rate_limit must not be negative")
	}
	if c.Render.Mode != ModePrint && c.Render.Mode != ModeTUI {
		problems = append(problems, fmt.Sprintf("render.mode must be %s or %s", ModePrint, ModeTUI))
	}
	if c.Render.Width < 40 {
		problems = append(problems, "render.width must be at least 40")
	}
	if c.Server.Enabled && strings.TrimSpace(c.Server.Port) == "" {
		problems = append(problems, "server.port is required when the server is enabled")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return nil
}

func (c *Config) ValidUnits() bool {
	return IsValidUnits(c.Weather.Units)
}

func IsValidUnits(units string) bool {
	for _, u := range validUnits {
		if units == u {
			return true
		}
	}
	return false
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// NewConfigWithProvider loads through the provider and validates the result.
func NewConfigWithProvider(provider Provider) (*Config, error) {
	cfg, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfig loads the configuration without validating it, so that
// command-line flags can still be applied before Validate.
func NewConfig(path string) (*Config, error) {
	return NewFileConfigProvider(path).Load()
}
