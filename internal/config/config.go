package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "github.com/fr4nk3nst1ner/jobanalysis/internal/errors"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/loader"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
)

// AppConfig represents the application configuration
type AppConfig struct {
	Display DisplayConfig `yaml:"display"`
	Web     WebConfig     `yaml:"web"`
	Logging LoggingConfig `yaml:"logging"`
	Loader  LoaderConfig  `yaml:"loader"`
}

type DisplayConfig struct {
	Table       bool            `yaml:"table"`
	Banner      bool            `yaml:"banner"`
	DefaultSort models.SortSpec `yaml:"default_sort"`
	TitleWidth  int             `yaml:"title_width"`
}

type WebConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type LoaderConfig struct {
	MaxFileSize int64 `yaml:"max_file_size"`
	Progress    bool  `yaml:"progress"`
}

// Default returns the configuration used when no config file is present
func Default() *AppConfig {
	return &AppConfig{
		Display: DisplayConfig{
			Banner: true,
			DefaultSort: models.SortSpec{
				Title:  models.Ascending,
				Posted: models.Descending,
			},
			TitleWidth: 40,
		},
		Web: WebConfig{
			Host:         "127.0.0.1",
			Port:         8080,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Loader: LoaderConfig{
			MaxFileSize: loader.DefaultMaxFileSize,
		},
	}
}

// LoadYAMLConfig reads a yaml file into the value built by fn. A missing file or an empty path
// yields fn's defaults; a file that exists but cannot be read or parsed is an error.
func LoadYAMLConfig[T any](configPath string, fn func() *T) (*T, error) {
	cfg := fn()

	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if stderrors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("config %s is not valid yaml", configPath), err)
	}
	return cfg, nil
}

// Load reads .env (if present), the yaml config at path, and applies environment overrides
func Load(path string) (*AppConfig, error) {
	// .env is optional
	_ = godotenv.Load()

	if path == "" {
		path = getEnvString("JOBANALYSIS_CONFIG", "config.yaml")
	}

	cfg, err := LoadYAMLConfig(path, Default)
	if err != nil {
		return nil, err
	}

	cfg.Web.Host = getEnvString("JOBANALYSIS_HOST", cfg.Web.Host)
	cfg.Web.Port = getEnvInt("JOBANALYSIS_PORT", cfg.Web.Port)
	cfg.Logging.Level = getEnvString("JOBANALYSIS_LOG_LEVEL", cfg.Logging.Level)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later, far from the config file
func (c *AppConfig) Validate() error {
	var problems []string

	if _, err := models.ParseDirection(string(c.Display.DefaultSort.Title)); err != nil {
		problems = append(problems, "display.default_sort.title must be asc or desc")
	}
	if _, err := models.ParseDirection(string(c.Display.DefaultSort.Posted)); err != nil {
		problems = append(problems, "display.default_sort.posted must be asc or desc")
	}
	if c.Web.Port <= 0 || c.Web.Port > 65535 {
		problems = append(problems, fmt.Sprintf("web.port %d is out of range", c.Web.Port))
	}
	if c.Loader.MaxFileSize <= 0 {
		problems = append(problems, "loader.max_file_size must be positive")
	}

	if len(problems) > 0 {
		return apperrors.InvalidInput("invalid configuration: "+strings.Join(problems, "; "), nil)
	}
	return nil
}

// Addr returns the listen address of the web viewer
func (w WebConfig) Addr() string {
	return fmt.Sprintf("%s:%d", w.Host, w.Port)
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
