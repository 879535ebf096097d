package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-results/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	ReportMarkdown = "markdown"
	ReportJSON     = "json"
)

// Config stores runtime configuration for one statistics run.
type Config struct {
	AppEnv         string `validate:"oneof=dev stage prod"`
	ServiceName    string `validate:"required"`
	ServiceVersion string `validate:"required"`

	DataDir      string `validate:"required,dir"`
	LogDir       string
	LogLevelName string `validate:"oneof=DEBUG INFO WARNING ERROR CRITICAL"`
	LogLevel     logging.Level
	LogFormat    string `validate:"oneof=console json"`
	ReportFormat string `validate:"oneof=markdown json"`

	UptraceEnabled         bool
	UptraceDSN             string `validate:"required_if=UptraceEnabled true"`
	PyroscopeEnabled       bool
	PyroscopeServerAddress string `validate:"required_if=PyroscopeEnabled true"`
	PyroscopeAppName       string
	PyroscopeUploadRate    time.Duration `validate:"gt=0"`
}

// Load parses command line arguments (without the program name) and the
// environment. LOG_LEVEL overrides --log-level when set.
func Load(args []string) (Config, error) {
	return load(args, io.Discard)
}

// LoadWithUsage is Load with flag usage and parse errors written to output.
func LoadWithUsage(args []string, output io.Writer) (Config, error) {
	return load(args, output)
}

func load(args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("footballstats", flag.ContinueOnError)
	fs.SetOutput(output)

	var cfg Config
	fs.StringVar(&cfg.DataDir, "data-dir", "", "Directory containing results.csv, goalscorers.csv and former_names.csv (required)")
	fs.StringVar(&cfg.LogDir, "log-dir", "logs", "Directory for log files")
	fs.StringVar(&cfg.LogLevelName, "log-level", "INFO", "Logging level: DEBUG, INFO, WARNING, ERROR, CRITICAL")
	fs.StringVar(&cfg.LogFormat, "log-format", logging.FormatConsole, "Log encoding: console | json")
	fs.StringVar(&cfg.ReportFormat, "format", ReportMarkdown, "Report format: markdown | json")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg.LogLevelName = strings.ToUpper(strings.TrimSpace(cfg.LogLevelName))
	if envLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL")); envLevel != "" {
		// unlike the flag, an unknown environment value is not fatal
		cfg.LogLevelName = canonicalLevelName(envLevel)
	}
	cfg.LogLevel = logging.ParseLevel(cfg.LogLevelName)
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.ReportFormat = strings.ToLower(strings.TrimSpace(cfg.ReportFormat))

	if cfg.DataDir != "" {
		abs, err := filepath.Abs(cfg.DataDir)
		if err != nil {
			return Config{}, fmt.Errorf("resolve --data-dir: %w", err)
		}
		cfg.DataDir = abs
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}
	cfg.AppEnv = appEnv
	cfg.ServiceName = getEnv("APP_SERVICE_NAME", "footballstats")
	cfg.ServiceVersion = getEnv("APP_SERVICE_VERSION", "dev")

	cfg.UptraceEnabled, err = strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))

	cfg.PyroscopeEnabled, err = strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	cfg.PyroscopeUploadRate, err = time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate reports the first invalid field with its flag or variable name.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	first := fieldErrs[0]
	name := settingName(first.Field())
	switch first.Tag() {
	case "required":
		return fmt.Errorf("%s is required", name)
	case "required_if":
		return fmt.Errorf("%s is required when %s", name, first.Param())
	case "dir":
		return fmt.Errorf("%s %q is not an existing directory", name, first.Value())
	case "oneof":
		return fmt.Errorf("invalid %s %q: valid values are %s", name, first.Value(), strings.Join(strings.Fields(first.Param()), ", "))
	case "gt":
		return fmt.Errorf("%s must be > %s", name, first.Param())
	default:
		return fmt.Errorf("invalid %s: %s", name, first.Error())
	}
}

func canonicalLevelName(v string) string {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "DEBUG":
		return "DEBUG"
	case "WARN", "WARNING":
		return "WARNING"
	case "ERROR":
		return "ERROR"
	case "CRITICAL", "FATAL":
		return "CRITICAL"
	default:
		return "INFO"
	}
}

func settingName(field string) string {
	switch field {
	case "DataDir":
		return "--data-dir"
	case "LogLevelName":
		return "log level"
	case "LogFormat":
		return "--log-format"
	case "ReportFormat":
		return "--format"
	case "AppEnv":
		return "APP_ENV"
	case "UptraceDSN":
		return "UPTRACE_DSN"
	case "PyroscopeServerAddress":
		return "PYROSCOPE_SERVER_ADDRESS"
	case "PyroscopeUploadRate":
		return "PYROSCOPE_UPLOAD_RATE"
	default:
		return field
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
