package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	MarketMind         MarketMind         `mapstructure:",squash"`
	Workspace          Workspace          `mapstructure:",squash"`
	BackendHealthProbe BackendHealthProbe `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// MarketMind é a configuração do backend de IA consumido pelo gateway
type MarketMind struct {
	BaseURL        string        `mapstructure:"marketmind_base_url"`
	Timeout        time.Duration `mapstructure:"marketmind_timeout"`
	CompetitorPath string        `mapstructure:"marketmind_competitor_path"`
}

type Workspace struct {
	MaxSessions    int           `mapstructure:"workspace_max_sessions"`
	SessionIdleTTL time.Duration `mapstructure:"workspace_session_idle_ttl"`
	SweepCron      string        `mapstructure:"workspace_sweep_cron"`
}

type BackendHealthProbe struct {
	CronSchedule string `mapstructure:"backend_health_probe_cron"`
	Enabled      bool   `mapstructure:"backend_health_probe_enabled"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8080")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

	v.SetDefault("MARKETMIND_BASE_URL", "http://localhost:8000")
	v.SetDefault("MARKETMIND_TIMEOUT", "60s")
	v.SetDefault("MARKETMIND_COMPETITOR_PATH", "/competitor_analysis")

	v.SetDefault("WORKSPACE_MAX_SESSIONS", 1000)
	v.SetDefault("WORKSPACE_SESSION_IDLE_TTL", "2h")
	v.SetDefault("WORKSPACE_SWEEP_CRON", "*/15 * * * *")

	v.SetDefault("BACKEND_HEALTH_PROBE_CRON", "*/5 * * * *") // a cada 5 minutos
	v.SetDefault("BACKEND_HEALTH_PROBE_ENABLED", false)

	v.SetDefault("LOG_LEVEL", "info")
}

// NewConfig carrega .env (se existir), variáveis de ambiente e valores padrão
func NewConfig() (*Config, error) {
	loadEnvFile()
	return Load(viper.New())
}

// Load monta a configuração a partir de uma instância do Viper
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	// AutomaticEnv só resolve chaves conhecidas, então cada chave com default
	// precisa ser lida explicitamente antes do Unmarshal.
	settings := make(map[string]interface{})
	for _, key := range v.AllKeys() {
		settings[strings.ToLower(key)] = v.Get(key)
	}

	config := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           config,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, errors.Wrap(err, "config: building decoder")
	}
	if err := decoder.Decode(settings); err != nil {
		return nil, errors.Wrap(err, "config: decoding settings")
	}

	config.MarketMind.BaseURL = strings.TrimRight(config.MarketMind.BaseURL, "/")
	if config.MarketMind.BaseURL == "" {
		return nil, errors.New("config: MARKETMIND_BASE_URL must not be empty")
	}
	if config.MarketMind.Timeout <= 0 {
		return nil, errors.Errorf("config: MARKETMIND_TIMEOUT must be positive, got %s", config.MarketMind.Timeout)
	}
	if !strings.HasPrefix(config.MarketMind.CompetitorPath, "/") {
		config.MarketMind.CompetitorPath = "/" + config.MarketMind.CompetitorPath
	}

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found, using environment and defaults")
}
