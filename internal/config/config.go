package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Gemini           Gemini           `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Chat             Chat             `mapstructure:",squash"`
	Forecasting      Forecasting      `mapstructure:",squash"`
	ModelRetrainSync ModelRetrainSync `mapstructure:",squash"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Environment string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN            string `mapstructure:"-"`
	Driver         string `mapstructure:"database_driver"`
	Password       string `mapstructure:"database_password"`
	URL            string `mapstructure:"database_url"`
	User           string `mapstructure:"database_user"`
	AutoMigrate    bool   `mapstructure:"database_auto_migrate"`
	SeedSampleData bool   `mapstructure:"seed_sample_data"`

	// Meses de vendas sintéticas gerados junto com o catálogo de exemplo
	SeedSalesMonths int `mapstructure:"seed_sales_months"`
}

type Gemini struct {
	BaseURL string        `mapstructure:"gemini_base_url"`
	APIKey  string        `mapstructure:"gemini_api_key"`
	Model   string        `mapstructure:"gemini_model"`
	Timeout time.Duration `mapstructure:"gemini_timeout"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	TokenTTL      time.Duration `mapstructure:"auth_token_ttl"`
	AdminEmail    string        `mapstructure:"admin_email"`
	AdminPassword string        `mapstructure:"admin_password"`
}

// Enabled indica se as rotas exigem token JWT
func (a Auth) Enabled() bool {
	return a.Secret != ""
}

type Chat struct {
	RateLimit float64 `mapstructure:"chat_rate_limit"`
	RateBurst int     `mapstructure:"chat_rate_burst"`
}

type Forecasting struct {
	ExplainerMode     string        `mapstructure:"explainer_mode"`
	EnsembleCacheSize int           `mapstructure:"ensemble_cache_size"`
	EnsembleCacheTTL  time.Duration `mapstructure:"ensemble_cache_ttl"`
}

type ModelRetrainSync struct {
	CronSchedule string `mapstructure:"model_retrain_sync_cron"`
	Enabled      bool   `mapstructure:"model_retrain_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/smartphone_sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)
	viper.SetDefault("SEED_SAMPLE_DATA", true) // Carrega o catálogo de exemplo quando vazio
	viper.SetDefault("SEED_SALES_MONTHS", 12)

	viper.SetDefault("AUTH_SECRET", "") // Vazio desabilita a autenticação (apenas local)
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("ADMIN_EMAIL", "admin@sales.local")
	viper.SetDefault("ADMIN_PASSWORD", "")

	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-pro")
	viper.SetDefault("GEMINI_TIMEOUT", "60s")

	viper.SetDefault("CHAT_RATE_LIMIT", 1) // requisições por segundo
	viper.SetDefault("CHAT_RATE_BURST", 5)

	viper.SetDefault("EXPLAINER_MODE", "shapley") // shapley | fallback
	viper.SetDefault("ENSEMBLE_CACHE_SIZE", 8)
	viper.SetDefault("ENSEMBLE_CACHE_TTL", "30m")

	// Retreino diário do catálogo às 2h da manhã
	viper.SetDefault("MODEL_RETRAIN_SYNC_CRON", "0 2 * * *")
	viper.SetDefault("MODEL_RETRAIN_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Forecasting.EnsembleCacheSize <= 0 {
		config.Forecasting.EnsembleCacheSize = 1
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
