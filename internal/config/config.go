package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Analysis   Analysis   `mapstructure:",squash"`
	Statements Statements `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Analysis controla os parâmetros da análise de receita.
type Analysis struct {
	Currency               string  `mapstructure:"analysis_currency"`
	RevenueThreshold       float64 `mapstructure:"analysis_revenue_threshold"`
	TopCountries           int     `mapstructure:"analysis_top_countries"`
	TopPlatformsPerCountry int     `mapstructure:"analysis_top_platforms_per_country"`
	MaxUploadSizeMB        int64   `mapstructure:"max_upload_size_mb"`
}

// Statements controla o ciclo de vida dos extratos em memória.
type Statements struct {
	TTLMinutes     int    `mapstructure:"statement_ttl_minutes"`
	CleanupCron    string `mapstructure:"statement_cleanup_cron"`
	CleanupEnabled bool   `mapstructure:"statement_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("ANALYSIS_CURRENCY", "EUR")
	viper.SetDefault("ANALYSIS_REVENUE_THRESHOLD", 100)        // Receita mínima em EUR para o top tracks
	viper.SetDefault("ANALYSIS_TOP_COUNTRIES", 30)             // Países mantidos no gráfico por país
	viper.SetDefault("ANALYSIS_TOP_PLATFORMS_PER_COUNTRY", 20) // Linhas de plataforma no hover por país
	viper.SetDefault("MAX_UPLOAD_SIZE_MB", 50)

	viper.SetDefault("STATEMENT_TTL_MINUTES", 60)              // Extratos expiram após 1 hora sem uso
	viper.SetDefault("STATEMENT_CLEANUP_CRON", "*/15 * * * *") // Limpeza a cada 15 minutos
	viper.SetDefault("STATEMENT_CLEANUP_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
