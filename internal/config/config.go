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
	App                      App                      `mapstructure:",squash"`
	Server                   Server                   `mapstructure:",squash"`
	Database                 Database                 `mapstructure:",squash"`
	Auth                     Auth                     `mapstructure:",squash"`
	Cors                     Cors                     `mapstructure:",squash"`
	Targets                  Targets                  `mapstructure:",squash"`
	Ledger                   Ledger                   `mapstructure:",squash"`
	TargetReconciliationSync TargetReconciliationSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Targets struct {
	// BatchAtomic executa lotes numa única transação
	BatchAtomic bool `mapstructure:"targets_batch_atomic"`
}

type Ledger struct {
	URL         string        `mapstructure:"ledger_url"`
	AccessToken string        `mapstructure:"ledger_access_token"`
	Timeout     time.Duration `mapstructure:"ledger_timeout"`
}

type TargetReconciliationSync struct {
	CronSchedule        string `mapstructure:"target_reconciliation_sync_cron"`
	MonthLookBack       int    `mapstructure:"target_reconciliation_sync_month_lookback"`
	RequestDelaySeconds int    `mapstructure:"target_reconciliation_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"target_reconciliation_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/booker_targets?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("TARGETS_BATCH_ATOMIC", true)

	viper.SetDefault("LEDGER_URL", "http://localhost:8081/api/v1")
	viper.SetDefault("LEDGER_ACCESS_TOKEN", "your_access_token")
	viper.SetDefault("LEDGER_TIMEOUT", "30s")

	// Defaults para reconciliação das metas com o ledger de vendas
	viper.SetDefault("TARGET_RECONCILIATION_SYNC_CRON", "0 */2 * * *")      // A cada 2 horas
	viper.SetDefault("TARGET_RECONCILIATION_SYNC_MONTH_LOOKBACK", 1)        // mês atual + 1 anterior
	viper.SetDefault("TARGET_RECONCILIATION_SYNC_REQUEST_DELAY_SECONDS", 1) // 1 segundo entre períodos
	viper.SetDefault("TARGET_RECONCILIATION_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
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

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.TargetReconciliationSync.MonthLookBack < 0 {
		config.TargetReconciliationSync.MonthLookBack = 0
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
