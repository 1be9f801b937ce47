package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SourceKindXLSX     = "xlsx"
	SourceKindPostgres = "postgres"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Source   Source   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Alerts   Alerts   `mapstructure:",squash"`
	Digest   Digest   `mapstructure:",squash"`
	Schema   Schema   `mapstructure:"-"`
}

type Server struct {
	Host string `mapstructure:"host" validate:"required"`
	Port string `mapstructure:"port" validate:"required,numeric"`
}

type App struct {
	LogLevel     string `mapstructure:"log_level"`
	SchemaLocale string `mapstructure:"schema_locale" validate:"oneof=en pt-BR"`
}

// Source indica de onde a planilha com as abas de entregas e vendas é lida
type Source struct {
	Kind           string `mapstructure:"source_kind" validate:"oneof=xlsx postgres"`
	Path           string `mapstructure:"source_path" validate:"required_if=Kind xlsx"`
	DeliveriesName string `mapstructure:"sheet_deliveries"`
	SalesName      string `mapstructure:"sheet_sales"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Alerts contém os limites usados para apontar entregas com oportunidade de otimização
type Alerts struct {
	MaxDistanceKm   float64 `mapstructure:"alert_max_distance_km" validate:"gt=0"`
	MinFreightCost  float64 `mapstructure:"alert_min_freight_cost" validate:"gte=0"`
	MaxDeliveryDays float64 `mapstructure:"alert_max_delivery_days" validate:"gte=0"`
}

type Digest struct {
	CronSchedule string `mapstructure:"digest_cron" validate:"required_if=Enabled true"`
	Enabled      bool   `mapstructure:"digest_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("SCHEMA_LOCALE", LocaleEnglish)

	viper.SetDefault("SOURCE_KIND", SourceKindXLSX)
	viper.SetDefault("SOURCE_PATH", "dados/base-de-dados.xlsx")
	viper.SetDefault("SHEET_DELIVERIES", "") // Vazio = nome do preset de idioma
	viper.SetDefault("SHEET_SALES", "")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Limites de alerta de otimização logística
	viper.SetDefault("ALERT_MAX_DISTANCE_KM", 600)
	viper.SetDefault("ALERT_MIN_FREIGHT_COST", 1000)
	viper.SetDefault("ALERT_MAX_DELIVERY_DAYS", 3)

	viper.SetDefault("DIGEST_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("DIGEST_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	schema, err := SchemaForLocale(config.App.SchemaLocale)
	if err != nil {
		return nil, err
	}
	config.Schema = schema.WithSheetNames(config.Source.DeliveriesName, config.Source.SalesName)

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("config: configuração inválida: %w", err)
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

// loadEnvFile carrega o primeiro .env encontrado no diretório atual ou acima dele
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
