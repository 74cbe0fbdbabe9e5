package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Billing     Billing     `mapstructure:",squash"`
	CatalogSync CatalogSync `mapstructure:",squash"`
	Proposal    Proposal    `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Billing struct {
	URL            string `mapstructure:"billing_url"`
	APIKey         string `mapstructure:"billing_api_key"`
	TimeoutSeconds int    `mapstructure:"billing_timeout_seconds"`
}

type CatalogSync struct {
	CronSchedule string `mapstructure:"catalog_sync_cron"`
	Enabled      bool   `mapstructure:"catalog_sync_enabled"`
}

type Proposal struct {
	// DefaultSummary is rendered when neither the proposal's custom intro
	// nor the template supplies an executive summary.
	DefaultSummary string `mapstructure:"proposal_default_summary"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/leadmetrik")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("BILLING_URL", "https://billing.leadmetrik.io/api/v1")
	viper.SetDefault("BILLING_API_KEY", "your_api_key") // ONLY LOCAL
	viper.SetDefault("BILLING_TIMEOUT_SECONDS", 45)

	// Catalog cache refresh. The catalog is read-only from the engine's
	// perspective, so a periodic snapshot refresh is enough.
	viper.SetDefault("CATALOG_SYNC_CRON", "*/15 * * * *")
	viper.SetDefault("CATALOG_SYNC_ENABLED", true)

	viper.SetDefault("PROPOSAL_DEFAULT_SUMMARY",
		"We put together a custom growth plan for your business based on what is working in your industry right now.")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads a .env file from the usual local-dev locations.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not resolve the current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Info("No .env file found, relying on process environment")
}
