package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StorageDriverJSON     = "json"
	StorageDriverPostgres = "postgres"

	defaultBaseURL = "http://localhost:8787"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Storage      Storage      `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	AdSystem     AdSystem     `mapstructure:",squash"`
	Reset        Reset        `mapstructure:",squash"`
	Mail         Mail         `mapstructure:",squash"`
	CSRF         CSRF         `mapstructure:",squash"`
	TokenCleanup TokenCleanup `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string `mapstructure:"host"`
	Port           string `mapstructure:"port"`
	CorsOrigin     string `mapstructure:"cors_origin"`
	BodyLimitBytes int64  `mapstructure:"body_limit_bytes"`
}

type Storage struct {
	Driver   string `mapstructure:"storage_driver"`
	JSONPath string `mapstructure:"json_db_path"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	SSLMode  string `mapstructure:"database_sslmode"`
}

type AdSystem struct {
	IPHashSalt string `mapstructure:"ip_hash_salt"`
	EventsCap  int    `mapstructure:"ad_events_cap"`
}

type Reset struct {
	TTLMinutes   int           `mapstructure:"reset_ttl_min"`
	Debug        bool          `mapstructure:"reset_debug"`
	FrontendURL  string        `mapstructure:"frontend_url"`
	AppURL       string        `mapstructure:"app_url"`
	RequestLimit int           `mapstructure:"reset_request_limit"`
	ConfirmLimit int           `mapstructure:"reset_confirm_limit"`
	LimitWindow  time.Duration `mapstructure:"reset_limit_window"`
}

// BaseURL é a origem usada nos links enviados por e-mail
func (r Reset) BaseURL() string {
	for _, candidate := range []string{r.FrontendURL, r.AppURL} {
		if candidate = strings.TrimSpace(candidate); candidate != "" {
			return strings.TrimRight(candidate, "/")
		}
	}
	return defaultBaseURL
}

func (r Reset) TTL() time.Duration {
	return time.Duration(r.TTLMinutes) * time.Minute
}

type Mail struct {
	SMTPHost   string `mapstructure:"smtp_host"`
	SMTPPort   int    `mapstructure:"smtp_port"`
	SMTPSecure bool   `mapstructure:"smtp_secure"`
	SMTPUser   string `mapstructure:"smtp_user"`
	SMTPPass   string `mapstructure:"smtp_pass"`
	From       string `mapstructure:"mail_from"`
	ContactTo  string `mapstructure:"contact_to"`
}

// Configured indica se há credenciais SMTP suficientes para enviar e-mails
func (m Mail) Configured() bool {
	return m.SMTPHost != "" && m.SMTPUser != "" && m.SMTPPass != ""
}

type CSRF struct {
	Enabled    bool   `mapstructure:"csrf_enabled"`
	Secret     string `mapstructure:"csrf_secret"`
	TTLMinutes int    `mapstructure:"csrf_ttl_min"`
}

func (c CSRF) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

type TokenCleanup struct {
	CronSchedule string `mapstructure:"token_cleanup_cron"`
	Enabled      bool   `mapstructure:"token_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "")
	viper.SetDefault("PORT", 8787)
	viper.SetDefault("CORS_ORIGIN", "*")
	viper.SetDefault("BODY_LIMIT_BYTES", 2<<20) // 2 MiB

	viper.SetDefault("STORAGE_DRIVER", StorageDriverJSON)
	viper.SetDefault("JSON_DB_PATH", "./data/db.json")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/mko")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("IP_HASH_SALT", "change_me")
	viper.SetDefault("AD_EVENTS_CAP", 50000)

	viper.SetDefault("RESET_TTL_MIN", 30)
	viper.SetDefault("RESET_DEBUG", false)
	viper.SetDefault("FRONTEND_URL", "")
	viper.SetDefault("APP_URL", "")
	viper.SetDefault("RESET_REQUEST_LIMIT", 5)
	viper.SetDefault("RESET_CONFIRM_LIMIT", 20)
	viper.SetDefault("RESET_LIMIT_WINDOW", "15m")

	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_SECURE", false)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASS", "")
	viper.SetDefault("MAIL_FROM", "no-reply@example.com")
	viper.SetDefault("CONTACT_TO", "")

	viper.SetDefault("CSRF_ENABLED", false)
	viper.SetDefault("CSRF_SECRET", "change_me_csrf")
	viper.SetDefault("CSRF_TTL_MIN", 120)

	viper.SetDefault("TOKEN_CLEANUP_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("TOKEN_CLEANUP_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		config.Database.SSLMode,
	)

	return config, nil
}

// Validate rejeita combinações que impediriam o servidor de iniciar
func (c *Config) Validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case StorageDriverJSON, StorageDriverPostgres:
	default:
		return fmt.Errorf("STORAGE_DRIVER desconhecido: %q", c.Storage.Driver)
	}

	if c.AdSystem.EventsCap <= 0 {
		return fmt.Errorf("AD_EVENTS_CAP deve ser positivo, recebido %d", c.AdSystem.EventsCap)
	}

	if c.Reset.TTLMinutes <= 0 {
		return fmt.Errorf("RESET_TTL_MIN deve ser positivo, recebido %d", c.Reset.TTLMinutes)
	}

	if c.CSRF.Enabled && c.CSRF.Secret == "" {
		return fmt.Errorf("CSRF_SECRET é obrigatório quando CSRF_ENABLED=true")
	}

	return nil
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
