package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de persistencia soportados.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	DB         DBConfig
	JWT        JWTConfig
	HTTP       HTTPConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Backoffice BackofficeConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	Seed     bool // cargar datos de ejemplo si la base está vacía
}

// DBConfig configuración de persistencia.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	Driver      string // postgres | memory
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisConfig caché de listas de lookup. Addr vacío la desactiva.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Enabled indica si hay Redis configurado.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// KafkaConfig eventos de cambio. Sin brokers se desactiva.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled indica si hay brokers configurados.
func (c KafkaConfig) Enabled() bool { return len(c.Brokers) > 0 }

// BackofficeConfig parámetros del cliente de back-office (CLI).
type BackofficeConfig struct {
	APIURL            string
	Token             string
	PageSize          int
	LowStockThreshold int
	DashboardLimit    int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env o config.env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_DRIVER, JWT_SECRET, REDIS_ADDR, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // opcional

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	for key, def := range map[string]any{
		"APP_ENV":                        "development",
		"APP_NAME":                       "ecommerce-backoffice",
		"LOG_LEVEL":                      "info",
		"APP_SEED":                       true,
		"DB_DRIVER":                      DriverPostgres,
		"DB_HOST":                        "localhost",
		"DB_PORT":                        5432,
		"DB_USER":                        "postgres",
		"DB_NAME":                        "ecommerce",
		"DB_SSLMODE":                     "disable",
		"DB_MAX_CONNS":                   25,
		"JWT_EXPIRATION_MINUTES":         60,
		"JWT_ISSUER":                     "ecommerce-backoffice",
		"HTTP_HOST":                      "0.0.0.0",
		"HTTP_PORT":                      8080,
		"REDIS_TTL_SECONDS":              300,
		"KAFKA_TOPIC":                    "backoffice.entity-changes",
		"BACKOFFICE_API_URL":             "http://localhost:8080",
		"BACKOFFICE_PAGE_SIZE":           50,
		"BACKOFFICE_LOW_STOCK_THRESHOLD": 10,
		"BACKOFFICE_DASHBOARD_LIMIT":     1000,
	} {
		v.SetDefault(key, def)
	}
}

func fromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			LogLevel: v.GetString("LOG_LEVEL"),
			Seed:     v.GetBool("APP_SEED"),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetInt("JWT_EXPIRATION_MINUTES"),
			Issuer:     v.GetString("JWT_ISSUER"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      time.Duration(v.GetInt("REDIS_TTL_SECONDS")) * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers: splitCSV(v.GetString("KAFKA_BROKERS")),
			Topic:   v.GetString("KAFKA_TOPIC"),
		},
		Backoffice: BackofficeConfig{
			APIURL:            v.GetString("BACKOFFICE_API_URL"),
			Token:             v.GetString("BACKOFFICE_TOKEN"),
			PageSize:          v.GetInt("BACKOFFICE_PAGE_SIZE"),
			LowStockThreshold: v.GetInt("BACKOFFICE_LOW_STOCK_THRESHOLD"),
			DashboardLimit:    v.GetInt("BACKOFFICE_DASHBOARD_LIMIT"),
		},
	}

	if cfg.DB.Driver != DriverPostgres && cfg.DB.Driver != DriverMemory {
		return nil, fmt.Errorf("DB_DRIVER desconocido: %q", cfg.DB.Driver)
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("HTTP_PORT inválido: %d", cfg.HTTP.Port)
	}
	if cfg.DB.MaxConns <= 0 {
		cfg.DB.MaxConns = 25
	}
	if cfg.Backoffice.PageSize <= 0 {
		cfg.Backoffice.PageSize = 50
	}
	return cfg, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
