package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.True(t, cfg.App.Seed)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, 10, cfg.Backoffice.LowStockThreshold)
}

func TestFromViper_LeeValoresDeTexto(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "Memory")
	v.Set("HTTP_PORT", "9090")
	v.Set("APP_SEED", "false")
	v.Set("KAFKA_BROKERS", "k1:9092, k2:9092,")
	v.Set("REDIS_ADDR", "localhost:6379")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.DB.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.App.Seed)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Redis.Enabled())
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "sqlite")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_PuertoInvalido(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "no-es-numero")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_TamanoDePaginaNoPositivo(t *testing.T) {
	v := viper.New()
	v.Set("BACKOFFICE_PAGE_SIZE", "0")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Backoffice.PageSize)
}

func TestDSN_EscapaContrasena(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "shop", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/shop?sslmode=disable", c.DSN())
}
