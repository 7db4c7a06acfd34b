package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "DB_DRIVER", "DB_HOST", "DB_NAME", "CACHE_TTL", "REDIS_ADDR", "IS_PROD", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 60*time.Second, cfg.CacheTTL)
	assert.Empty(t, cfg.RedisAddr)
	assert.False(t, cfg.IsProd)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IS_PROD", "true")
	cfg := LoadConfig()
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.IsProd)
}

func TestLoadConfig_BadTTLFallsBack(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	assert.Equal(t, 60*time.Second, LoadConfig().CacheTTL)
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "mysql default port",
			cfg:  Config{DBDriver: DriverMySQL, DBUser: "u", DBPassword: "p", DBHost: "db", DBName: "shop"},
			want: "u:p@tcp(db:3306)/shop?parseTime=true",
		},
		{
			name: "postgres",
			cfg:  Config{DBDriver: DriverPostgres, DBUser: "u", DBPassword: "p", DBHost: "db", DBName: "shop", DBPort: "6543"},
			want: "host=db user=u password=p dbname=shop port=6543 sslmode=disable",
		},
		{
			name: "sqlite",
			cfg:  Config{DBDriver: DriverSQLite, DBPath: "/tmp/shop.db"},
			want: "/tmp/shop.db",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())
	(&Config{LogLevel: "debug", LogFormat: "json"}).ConfigureLogger()
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	(&Config{LogLevel: "nonsense"}).ConfigureLogger()
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
