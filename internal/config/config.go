package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config representa a configuração completa da aplicação.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Storage   StorageConfig
	Geocoding GeocodingConfig
	Logging   LoggingConfig
}

// ServerConfig contém configurações do servidor HTTP.
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig contém configurações do banco de dados.
type DatabaseConfig struct {
	Driver   string // postgres, mysql
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// SessionConfig contém configurações da sessão de autenticação.
type SessionConfig struct {
	Secret    string
	MaxAge    int
	RedisHost string
	RedisPort string
}

// StorageConfig contém configurações do armazenamento de arquivos.
type StorageConfig struct {
	UploadsPath string
}

// GeocodingConfig contém configurações do serviço de geocodificação.
type GeocodingConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// LoggingConfig contém configurações de logging.
type LoggingConfig struct {
	Production bool
}

// Load lê a configuração de variáveis de ambiente e, opcionalmente, de
// um arquivo config.yaml no diretório corrente.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:    v.GetString("server.port"),
			GinMode: v.GetString("server.ginmode"),
		},
		Database: DatabaseConfig{
			Driver:   v.GetString("database.driver"),
			Host:     v.GetString("database.host"),
			Port:     v.GetString("database.port"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			Name:     v.GetString("database.name"),
			SSLMode:  v.GetString("database.sslmode"),
		},
		Session: SessionConfig{
			Secret:    v.GetString("session.secret"),
			MaxAge:    v.GetInt("session.maxage"),
			RedisHost: v.GetString("session.redishost"),
			RedisPort: v.GetString("session.redisport"),
		},
		Storage: StorageConfig{
			UploadsPath: v.GetString("storage.uploadspath"),
		},
		Geocoding: GeocodingConfig{
			APIKey:  v.GetString("geocoding.apikey"),
			BaseURL: v.GetString("geocoding.baseurl"),
			Timeout: v.GetDuration("geocoding.timeout"),
		},
		Logging: LoggingConfig{
			Production: v.GetBool("logging.production"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.ginmode", "debug")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "falaoperador")
	v.SetDefault("database.password", "falaoperador")
	v.SetDefault("database.name", "fala_operador")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("session.secret", "default-secret-key-change-me")
	v.SetDefault("session.maxage", 86400*7)
	v.SetDefault("session.redishost", "")
	v.SetDefault("session.redisport", "6379")

	v.SetDefault("storage.uploadspath", "uploads")

	v.SetDefault("geocoding.apikey", "")
	v.SetDefault("geocoding.baseurl", "https://maps.googleapis.com/maps/api/geocode/json")
	v.SetDefault("geocoding.timeout", 5*time.Second)

	v.SetDefault("logging.production", false)
}
