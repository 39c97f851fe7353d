package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port             string
	DataPath         string
	StoreBackend     string
	MongoURI         string
	MongoDB          string
	MongoCollection  string
	AssetDir         string
	PlaceholderImage string
	CacheTTL         time.Duration
	WatchData        bool
	LogLevel         string
	LogFormat        string
}

const (
	BackendFile  = "file"
	BackendMongo = "mongo"
)

// LoadConfig carga .env (si existe), config.yaml (si existe) y variables de entorno
func LoadConfig() *Config {
	cfg, err := Load("")
	if err != nil {
		log.Println("⚠️ Error loading config:", err)
	}
	return cfg
}

// Load es como LoadConfig pero con un archivo de configuración explícito.
// Si configFile no existe devuelve error junto con la configuración por defecto.
func Load(configFile string) (*Config, error) {
	// Solo cargar .env en desarrollo local
	// En producción esto se ignora automáticamente
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	var readErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && configFile == "":
			// sin archivo: defaults + entorno
		case configFile != "" && errors.Is(err, os.ErrNotExist):
			readErr = fmt.Errorf("config file %s not found: %w", configFile, err)
		default:
			readErr = fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v), readErr
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("data_path", "data.json")
	v.SetDefault("store_backend", BackendFile)
	v.SetDefault("mongo_uri", "")
	v.SetDefault("mongo_db", "productCatalog")
	v.SetDefault("mongo_collection", "site_content")
	v.SetDefault("asset_dir", "images")
	v.SetDefault("placeholder_image", "https://via.placeholder.com/150x150.png?text=Sin+Imagen")
	v.SetDefault("cache_ttl", 2*time.Minute)
	v.SetDefault("watch_data", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Port:             v.GetString("port"),
		DataPath:         v.GetString("data_path"),
		StoreBackend:     v.GetString("store_backend"),
		MongoURI:         v.GetString("mongo_uri"),
		MongoDB:          v.GetString("mongo_db"),
		MongoCollection:  v.GetString("mongo_collection"),
		AssetDir:         v.GetString("asset_dir"),
		PlaceholderImage: v.GetString("placeholder_image"),
		CacheTTL:         v.GetDuration("cache_ttl"),
		WatchData:        v.GetBool("watch_data"),
		LogLevel:         v.GetString("log_level"),
		LogFormat:        v.GetString("log_format"),
	}
}
