package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	App    AppConfig
}

type ServerConfig struct {
	Host string
	Port string
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

type AppConfig struct {
	UploadDir     string
	MaxUploadSize int64
}

func Load() (*Config, error) {
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "imagecatalog")
	viper.SetDefault("MONGO_COLLECTION", "images")
	viper.SetDefault("APP_UPLOAD_DIR", "./uploads")
	viper.SetDefault("APP_MAX_UPLOAD_SIZE", 32*1024*1024) // 32MB

	viper.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("SERVER_HOST"),
			Port: viper.GetString("SERVER_PORT"),
		},
		Mongo: MongoConfig{
			URI:        viper.GetString("MONGO_URI"),
			Database:   viper.GetString("MONGO_DATABASE"),
			Collection: viper.GetString("MONGO_COLLECTION"),
		},
		App: AppConfig{
			UploadDir:     viper.GetString("APP_UPLOAD_DIR"),
			MaxUploadSize: viper.GetInt64("APP_MAX_UPLOAD_SIZE"),
		},
	}

	if err := os.MkdirAll(cfg.App.UploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", cfg.App.UploadDir, err)
	}

	return cfg, nil
}
