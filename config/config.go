package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server        Server
	Database      Database
	Upload        Upload
	Azure         Azure
	AllowedOrigin string
}

type Server struct {
	Port string
}

type Database struct {
	Path string
}

type Upload struct {
	Dir string
	// Fallback audio source kept for parity with deployment scripts; the main
	// request flow never reads it.
	AudioFilePath string
}

type Azure struct {
	Endpoint string
	APIKey   string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "data/quiz.db")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("AUDIO_FILE_PATH", "uploads/sample.wav")
	viper.SetDefault("ALLOWED_ORIGIN", "http://localhost:5173")

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Path = viper.GetString("DATABASE_PATH")
	config.Upload.Dir = viper.GetString("UPLOAD_DIR")
	config.Upload.AudioFilePath = viper.GetString("AUDIO_FILE_PATH")
	config.AllowedOrigin = viper.GetString("ALLOWED_ORIGIN")

	config.Azure.Endpoint = viper.GetString("AZURE_OPENAI_ENDPOINT")
	config.Azure.APIKey = viper.GetString("AZURE_OPENAI_API_KEY")

	if config.Azure.Endpoint == "" || config.Azure.APIKey == "" {
		log.Warn().Msg("AZURE_OPENAI_ENDPOINT or AZURE_OPENAI_API_KEY is not set. Transcription will be non-functional.")
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("database", config.Database.Path).
		Str("uploadDir", config.Upload.Dir).
		Msg("Config loaded")
	return &config, nil
}
