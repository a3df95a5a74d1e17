package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no credential for the hosted model is configured.
var ErrMissingAPIKey = errors.New("GROQ_API_KEY is not set")

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8000"
	AppEnv        string `mapstructure:"APP_ENV"`        // "production" enables gin release mode

	// LLM Configuration
	APIKey               string `mapstructure:"GROQ_API_KEY"`
	LLMBaseURL           string `mapstructure:"LLM_BASE_URL"` // OpenAI-compatible endpoint
	LLMModel             string `mapstructure:"LLM_MODEL"`
	DescriptionMaxTokens int    `mapstructure:"DESCRIPTION_MAX_TOKENS"`

	// Image handling
	EncodedImagePrefixLimit int  `mapstructure:"ENCODED_IMAGE_PREFIX_LIMIT"` // characters of base64 kept in text mode
	VisionInput             bool `mapstructure:"VISION_INPUT"`               // send the full image as an image_url part

	// Storage
	UploadDir    string `mapstructure:"UPLOAD_DIR"`
	GeneratedDir string `mapstructure:"GENERATED_DIR"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":             ":8000",
	"APP_ENV":                    "",
	"GROQ_API_KEY":               "",
	"LLM_BASE_URL":               "https://api.groq.com/openai/v1",
	"LLM_MODEL":                  "llama-3.3-70b-versatile",
	"DESCRIPTION_MAX_TOKENS":     500,
	"ENCODED_IMAGE_PREFIX_LIMIT": 10000,
	"VISION_INPUT":               false,
	"UPLOAD_DIR":                 "uploads",
	"GENERATED_DIR":              "generated_projects",
}

// LoadConfig reads configuration from file and environment variables.
// A missing config.yaml is not an error; a missing API key is.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Keys must be known to viper for AutomaticEnv values to reach Unmarshal.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	if config.EncodedImagePrefixLimit <= 0 && !config.VisionInput {
		log.Println("WARN: ENCODED_IMAGE_PREFIX_LIMIT is not positive, the full encoded image will be sent inline.")
	}

	return config, nil
}

// IsProduction reports whether the server runs in production mode.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
