package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"react_scaffold_server/config"
	"react_scaffold_server/internal/ai"
	"react_scaffold_server/internal/scaffold"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "react-scaffold",
	Short: "Turn UI screenshots into scaffolded React projects.",
	Long: `react-scaffold describes an uploaded image with a hosted language model and
generates a React project (webpack, Babel, an App component and a set of
components) from that description.

Without a subcommand it serves the HTTP API.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config-dir", ".", "directory searched for config.yaml")
	rootCmd.AddCommand(serveCmd, generateCmd, listCmd)
}

func main() {
	loadDotEnv()

	if err := rootCmd.Execute(); err != nil {
		log.Printf("ERROR: %v", err)
		os.Exit(1)
	}
}

// loadDotEnv must run before viper reads the environment.
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
		return
	}
	log.Println("Info: Loaded environment variables from .env file.")
}

// loadDependencies reads configuration and builds the project store and the generator on top of it.
func loadDependencies() (config.Config, *ai.Generator, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("cannot load config: %w", err)
	}

	store, err := scaffold.NewOSStore(cfg.GeneratedDir)
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, ai.NewGenerator(cfg, store), nil
}
