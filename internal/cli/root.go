// Package cli implements the resume-analyzer command line interface. The CLI
// is a thin caller of the analysis pipeline: it reads plain text, runs one
// analysis and prints the result as JSON.
package cli

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const app = "resume-analyzer"

// Config is the optional file-based CLI configuration.
type Config struct {
	// Positions points at a positions YAML file overriding the embedded
	// defaults.
	Positions string    `mapstructure:"positions"`
	AI        *AIConfig `mapstructure:"ai"`
}

// AIConfig enables the LLM-backed similarity engine.
type AIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Gemini  *GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig configures the Gemini backend.
type GeminiConfig struct {
	APIKey string `mapstructure:"api-key"`
	Model  string `mapstructure:"model"`
}

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-analyzer scores plain-text resumes against target job positions",
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is "+app+".yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
		viper.SetConfigType("yaml")
	}

	// The config file is optional unless one was named explicitly.
	if err := viper.ReadInConfig(); err != nil {
		if cfgFile == "" {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}
	return config, nil
}
