package cmd

import (
	"errors"
	"log"

	"github.com/rentcheck/rentcheck/internal/engine"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "rentcheck"
)

type Config struct {
	Scoring engine.Config  `mapstructure:"scoring"`
	Renter  *RenterConfig  `mapstructure:"renter"`
	Listing *ListingConfig `mapstructure:"listing"`
	Server  *ServerConfig  `mapstructure:"server"`
}

// RenterConfig is the renter profile as written in the config file;
// documents are free-form strings normalized before evaluation.
type RenterConfig struct {
	Type           string   `mapstructure:"type"`
	MonthlyIncome  int      `mapstructure:"monthly-income"`
	MonthlyBudget  int      `mapstructure:"monthly-budget"`
	Documents      []string `mapstructure:"documents"`
	StudentBursary bool     `mapstructure:"student-bursary"`
}

type ListingConfig struct {
	Name              string   `mapstructure:"name"`
	Rent              int      `mapstructure:"rent"`
	Deposit           int      `mapstructure:"deposit"`
	ApplicationFee    int      `mapstructure:"application-fee"`
	RequiredDocuments []string `mapstructure:"required-documents"`
	AreaDemand        string   `mapstructure:"area-demand"`
}

type ServerConfig struct {
	Listen   string `mapstructure:"listen"`
	Database string `mapstructure:"database"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "rentcheck scores whether applying to a rental listing is worth the time and fee",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("server.database", "RENTCHECK_DB"); err != nil {
		log.Fatalf("binding RENTCHECK_DB environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is rentcheck.yaml in current directory)")
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
		viper.SetConfigName(app)
	}

	// The config file is optional: evaluate can run fully interactive and
	// serve falls back to defaults.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	// Scoring thresholds keep their documented defaults for any key the
	// config file does not override.
	config := &Config{
		Scoring: engine.DefaultConfig(),
		Server: &ServerConfig{
			Listen:   ":8080",
			Database: "rentcheck.db",
		},
	}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	return config, nil
}
