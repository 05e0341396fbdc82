// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the menu-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in the root command's PersistentPreRunE.
var logger = zap.NewNop()

// rootCmd is the base command for the menu-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "menu-engine",
	Short: "Extract structured beverage details from scraped menu listings",
	Long: `menu-engine turns the raw beverage titles scraped from a restaurant menu
into structured records: brewery, style, origin, alcohol content, size,
price, vintage and serving method for beers; winery, style, year and
origin for wines.

Use detail to parse a single title, or parse to assemble a whole menu from
a listing file of section names and titles.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if viper.GetBool("verbose") {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./menu-engine.yaml or ~/.config/menu-engine/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log extraction failures at debug level")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	// Variables already in the environment win over .env.
	_ = godotenv.Load(".env")

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("menu-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "menu-engine"))
		}
	}

	viper.SetEnvPrefix("MENU_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
