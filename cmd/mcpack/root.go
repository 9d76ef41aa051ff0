package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ruminaider/mcpack/internal/commands"
	"github.com/ruminaider/mcpack/internal/config"
	"github.com/ruminaider/mcpack/internal/paths"
)

var (
	cfgFile string
	verbose bool
)

func addGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "settings file (default is ~/.mcpack/settings.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	flags.StringP("instance", "i", ".", "instance directory")
	flags.String("meta-dir", "", "metadata directory (default is ~/.mcpack/meta)")

	_ = viper.BindPFlag("instance", flags.Lookup("instance"))
	_ = viper.BindPFlag("meta_dir", flags.Lookup("meta-dir"))
}

// initConfig loads settings from the settings file, MCPACK_* environment
// variables and flags, in increasing priority.
func initConfig() {
	defaults := config.DefaultSettings()
	viper.SetDefault("save_delay", defaults.SaveDelay)
	viper.SetDefault("log_level", defaults.LogLevel)
	viper.SetDefault("meta_dir", paths.DefaultMetaDir())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(paths.ToolDir())
		viper.SetConfigType("yaml")
		viper.SetConfigName("settings")
	}

	viper.SetEnvPrefix("mcpack")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

// currentSettings returns the effective settings.
func currentSettings() (config.Settings, error) {
	s := config.Settings{
		SaveDelay: viper.GetDuration("save_delay"),
		MetaDir:   viper.GetString("meta_dir"),
		LogLevel:  viper.GetString("log_level"),
	}
	if err := s.Validate(); err != nil {
		return config.Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

func setupLogging() {
	level := slog.LevelInfo
	if s, err := currentSettings(); err == nil {
		level = s.SlogLevel()
	}
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// commandEnv builds the environment every pack command runs in.
func commandEnv() (commands.Env, error) {
	s, err := currentSettings()
	if err != nil {
		return commands.Env{}, err
	}
	dir, err := filepath.Abs(viper.GetString("instance"))
	if err != nil {
		return commands.Env{}, fmt.Errorf("resolving instance directory: %w", err)
	}
	return commands.Env{
		InstanceDir: dir,
		MetaDir:     s.MetaDir,
		SaveDelay:   s.SaveDelay,
		Logger:      slog.Default(),
	}, nil
}
