package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ruminaider/mcpack/internal/config"
	"github.com/ruminaider/mcpack/internal/fsutil"
	"github.com/ruminaider/mcpack/internal/paths"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mcpack settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := currentSettings()
		if err != nil {
			return err
		}
		data, err := config.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshaling settings: %w", err)
		}
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Printf("# %s\n", used)
		}
		fmt.Print(string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = paths.SettingsFile()
		}
		if fsutil.Exists(path) {
			return fmt.Errorf("%s already exists", path)
		}
		s := config.DefaultSettings()
		s.MetaDir = paths.DefaultMetaDir()
		data, err := config.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshaling settings: %w", err)
		}
		if err := fsutil.WriteFileAtomic(path, data); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
