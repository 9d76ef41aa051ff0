package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "mcpack",
	Short: "Manage the component pack of a Minecraft instance",
	Long: "mcpack edits the ordered component list of a MultiMC-style instance (mmc-pack.json), " +
		"its override patches, jar mods and custom jar, and shows the launch profile merged from them.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: list components
		return listCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mcpack %s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	addGlobalFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(customizeCmd)
	rootCmd.AddCommand(revertCmd)
	rootCmd.AddCommand(revertAllCmd)
	rootCmd.AddCommand(installJarModCmd)
	rootCmd.AddCommand(installJarCmd)
	rootCmd.AddCommand(setVersionCmd)
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
