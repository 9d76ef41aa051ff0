package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/ruminaider/mcpack/internal/commands"
	"github.com/ruminaider/mcpack/internal/launch"
)

var profileFormat string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the launch profile merged from all components",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := commandEnv()
		if err != nil {
			return err
		}
		profile, err := commands.Profile(env)
		if err != nil {
			return err
		}
		out, err := formatProfile(profile, profileFormat)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	profileCmd.Flags().StringVarP(&profileFormat, "format", "f", "text", "output format: text, json or yaml")
}

func formatProfile(p *launch.Profile, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding profile: %w", err)
		}
		return string(data) + "\n", nil
	case "yaml":
		data, err := yaml.Marshal(p)
		if err != nil {
			return "", fmt.Errorf("encoding profile: %w", err)
		}
		return string(data), nil
	case "text":
		return profileText(p), nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func profileText(p *launch.Profile) string {
	var b strings.Builder
	field := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%-20s %s\n", name+":", value)
		}
	}
	field("Minecraft version", p.MinecraftVersion)
	field("Main class", p.MainClass)
	field("Applet class", p.AppletClass)
	field("Arguments", p.MinecraftArguments)
	field("Asset index", p.AssetIndex)
	field("Problems", p.Severity.String())
	if p.MainJar != nil {
		field("Main jar", p.MainJar.Name)
	}
	list := func(name string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "%s:\n", name)
		for _, item := range items {
			fmt.Fprintf(&b, "  - %s\n", item)
		}
	}
	list("Tweakers", p.Tweakers)
	list("Traits", p.Traits)
	list("Libraries", libraryNames(p.Libraries))
	list("Jar mods", libraryNames(p.JarMods))
	return b.String()
}

func libraryNames(libs []launch.Library) []string {
	names := make([]string, 0, len(libs))
	for _, lib := range libs {
		name := lib.Name
		if lib.DisplayName != "" {
			name = fmt.Sprintf("%s (%s)", lib.DisplayName, lib.Name)
		}
		names = append(names, name)
	}
	return names
}
