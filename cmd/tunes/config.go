package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmcdole/tunes/internal/adapter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configPathCmd, configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspects and initializes the configuration file.",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Prints the config file in use, or where one would be created.",
	Run: func(cmd *cobra.Command, args []string) {
		if used := state.v.ConfigFileUsed(); used != "" {
			if _, err := os.Stat(used); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), used)
				return
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), defaultConfigFile())
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the effective configuration as YAML.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(state.cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes the effective configuration to the default config file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = defaultConfigFile()
		}

		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := adapter.SaveConfig(state.v, state.cfg, path); err != nil {
			return err
		}

		state.logger.Info("config written", "path", path)
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration saved to", path)
		return nil
	},
}

func defaultConfigFile() string {
	return filepath.Join(adapter.DefaultConfigDir(), "config.yaml")
}
