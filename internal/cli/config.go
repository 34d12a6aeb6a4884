package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ssui-theme/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Print the effective configuration",
	Annotations: map[string]string{annotationSkipApp: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config file:  %s\n", config.GetConfigFile())
		fmt.Fprintf(out, "db_path:      %s\n", cfg.DBPath)
		fmt.Fprintf(out, "storage_key:  %s\n", cfg.StorageKey)
		fmt.Fprintf(out, "log_level:    %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "log_file:     %s\n", cfg.LogFile)
		fmt.Fprintf(out, "notify:       info=%s success=%s error=%s\n",
			cfg.Notify.Info(), cfg.Notify.Success(), cfg.Notify.Error())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a config file with the default settings",
	Annotations: map[string]string{annotationSkipApp: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if config.ConfigExists() && !configForce {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", config.GetConfigFile())
		}

		if err := config.SaveConfig(config.GetDefaultConfig()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", config.GetConfigFile())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
}
