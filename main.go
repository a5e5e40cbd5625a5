package main

import (
	"fmt"
	"os"

	"github.com/jakenesler/planningcenter/config"
	"github.com/jakenesler/planningcenter/internal"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "planningcenter",
	Short: "Planning Center API client and MCP server",
	Long: `planningcenter talks to the Planning Center API (Services, Groups and People).

Without a subcommand it serves MCP tools over stdio. Credentials come from
the config file or PCO_APPLICATION_ID/PCO_SECRET (or PCO_ACCESS_TOKEN).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations["config"] == "none" {
			_, err := internal.Init(config.DefaultLogLevel)
			return err
		}
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if _, err := internal.Init(cfg.LogLevel); err != nil {
			return err
		}
		internal.Logf("loaded config for %s", cfg.BaseURL)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		internal.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default: ~/.config/planningcenter/config.yaml)")
	rootCmd.Version = version

	rootCmd.AddCommand(serveCmd, openapiCmd, callCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
