package cmd

import (
	"fmt"

	"github.com/brogergvhs/hqnews/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the hqnews config profiles; prints the merged config when run alone",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, used, err := config.LoadMerged(config.Options{
			IgnoreConfig: flagIgnoreConfig,
			Debug:        flagDebug,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Loaded config from:\n  %s\n\n", used)
		cfg.Print()

		if key := envAPIKey(cfg.AIProvider); key != "" {
			fmt.Printf("\nAPI key for %s found in environment\n", cfg.AIProvider)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
