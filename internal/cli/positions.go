package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"resume-analyzer/internal/positions"
)

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "list the configured target positions",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := getConfig()
		if err != nil {
			return fmt.Errorf("parse config: %w", err)
		}

		cfg := positions.Default()
		if config.Positions != "" {
			cfg, err = positions.Load(config.Positions)
			if err != nil {
				return err
			}
		}

		for _, name := range cfg.Names() {
			_, position := cfg.Resolve(name)
			fmt.Printf("%s\t%s\n", name, position.Label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(positionsCmd)
}
