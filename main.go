package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/avstrong/hotel/internal/app"
	"github.com/avstrong/hotel/internal/config"
	"github.com/avstrong/hotel/internal/logger"
)

func main() {
	l := logger.New(log.Default())

	var configDir string

	rootCmd := &cobra.Command{
		Use:           "hotel",
		Short:         "In-memory hotel catalog with room pricing and reservations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			return app.Run(l, conf)
		},
	}

	rootCmd.Flags().StringVar(&configDir, "config", ".", "directory holding config.env")

	var exitCode int

	if err := rootCmd.Execute(); err != nil {
		l.LogErrorf("Failed to run app: %v", err.Error())

		exitCode = 1
	}

	os.Exit(exitCode)
}
