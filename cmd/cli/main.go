package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/careloop/rosterengine/cmd/cli/commands"
	"github.com/careloop/rosterengine/internal/config"
	"github.com/careloop/rosterengine/pkg/utils/logging"
)

var (
	configPath string
	app        *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rosterengine",
		Short: "Award costing and worker-shift matching engines",
		Long:  `Decision support for disability-service rostering: price a shift under the award tables and rank candidate workers against a shift's requirements.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to roster_config.yaml (defaults to cwd, then home)")

	rootCmd.AddCommand(commands.ServeCmd(&app))
	rootCmd.AddCommand(commands.CostCmd(&app))
	rootCmd.AddCommand(commands.MatchCmd(&app))
	rootCmd.AddCommand(commands.ValidateConfigCmd(&app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up env, logger and configuration
func initApp() error {
	// .env is optional; it carries server settings like PORT
	_ = godotenv.Load()

	env := os.Getenv("ROSTER_ENV")
	if env == "" {
		env = "dev"
	}

	logger, err := logging.InitLogger(env)
	if err != nil {
		return err
	}

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	app = &commands.AppContext{
		Cfg:    cfg,
		Logger: logger,
		Ctx:    context.Background(),
	}
	return nil
}
