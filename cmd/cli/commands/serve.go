package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careloop/rosterengine/pkg/server"
)

// ServeCmd creates the serve command
func ServeCmd(app **AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the costing and matching engines over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app

			port, _ := cmd.Flags().GetString("port")
			if port == "" {
				port = os.Getenv("PORT")
			}
			if port == "" {
				port = "8080"
			}

			srv, err := server.New(a.Cfg, a.Logger)
			if err != nil {
				return fmt.Errorf("failed to build server: %w", err)
			}

			return srv.Run(":" + port)
		},
	}

	cmd.Flags().String("port", "", "Port to listen on (default: PORT env, then 8080)")

	return cmd
}
