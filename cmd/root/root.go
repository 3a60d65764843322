package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uxpulse/ux-pulse-backend/cmd/migrate"
	"github.com/uxpulse/ux-pulse-backend/config"
	"github.com/uxpulse/ux-pulse-backend/server"
)

var rootCmd = &cobra.Command{
	Use:   "ux-pulse-backend",
	Short: "UX telemetry insights backend",
}

func GetRootCmd(config *config.Config) *cobra.Command {
	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DB.User,
		config.DB.Password,
		config.DB.Host,
		config.DB.Port,
		config.DB.DBName,
		config.DB.SSLMode)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			server.RunServer(config)
		},
	})

	rootCmd.AddCommand(migrate.GetMigrateCmd(dbURL))

	return rootCmd
}
