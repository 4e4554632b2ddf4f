package cli

import (
	"donation-inventory/internal/infrastructure/db"
	"donation-inventory/internal/infrastructure/logging"

	"github.com/spf13/cobra"
)

func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the donations table and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			log := logging.New(cfg.Development())

			gdb, err := db.OpenGorm(cfg, log)
			if err != nil {
				return err
			}
			if sqlDB, err := gdb.DB(); err == nil {
				defer sqlDB.Close()
			}
			if err := db.Migrate(gdb); err != nil {
				return err
			}
			log.Info().Str("driver", cfg.DBDriver).Msg("donations table ready")
			return nil
		},
	}
}
