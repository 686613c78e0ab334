package db

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/custodia/signing-service/internal/api"
	"github/custodia/signing-service/internal/config"
	"github/custodia/signing-service/internal/data"
	"github/custodia/signing-service/internal/util/command"
)

func newSeed() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Inserts or updates fixtures to the database.",
		Run: func(cmd *cobra.Command, _ []string) {
			err := command.WithServer(cmd.Context(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, s *api.Server) error {
				return data.ApplyFixtures(ctx, s.DB)
			})
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to seed fixtures")
			}

			log.Info().Msg("Seeded fixtures.")
		},
	}
}
